package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Len(t, c, MaxID)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, c.IDs())
	for _, lo := range c {
		assert.NotEmpty(t, lo.Title, "outcome %d", lo.ID)
		assert.NotEmpty(t, lo.Description, "outcome %d", lo.ID)
		assert.NotEmpty(t, lo.Indicators, "outcome %d", lo.ID)
		assert.NotEmpty(t, lo.Examples, "outcome %d", lo.ID)
	}

	// copies do not share the reference data
	c[0].Title = "changed"
	c[0].Indicators[0] = "changed"
	fresh := Default()
	assert.Equal(t, "Analyseren", fresh[0].Title)
	assert.Equal(t, "Requirements analyse", fresh[0].Indicators[0])
}

func TestCatalog_Get(t *testing.T) {
	c := Default()
	tests := []struct {
		name   string
		id     int
		want   string
		wantOk bool
	}{
		{name: "first", id: 1, want: "Analyseren", wantOk: true},
		{name: "last", id: 9, want: "Onderzoek probleem oplossen", wantOk: true},
		{name: "zero", id: 0},
		{name: "out of range", id: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, ok := c.Get(tt.id)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, lo.Title)
		})
	}
}

func TestIsValidID(t *testing.T) {
	for id := -1; id <= 11; id++ {
		assert.Equal(t, id >= 1 && id <= 9, IsValidID(id), "id %d", id)
	}
}

func TestLearningOutcome_Anchor(t *testing.T) {
	c := Default()
	lo, _ := c.Get(6)
	assert.Equal(t, "leeruitkomst-6-toekomstgericht-organiseren", lo.Anchor())
	assert.Equal(t, "Leeruitkomst 6 Toekomstgericht organiseren", lo.Heading())
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Leeruitkomst 9 Onderzoek probleem oplossen", want: "leeruitkomst-9-onderzoek-probleem-oplossen"},
		{in: "Portfolio Technische Informatica (TI) semester 4 (S4)", want: "portfolio-technische-informatica-ti-semester-4-s4"},
		{in: "  snake_case & dash-es ", want: "snake-case--dash-es"},
		{in: "Één café", want: "n-caf"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}
