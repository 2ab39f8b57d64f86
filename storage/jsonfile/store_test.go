package jsonfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/portfolio"
)

func testState() portfolio.State {
	return portfolio.State{
		StudentInfo: portfolio.StudentInfo{Name: "Ada Lovelace", StudentNumber: "1234567", Semester: "4", Milestone: "2"},
		PortfolioItems: []portfolio.Item{
			{
				Title:            "Digital twin <sim>",
				LearningOutcomes: []int{1, 3},
				GroupMembers:     []string{},
				GithubLink:       "https://github.com/ada/twin?a=1&b=2",
				Description:      "Simulatie van de robotarm",
				DateAdded:        "2026-10-01",
				Feedback: []portfolio.FeedbackEntry{
					{From: "Docent", Text: "Goed gedaan", LearningOutcomes: []int{1}, Date: "2026-10-02 09:30"},
					{From: "Peer", Text: "Meer tests", LearningOutcomes: []int{1, 3}, Date: "2026-10-03 14:00"},
				},
			},
			{
				Title:            "Scrum board",
				LearningOutcomes: []int{6},
				IsGroupWork:      true,
				GroupMembers:     []string{"Bob", "Eve"},
				GithubLink:       "https://x",
				Description:      "d",
				DateAdded:        "2026-10-04",
				Feedback:         []portfolio.FeedbackEntry{},
			},
		},
		ReflectionData: portfolio.ReflectionData{
			ProudOf:        "De simulatie",
			StruggledWith:  "Planning",
			WantToLearn:    "C++",
			IsComplete:     true,
			SubmissionDate: "2026-10-05T10:00:00Z",
		},
	}
}

func TestRepository_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	repo := NewRepository(path)

	want := testState()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRepository_Load_missingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope.json"))

	st, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, st.NeedsSetup())
	assert.NotNil(t, st.PortfolioItems)
	assert.Empty(t, st.PortfolioItems)
}

func TestRepository_Load_malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"student_info": {`), 0o644))

	st, err := NewRepository(path).Load()
	require.Error(t, err)
	assert.True(t, core.IsDataLoad(err))
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, st.PortfolioItems)
}

func TestDecode_defaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, st portfolio.State)
	}{
		{
			name:  "empty object",
			input: `{}`,
			check: func(t *testing.T, st portfolio.State) {
				assert.Equal(t, portfolio.StudentInfo{}, st.StudentInfo)
				assert.Equal(t, []portfolio.Item{}, st.PortfolioItems)
				assert.False(t, st.ReflectionData.IsComplete)
			},
		},
		{
			name:  "unknown keys",
			input: `{"version": 3, "student_info": {"name": "Ada", "nickname": "A"}, "extra": [1]}`,
			check: func(t *testing.T, st portfolio.State) {
				assert.Equal(t, "Ada", st.StudentInfo.Name)
			},
		},
		{
			name:  "null fields",
			input: `{"student_info": null, "portfolio_items": [{"title": "T", "learning_outcomes": null, "group_members": null, "feedback": [{"from": "X", "learning_outcomes": null}]}], "reflection_data": null}`,
			check: func(t *testing.T, st portfolio.State) {
				require.Len(t, st.PortfolioItems, 1)
				it := st.PortfolioItems[0]
				assert.Equal(t, "T", it.Title)
				assert.Equal(t, []int{}, it.LearningOutcomes)
				assert.Equal(t, []string{}, it.GroupMembers)
				require.Len(t, it.Feedback, 1)
				assert.Equal(t, []int{}, it.Feedback[0].LearningOutcomes)
				assert.False(t, it.IsGroupWork)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			tt.check(t, st)
		})
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(portfolio.State{PortfolioItems: []portfolio.Item{{Title: "<b>&</b>"}}})
	require.NoError(t, err)
	out := string(data)

	for _, key := range []string{`"student_info"`, `"portfolio_items"`, `"reflection_data"`} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "null")
	assert.Contains(t, out, `"feedback": []`)
	assert.Contains(t, out, `"title": "<b>&</b>"`)
	assert.True(t, strings.HasPrefix(out, "{\n  \"student_info\": {\n    \"name\""))
}

func TestRepository_Save_error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "portfolio_data.json")

	err := NewRepository(path).Save(testState())
	require.Error(t, err)
	assert.True(t, core.IsDataSave(err))
}

func TestRepository_ExportImport(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "portfolio_data.json"))
	exportPath := filepath.Join(dir, "backup.json")

	want := testState()
	require.NoError(t, repo.Export(want, exportPath))

	got, err := repo.Import(exportPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = repo.Import(filepath.Join(dir, "other.json"))
	assert.True(t, core.IsDataLoad(err))
}
