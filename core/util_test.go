package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Jan Jansen", CleanString("  Jan Jansen \n"))
	assert.Equal(t, "jan", CleanString(" JAN ", true))
	assert.Equal(t, "", CleanString(" \t "))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "commas", in: "Piet, Klaas ,Marie", want: []string{"Piet", "Klaas", "Marie"}},
		{name: "newlines", in: "Piet\nKlaas\n", want: []string{"Piet", "Klaas"}},
		{name: "blanks dropped", in: " , Piet,, ", want: []string{"Piet"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitList(tc.in))
		})
	}
}
