package document

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/outcome"
	"github.com/trezcool/portfolio/core/portfolio"
)

type fakeRenderer struct {
	pdf  []byte
	err  error
	html string
}

func (r *fakeRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	r.html = html
	return r.pdf, r.err
}

func TestToHTML(t *testing.T) {
	st := demoState()
	st.PortfolioItems[0].Feedback = []portfolio.FeedbackEntry{
		{From: "Docent", Text: "Goed", LearningOutcomes: []int{1}, Date: "2026-10-02 09:30"},
	}
	page, err := ToHTML(generate(st))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	for _, want := range []string{
		"font-family: Arial, sans-serif;",
		".feedback-item { margin-bottom: 15px;",
		"<h1",
		"<table>",
		"<th>Portfolio-item</th>",
		`<ul class="indicators-list">`,
		`<div class="feedback-item">`,
		"<div class='no-portfolio-item'>",
		"<h2 class='portfolio-header' id='portfolio-technische-informatica-ti-semester-4-s4'>",
		"<pre><code>a\n</code></pre>",
	} {
		assert.Contains(t, page, want)
	}
}

func TestToHTML_anchorsResolve(t *testing.T) {
	page, err := ToHTML(generate(demoState()))
	require.NoError(t, err)

	for _, lo := range outcome.Default() {
		assert.Contains(t, page, `<a href="#`+lo.Anchor()+`">`)
		assert.Contains(t, page, `<h3 id="`+lo.Anchor()+`">`)
	}
	assert.Contains(t, page, `<h2 id="algemeen">Algemeen</h2>`)
	assert.Contains(t, page, `<a href="#portfolio-technische-informatica-ti-semester-4-s4">`)
}

func TestToHTML_pipeInLink(t *testing.T) {
	st := demoState()
	st.PortfolioItems[0].GithubLink = "https://x/a|b"
	page, err := ToHTML(generate(st))
	require.NoError(t, err)

	assert.Contains(t, page, `">link naar https://x/a|b</a></td>`)
	assert.NotContains(t, page, "<td>[link naar")
}

func TestRenderMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name    string
		r       *fakeRenderer
		wantErr bool
	}{
		{name: "ok", r: &fakeRenderer{pdf: []byte("%PDF-1.4")}},
		{name: "renderer fails", r: &fakeRenderer{err: errors.New("chrome crashed")}, wantErr: true},
		{name: "renderer returns a render error", r: &fakeRenderer{err: core.NewRenderError("pdf", errors.New("timeout"))}, wantErr: true},
		{name: "empty pdf", r: &fakeRenderer{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdf, err := RenderMarkdownToPDF(context.Background(), tt.r, "# Titel")
			if tt.wantErr {
				require.Error(t, err)
				var rerr *core.RenderError
				require.ErrorAs(t, err, &rerr)
				assert.Equal(t, "pdf", rerr.Stage)
				assert.Nil(t, pdf)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.r.pdf, pdf)
			assert.Contains(t, tt.r.html, `<h1 id="titel">Titel</h1>`)
		})
	}
}
