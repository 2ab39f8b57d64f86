package document

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
)

// Renderer converts a styled HTML page into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// RenderMarkdownToPDF runs the whole markdown -> html -> pdf pipeline.
// Every failure is a *core.RenderError.
func RenderMarkdownToPDF(ctx context.Context, r Renderer, md string) ([]byte, error) {
	page, err := ToHTML(md)
	if err != nil {
		return nil, err
	}
	pdf, err := r.RenderPDF(ctx, page)
	if err != nil {
		if core.IsRender(err) {
			return nil, err
		}
		return nil, core.NewRenderError("pdf", errors.Wrap(err, "rendering pdf"))
	}
	if len(pdf) == 0 {
		return nil, core.NewRenderError("pdf", errors.New("renderer returned an empty document"))
	}
	return pdf, nil
}
