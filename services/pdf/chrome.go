// Package pdfsvc prints HTML pages to PDF with a headless Chrome.
package pdfsvc

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/document"
)

const (
	DefaultTimeout = 30 * time.Second

	// A4 in inches
	paperWidth  = 8.27
	paperHeight = 11.69
)

type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
}

var _ document.Renderer = (*ChromeRenderer)(nil)

// NewChromeRenderer uses the configured Chrome binary, or the one chromedp finds when none is set.
func NewChromeRenderer(conf *core.Config) *ChromeRenderer {
	timeout := conf.PDF.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromeRenderer{execPath: conf.PDF.ChromePath, timeout: timeout}
}

func (r *ChromeRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}
	return opts
}

func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	tabCtx, cancel := context.WithTimeout(tabCtx, r.timeout)
	defer cancel()

	var pdf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, core.NewRenderError("pdf", errors.Wrap(err, "printing with chrome"))
	}
	return pdf, nil
}
