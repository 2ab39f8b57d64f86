package pdfsvc

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/document"
)

func chromePath(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no chrome binary found")
	return ""
}

func TestNewChromeRenderer_defaults(t *testing.T) {
	r := NewChromeRenderer(&core.Config{})
	assert.Equal(t, DefaultTimeout, r.timeout)
	assert.Empty(t, r.execPath)

	conf := &core.Config{}
	conf.PDF.ChromePath = "/opt/chrome"
	conf.PDF.Timeout = time.Minute
	r = NewChromeRenderer(conf)
	assert.Equal(t, time.Minute, r.timeout)
	assert.Equal(t, "/opt/chrome", r.execPath)
	assert.Greater(t, len(r.allocatorOptions()), len(NewChromeRenderer(&core.Config{}).allocatorOptions()))
}

func TestChromeRenderer_RenderPDF(t *testing.T) {
	conf := &core.Config{}
	conf.PDF.ChromePath = chromePath(t)
	r := NewChromeRenderer(conf)

	pdf, err := document.RenderMarkdownToPDF(context.Background(), r, "# Verantwoordingsdocument\n\nHallo")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestChromeRenderer_RenderPDF_badBinary(t *testing.T) {
	conf := &core.Config{}
	conf.PDF.ChromePath = "/nonexistent/chrome"
	conf.PDF.Timeout = 5 * time.Second

	_, err := NewChromeRenderer(conf).RenderPDF(context.Background(), "<p>x</p>")
	require.Error(t, err)
	assert.True(t, core.IsRender(err))
}
