package document

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/trezcool/portfolio/core"
)

// the document embeds raw HTML blocks (indicator lists, feedback), so unsafe rendering is required.
// Headings get the ids the table of contents links to.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

const stylesheet = `
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
h1, h2, h3 { color: #333; }
h2.portfolio-header { font-size: 1.3em; }
table { border-collapse: collapse; width: 100%; margin: 20px 0; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
code { background-color: #f4f4f4; padding: 2px 4px; border-radius: 3px; }
pre { background-color: #f4f4f4; padding: 10px; border-radius: 5px; overflow-x: auto; }
.no-portfolio-item { color: red; font-weight: bold; }
h3 + p em { font-style: italic; font-size: 0.9em; color: #666; }
.indicators-list { font-style: normal; font-size: 1em; color: #333; margin-top: 0.5em; }
.indicators-list li { margin: 0.2em 0; }
.feedback-section { margin: 10px 0; }
.feedback-item { margin-bottom: 15px; padding: 10px; background-color: #f9f9f9; border-left: 3px solid #ddd; }
.feedback-item strong { color: #555; }
.feedback-item p { margin: 5px 0 0 0; line-height: 1.4; }
`

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>{{.Style}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// ToHTML converts the document Markdown into a standalone, styled HTML page.
func ToHTML(md string) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", core.NewRenderError("markdown", errors.Wrap(err, "converting markdown"))
	}

	var page bytes.Buffer
	data := struct {
		Title string
		Style template.CSS
		Body  template.HTML
	}{
		Title: "Verantwoordingsdocument",
		Style: template.CSS(stylesheet),
		Body:  template.HTML(body.String()),
	}
	if err := pageTmpl.Execute(&page, data); err != nil {
		return "", core.NewRenderError("html", errors.Wrap(err, "executing page template"))
	}
	return page.String(), nil
}
