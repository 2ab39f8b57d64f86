package document

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/outcome"
	"github.com/trezcool/portfolio/core/portfolio"
)

const (
	TimestampLayout = "20060102_150405"

	tempPrefix  = "temp_verantwoordingsdocument_"
	finalPrefix = "Verantwoordingsdocument_"
	defaultName = "Student"
)

var nowFunc = time.Now // mockable

// Result lists the files written by a submission. MarkdownPath is empty unless markdown was requested.
type Result struct {
	Timestamp    string
	PDFPath      string
	MarkdownPath string
}

// Submitter writes the final document files into OutputDir.
type Submitter struct {
	OutputDir string
	Version   string
	Catalog   outcome.Catalog

	renderer Renderer
	log      core.Logger
}

func NewSubmitter(r Renderer, outputDir, version string, log core.Logger) *Submitter {
	if outputDir == "" {
		outputDir = "."
	}
	return &Submitter{
		OutputDir: outputDir,
		Version:   version,
		Catalog:   outcome.Default(),
		renderer:  r,
		log:       log,
	}
}

// Preview returns the document as it would be submitted right now. Nothing is written.
func (s *Submitter) Preview(st portfolio.State) string {
	return Generate(st, s.Catalog, Options{Version: s.Version, Date: nowFunc()})
}

// Submit generates the document and renders it to PDF.
// The markdown is written to a temporary file first; it is renamed to its final name when
// the student asked for it and removed otherwise. When rendering fails no final file exists.
func (s *Submitter) Submit(ctx context.Context, st portfolio.State) (Result, error) {
	if !st.ReflectionData.Ready() {
		err := errors.New("the reflection must be completed before submitting")
		return Result{}, core.NewValidationError(err, core.FieldError{Field: "reflection_data", Error: err.Error()})
	}

	now := nowFunc()
	ts := now.Format(TimestampLayout)
	md := Generate(st, s.Catalog, Options{Version: s.Version, Date: now})

	tempMD := filepath.Join(s.OutputDir, tempPrefix+ts+".md")
	if err := os.WriteFile(tempMD, []byte(md), 0o644); err != nil {
		return Result{}, core.NewRenderError("write", errors.Wrap(err, "writing temporary markdown"))
	}

	pdf, err := RenderMarkdownToPDF(ctx, s.renderer, md)
	if err != nil {
		s.remove(tempMD)
		s.log.Error("could not render the document", err)
		return Result{}, err
	}

	base := FileBaseName(st.StudentInfo.Name, ts)
	res := Result{Timestamp: ts, PDFPath: filepath.Join(s.OutputDir, base+".pdf")}

	tempPDF := filepath.Join(s.OutputDir, tempPrefix+ts+".pdf")
	if err := os.WriteFile(tempPDF, pdf, 0o644); err != nil {
		s.remove(tempMD, tempPDF)
		return Result{}, core.NewRenderError("write", errors.Wrap(err, "writing pdf"))
	}
	if err := os.Rename(tempPDF, res.PDFPath); err != nil {
		s.remove(tempMD, tempPDF)
		return Result{}, core.NewRenderError("write", errors.Wrap(err, "renaming pdf"))
	}

	if st.ReflectionData.GenerateMarkdown {
		res.MarkdownPath = filepath.Join(s.OutputDir, base+".md")
		if err := os.Rename(tempMD, res.MarkdownPath); err != nil {
			s.remove(tempMD)
			return Result{PDFPath: res.PDFPath, Timestamp: ts}, core.NewRenderError("write", errors.Wrap(err, "renaming markdown"))
		}
	} else {
		s.remove(tempMD)
	}

	s.log.Info("document submitted", st.StudentInfo, map[string]interface{}{"pdf": res.PDFPath, "markdown": res.MarkdownPath})
	return res, nil
}

func (s *Submitter) remove(paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			s.log.Warn("could not remove temporary file", err, map[string]interface{}{"path": p})
		}
	}
}

// FileBaseName is the name, without extension, of the submitted files.
func FileBaseName(studentName, ts string) string {
	name := core.CleanString(studentName)
	if name == "" {
		name = defaultName
	}
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return finalPrefix + name + "_" + ts
}
