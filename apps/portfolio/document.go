package main

import (
	"context"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"

	"github.com/trezcool/portfolio/core/portfolio"
)

const defaultWrap = 100

var (
	isTerminalFunc = term.IsTerminal // mockable
	termSizeFunc   = term.GetSize    // mockable
)

func (cli *commandLine) reflect(args []string) error {
	fs := newFlagSet("reflect", cli.ui)
	proud := fs.String("proud", "", "what you are most proud of")
	struggled := fs.String("struggled", "", "what you struggled with and what you did about it")
	learn := fs.String("learn", "", "what you still want to learn and how")
	markdown := fs.Bool("markdown", false, "also keep the markdown document when submitting")
	draft := fs.Bool("draft", false, "save the answers without marking the reflection complete")
	if err := parse(fs, args); err != nil {
		return err
	}

	cur := cli.svc.State().ReflectionData
	nr := portfolio.NewReflection{
		ProudOf:          *proud,
		StruggledWith:    *struggled,
		WantToLearn:      *learn,
		Complete:         !*draft,
		GenerateMarkdown: *markdown,
	}
	if !isSet(fs, "markdown") {
		nr.GenerateMarkdown = cur.GenerateMarkdown
	}
	var err error
	prompts := []struct {
		flag, label string
		value       *string
		current     string
	}{
		{"proud", "Waar ik het meest trots op ben", &nr.ProudOf, cur.ProudOf},
		{"struggled", "Waar ik moeite mee heb gehad en welke actie ik heb ondernomen", &nr.StruggledWith, cur.StruggledWith},
		{"learn", "Wat ik nog graag wil leren en welke actie ik wil gaan ondernemen", &nr.WantToLearn, cur.WantToLearn},
	}
	for _, p := range prompts {
		if isSet(fs, p.flag) {
			continue
		}
		if *p.value, err = cli.ask(p.label, p.current); err != nil {
			return err
		}
	}

	rd, err := cli.svc.SetReflection(nr)
	if err != nil {
		return err
	}
	if rd.IsComplete {
		cli.ui.Info("reflection saved, ready to submit")
	} else {
		cli.ui.Info("reflection saved as draft")
	}
	return nil
}

func (cli *commandLine) submit(args []string) error {
	if err := parse(newFlagSet("submit", cli.ui), args); err != nil {
		return err
	}
	st := cli.svc.State()
	cli.remindFeedback(st.CountItemsWithoutFeedback())

	res, err := cli.sub.Submit(context.Background(), st)
	if err != nil {
		return err
	}
	files := []string{"PDF: " + res.PDFPath}
	if res.MarkdownPath != "" {
		files = append(files, "Markdown: "+res.MarkdownPath)
	}
	cli.ui.List("Document generated:", files)
	return nil
}

func (cli *commandLine) preview(args []string) error {
	fs := newFlagSet("preview", cli.ui)
	raw := fs.Bool("raw", false, "print the markdown without terminal styling")
	diffWith := fs.String("diff", "", "show the changes against a previously generated markdown document")
	if err := parse(fs, args); err != nil {
		return err
	}

	md := cli.sub.Preview(cli.svc.State())
	if *diffWith != "" {
		return cli.diff(*diffWith, md)
	}

	fd := int(os.Stdout.Fd())
	if *raw || !isTerminalFunc(fd) {
		cli.ui.Print(md)
		return nil
	}
	width := defaultWrap
	if w, _, err := termSizeFunc(fd); err == nil && w > 0 {
		width = w
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return errors.Wrap(err, "creating terminal renderer")
	}
	out, err := r.Render(md)
	if err != nil {
		return errors.Wrap(err, "rendering preview")
	}
	cli.ui.Print(out)
	return nil
}

func (cli *commandLine) diff(path, md string) error {
	prev, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading previous document")
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(prev)),
		B:        difflib.SplitLines(md),
		FromFile: path,
		ToFile:   "preview",
		Context:  3,
	})
	if err != nil {
		return errors.Wrap(err, "diffing documents")
	}
	if text == "" {
		cli.ui.Info("no changes since %s", path)
		return nil
	}
	cli.ui.Print(text)
	return nil
}
