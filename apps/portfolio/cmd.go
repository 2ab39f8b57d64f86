package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/document"
	"github.com/trezcool/portfolio/core/portfolio"
	"github.com/trezcool/portfolio/storage/jsonfile"
	"github.com/trezcool/portfolio/storage/memory"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf     *core.Config
	log      core.Logger
	ui       Presenter
	renderer document.Renderer

	svc *portfolio.Service
	sub *document.Submitter
}

var usage = []string{
	"Usage: portfolio [-dry-run] COMMAND [flags]",
	"",
	"Student:",
	"  setup [-name N] [-number N] [-semester 2-8] [-milestone 1-4]  register the student",
	"  student                                                       show the student info",
	"  status                                                        overview and reminders",
	"Portfolio items:",
	"  items                                                         list the portfolio items",
	"  add-item [-title T] [-outcomes 1,3] [-group] [-members a,b] [-link URL] [-description D]",
	"  edit-item -index N [same flags as add-item]",
	"  delete-item -index N [-yes]",
	"Feedback:",
	"  feedback                                                      all feedback per item",
	"  add-feedback -item N [-from F] [-text T] [-outcomes 1,3]",
	"  edit-feedback -item N -index M [-from F] [-text T] [-outcomes 1,3]",
	"  remove-feedback -item N -index M [-yes]",
	"Document:",
	"  outcomes [-id N]                                              learning outcomes with examples",
	"  reflect [-proud P] [-struggled S] [-learn L] [-markdown] [-draft]",
	"  preview [-raw] [-diff FILE]                                   show the document without writing it",
	"  submit                                                        write the PDF (and markdown)",
	"Data:",
	"  export -file FILE",
	"  import -file FILE",
	"",
	"-dry-run keeps every change in memory; the data file is left untouched.",
}

func (cli *commandLine) printUsage() {
	cli.ui.Print(strings.Join(usage, "\n"))
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	global := newFlagSet(args[0], cli.ui)
	dryRun := global.Bool("dry-run", false, "keep changes in memory only")
	if err := global.Parse(args[1:]); err != nil {
		return errHelp
	}
	rest := global.Args()
	if len(rest) == 0 {
		cli.printUsage()
		return errHelp
	}
	cmd, cmdArgs := rest[0], rest[1:]

	if _, ok := commands[cmd]; !ok {
		cli.printUsage()
		return errHelp
	}
	if err := cli.open(cmd, *dryRun); err != nil {
		return err
	}
	if cmd != "setup" && cmd != "outcomes" && cli.svc.State().NeedsSetup() {
		cli.ui.Warn("no student registered yet, run `portfolio setup` first")
	}
	return commands[cmd](cli, cmdArgs)
}

var commands = map[string]func(cli *commandLine, args []string) error{
	"setup":           (*commandLine).setup,
	"student":         (*commandLine).student,
	"status":          (*commandLine).status,
	"items":           (*commandLine).items,
	"add-item":        (*commandLine).addItem,
	"edit-item":       (*commandLine).editItem,
	"delete-item":     (*commandLine).deleteItem,
	"feedback":        (*commandLine).feedback,
	"add-feedback":    (*commandLine).addFeedback,
	"edit-feedback":   (*commandLine).editFeedback,
	"remove-feedback": (*commandLine).removeFeedback,
	"outcomes":        (*commandLine).outcomes,
	"reflect":         (*commandLine).reflect,
	"preview":         (*commandLine).preview,
	"submit":          (*commandLine).submit,
	"export":          (*commandLine).exportData,
	"import":          (*commandLine).importData,
}

// open loads the saved state. A broken data file only blocks the commands that could overwrite it.
func (cli *commandLine) open(cmd string, dryRun bool) error {
	repo := jsonfile.NewRepository(cli.conf.DataFile)
	if dryRun {
		repo = memory.NewDryRun(repo)
	}
	cli.svc = portfolio.NewService(repo, cli.log)
	cli.sub = document.NewSubmitter(cli.renderer, cli.conf.OutputDir, cli.conf.Build, cli.log)

	if err := cli.svc.Reload(); err != nil {
		if cmd == "import" || cmd == "outcomes" {
			cli.ui.Warn("%v", err)
			return nil
		}
		return err
	}
	return nil
}

func newFlagSet(name string, ui Presenter) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(presenterWriter{ui})
	return fs
}

// parse parses the flags of a command; asking for help is not an error worth reporting.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errHelp
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return errHelp
	}
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// presenterWriter sends the flag package output through the presenter.
type presenterWriter struct {
	ui Presenter
}

var _ io.Writer = presenterWriter{}

func (w presenterWriter) Write(p []byte) (int, error) {
	w.ui.Print(string(p))
	return len(p), nil
}

// ask prompts for a value, keeping current when the answer is empty.
func (cli *commandLine) ask(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := cli.ui.Prompt(label)
	if err != nil {
		return "", err
	}
	if v = core.CleanString(v); v == "" {
		return current, nil
	}
	return v, nil
}

func (cli *commandLine) confirm(question string) (bool, error) {
	v, err := cli.ui.Prompt(question + " [y/N]")
	if err != nil {
		return false, err
	}
	switch core.CleanString(v, true /* lower */) {
	case "y", "yes", "j", "ja":
		return true, nil
	}
	return false, nil
}

// parseOutcomes reads outcome numbers separated by commas or spaces.
func parseOutcomes(s string) ([]int, error) {
	ids := make([]int, 0)
	for _, p := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' }) {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, core.NewValidationError(nil, core.FieldError{
				Field: "learning_outcomes",
				Error: fmt.Sprintf("%q is not a learning outcome number", p),
			})
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func formatOutcomes(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// position converts a 1-based position given on the command line into an index.
func position(n int) int {
	return n - 1
}
