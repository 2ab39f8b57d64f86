package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/portfolio/core"
)

// Presenter is what a front-end has to offer the commands.
type Presenter interface {
	// List renders a titled list, one row per line.
	List(title string, rows []string)
	// Prompt asks for one line of input. It returns "" once the input is exhausted.
	Prompt(label string) (string, error)
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(err error)
	// Print writes text as is.
	Print(text string)
}

type console struct {
	in  *bufio.Reader
	out io.Writer
}

var _ Presenter = (*console)(nil)

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out}
}

func (c *console) List(title string, rows []string) {
	fmt.Fprintln(c.out, title)
	if len(rows) == 0 {
		fmt.Fprintln(c.out, "  (none)")
		return
	}
	for _, row := range rows {
		fmt.Fprintln(c.out, "  "+row)
	}
}

func (c *console) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *console) Warn(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "warning: "+format+"\n", args...)
}

func (c *console) Error(err error) {
	var (
		verr *core.ValidationError
		ierr *core.IndexError
	)
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(c.out, "invalid input:")
		for _, fe := range verr.Fields {
			fmt.Fprintf(c.out, "  %s\n", fe.Error)
		}
	case errors.As(err, &ierr):
		fmt.Fprintf(c.out, "error: there is no %s #%d (%d available)\n", ierr.Kind, ierr.Index+1, ierr.Len)
	default:
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
}

func (c *console) Print(text string) {
	fmt.Fprint(c.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(c.out)
	}
}
