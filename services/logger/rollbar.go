package logsvc

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/portfolio/core"
	"github.com/trezcool/portfolio/core/portfolio"
)

// RollbarLogger prints to std and, once enabled, reports to Rollbar.
// Mistakes in user input (validation and index errors) are printed but never reported.
type RollbarLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(false)
	return &RollbarLogger{std: std, debug: conf.Debug}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Wait blocks until the queued reports are sent.
func (l RollbarLogger) Wait() {
	rollbar.Wait()
}

// entry is one log call, its arguments sorted by what Rollbar does with them.
type entry struct {
	msg     string
	err     error
	student *portfolio.StudentInfo
	extras  map[string]interface{}
}

// newEntry accepts, in any order: an error, maps of extra data and the current portfolio.StudentInfo.
// Only the first error and the first student are kept; maps are merged; anything else becomes an extra.
func newEntry(msg string, args []interface{}) entry {
	e := entry{msg: msg, extras: make(map[string]interface{})}
	for i, arg := range args {
		switch v := arg.(type) {
		case error:
			if e.err == nil {
				e.err = v
			}
		case portfolio.StudentInfo:
			if e.student == nil {
				e.student = &v
			}
		case map[string]interface{}:
			for k, val := range v {
				e.extras[k] = val
			}
		default:
			e.extras[fmt.Sprintf("arg%d", i)] = v
		}
	}
	if e.err != nil {
		e.extras["error_kind"] = errorKind(e.err)
	}
	if e.student != nil {
		e.extras["semester"] = e.student.Semester
		e.extras["milestone"] = e.student.Milestone
	}
	return e
}

func errorKind(err error) string {
	switch {
	case core.IsValidation(err):
		return "validation"
	case core.IsIndex(err):
		return "index"
	case core.IsDataLoad(err):
		return "data_load"
	case core.IsDataSave(err):
		return "data_save"
	case core.IsRender(err):
		return "render"
	}
	return "other"
}

// userMistake reports whether the entry is about bad input rather than a failure of the tool.
func (e entry) userMistake() bool {
	return e.err != nil && (core.IsValidation(e.err) || core.IsIndex(e.err))
}

// rollbarArgs sets the person and returns the arguments for a rollbar level func.
func (e entry) rollbarArgs() []interface{} {
	if e.student != nil && e.student.StudentNumber != "" {
		rollbar.SetPerson(e.student.StudentNumber, e.student.Name, "")
	} else {
		rollbar.ClearPerson()
	}
	args := []interface{}{e.msg}
	if e.err != nil {
		args = append(args, e.err)
	}
	if len(e.extras) > 0 {
		args = append(args, e.extras)
	}
	return args
}

// line renders the entry as a single log line: LEVEL msg: err key=value ...
func (e entry) line(level string) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(e.msg)
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	keys := make([]string, 0, len(e.extras))
	for k := range e.extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.extras[k])
	}
	if e.student != nil {
		fmt.Fprintf(&b, " student=%s", e.student.StudentNumber)
	}
	return b.String()
}

func (l RollbarLogger) write(level string, send func(...interface{}), msg string, args []interface{}) entry {
	e := newEntry(msg, args)
	if !e.userMistake() {
		send(e.rollbarArgs()...)
	}
	l.std.Println(e.line(level))
	return e
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.write("DEBUG", rollbar.Debug, msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	l.write("INFO", rollbar.Info, msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	l.write("WARN", rollbar.Warning, msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	l.write("ERROR", rollbar.Error, msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	e := l.write("FATAL", rollbar.Critical, msg, args)
	rollbar.Wait()
	l.std.Fatal(e.line("FATAL"))
}
