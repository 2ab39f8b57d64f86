package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports user input that failed a required-field or invariant check.
// Nothing has been mutated or written when it is returned.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	if err == nil && len(flds) > 0 {
		err = errors.New(flds[0].Field + ": " + flds[0].Error)
	}
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error { return err.Err }

// IndexError is returned when a position does not address an existing element.
type IndexError struct {
	Kind  string // "portfolio item" | "feedback"
	Index int
	Len   int
}

func NewIndexError(kind string, index, length int) error {
	return &IndexError{Kind: kind, Index: index, Len: length}
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0:%d]", err.Kind, err.Index, err.Len)
}

// DataLoadError wraps I/O and parse failures while reading the data file.
type DataLoadError struct {
	Path string
	Err  error
}

func (err *DataLoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", err.Path, err.Err)
}

func (err *DataLoadError) Unwrap() error { return err.Err }

// DataSaveError wraps I/O failures while writing the data file.
type DataSaveError struct {
	Path string
	Err  error
}

func (err *DataSaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", err.Path, err.Err)
}

func (err *DataSaveError) Unwrap() error { return err.Err }

// RenderError wraps failures of the markdown -> html -> pdf pipeline.
type RenderError struct {
	Stage string // "markdown" | "html" | "pdf" | "write"
	Err   error
}

func NewRenderError(stage string, err error) error {
	return &RenderError{Stage: stage, Err: err}
}

func (err *RenderError) Error() string {
	return fmt.Sprintf("rendering document (%s): %v", err.Stage, err.Err)
}

func (err *RenderError) Unwrap() error { return err.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsIndex(err error) bool {
	var target *IndexError
	return errors.As(err, &target)
}

func IsDataLoad(err error) bool {
	var target *DataLoadError
	return errors.As(err, &target)
}

func IsDataSave(err error) bool {
	var target *DataSaveError
	return errors.As(err, &target)
}

func IsRender(err error) bool {
	var target *RenderError
	return errors.As(err, &target)
}
