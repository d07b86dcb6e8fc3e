package errors

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const (
	OpOpen  = "open"
	OpParse = "parse"
)

// LoadError reports a schema document that could not be read or decoded.
// It is fatal: no table lookup runs after it.
type LoadError struct {
	Op   string // "open" or "parse"
	Path string // file the document was read from
	Err  error  // underlying cause, carries a stack trace
}

func (e *LoadError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("schema document %s failed", e.Op))

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StackTrace exposes the stack captured when the cause was wrapped,
// so "%+v" formatting of the cause prints it.
func (e *LoadError) StackTrace() pkgerrors.StackTrace {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := e.Err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func NewOpenError(path string, err error) *LoadError {
	return &LoadError{
		Op:   OpOpen,
		Path: path,
		Err:  pkgerrors.WithStack(err),
	}
}

func NewParseError(path string, err error) *LoadError {
	return &LoadError{
		Op:   OpParse,
		Path: path,
		Err:  pkgerrors.Wrap(err, "invalid JSON"),
	}
}
