package ingest

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeIOFailed tags filesystem failures raised while building a bundle.
const TextCodeIOFailed = "CONTENT_IO_FAILED"

var (
	// ErrIO marks read, write and enumeration failures.
	ErrIO = errors.New("ingest: io failure")
	// ErrDescConflict is returned for markdown sources that set desc in the
	// frontmatter and also carry a body.
	ErrDescConflict = errors.New("ingest: desc set in both frontmatter and body")
)

// IOError names the operation and path that failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	ioe := &IOError{Op: op, Path: path, Err: err}
	return goerrors.Wrap(ioe, goerrors.CategoryInternal, ioe.Error()).
		WithTextCode(TextCodeIOFailed)
}
