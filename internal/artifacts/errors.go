package artifacts

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeParseFailed tags every schema violation surfaced by the pipeline.
const TextCodeParseFailed = "CONTENT_PARSE_FAILED"

var (
	ErrParse           = errors.New("artifacts: parse failed")
	ErrUnknownKind     = errors.New("artifacts: unknown artifact kind")
	ErrUnknownLanguage = errors.New("artifacts: unknown language")
	ErrUnknownStatus   = errors.New("artifacts: unknown project status")
	ErrMissingField    = errors.New("artifacts: required field missing")
)

// ParseError reports a document that does not conform to the artifact schema.
// Location is a file path on the ingest side and a bundle position such as
// "artifacts[3]" on the load side.
type ParseError struct {
	Location string
	Line     int
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse ")
	if e.Location != "" {
		b.WriteString(e.Location)
	} else {
		b.WriteString("document")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both ErrParse and the underlying cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// NewParseError wraps err as a categorised parse failure at location. Errors
// that already carry a ParseError keep their original location.
func NewParseError(location string, line int, err error) error {
	if err == nil {
		return nil
	}
	var existing *ParseError
	if errors.As(err, &existing) {
		if goerrors.IsWrapped(err) {
			return err
		}
		return categorize(existing)
	}
	return categorize(&ParseError{Location: location, Line: line, Err: err})
}

func categorize(pe *ParseError) error {
	return goerrors.Wrap(pe, goerrors.CategoryValidation, pe.Error()).
		WithTextCode(TextCodeParseFailed)
}

// IsParseError reports whether err was produced by a schema violation.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
