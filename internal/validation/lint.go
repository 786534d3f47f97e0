package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-portfolio/internal/ingest"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// TextCodeLintFailed tags a lint run that found schema violations.
const TextCodeLintFailed = "CONTENT_LINT_FAILED"

// ErrLintFailed is returned by Report.Err when issues were found.
var ErrLintFailed = errors.New("validation: lint failed")

// Report collects the outcome of a lint run.
type Report struct {
	Files  int
	Issues []Issue
}

// OK reports whether no issues were found.
func (r *Report) OK() bool {
	return r == nil || len(r.Issues) == 0
}

// Err converts a failing report into a categorised error listing every issue.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		lines = append(lines, issue.String())
	}
	cause := fmt.Errorf("%w: %d issue(s)\n%s", ErrLintFailed, len(r.Issues), strings.Join(lines, "\n"))
	return goerrors.Wrap(cause, goerrors.CategoryValidation, cause.Error()).
		WithTextCode(TextCodeLintFailed)
}

// Linter validates artifact sources against the embedded schema and reports
// every violation instead of stopping at the first.
type Linter struct {
	logger interfaces.Logger
}

// NewLinter returns a Linter logging through logger, which may be nil.
func NewLinter(logger interfaces.Logger) *Linter {
	return &Linter{logger: logging.OrNoOp(logger)}
}

// LintDirectories lints the source files of each directory in name order.
// Unreadable directories or files abort the run; schema violations do not.
func (l *Linter) LintDirectories(ctx context.Context, dirs []string) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := l.logger.WithContext(ctx)
	report := &Report{}

	for _, dir := range dirs {
		paths, err := ingest.ListSources(dir)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			issues, err := l.LintFile(path)
			if err != nil {
				return nil, err
			}
			report.Files++
			report.Issues = append(report.Issues, issues...)
			if len(issues) > 0 {
				logging.WithSourceContext(logger, path, "", "lint").
					Warn("lint.file.issues", "count", len(issues))
			}
		}
	}

	logger.Info("lint.completed", "files", report.Files, "issues", len(report.Issues))
	return report, nil
}

// LintFile validates a single source file.
func (l *Linter) LintFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	value, err := decodeSourceValue(path, data)
	if err != nil {
		return []Issue{{Path: path, Message: err.Error()}}, nil
	}
	return ValidateDocument(path, value)
}

func readError(path string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "lint read "+path).
		WithTextCode(ingest.TextCodeIOFailed)
}

var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// decodeSourceValue turns a source file into the JSON data model the schema
// validator expects. Markdown bodies are folded into desc.
func decodeSourceValue(path string, data []byte) (any, error) {
	var raw any
	if strings.EqualFold(filepath.Ext(path), ".md") {
		body, err := frontmatter.MustParse(bytes.NewReader(data), &raw, yamlFrontmatter)
		if err != nil {
			return nil, fmt.Errorf("frontmatter: %w", err)
		}
		if err := foldBody(raw, strings.TrimSpace(string(body))); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return toJSONValue(raw)
}

func foldBody(raw any, body string) error {
	if body == "" {
		return nil
	}
	doc, ok := raw.(map[string]any)
	if !ok || len(doc) != 1 {
		return nil
	}
	for _, record := range doc {
		fields, ok := record.(map[string]any)
		if !ok {
			return nil
		}
		if _, exists := fields["desc"]; exists {
			return errors.New("desc set in both frontmatter and body")
		}
		fields["desc"] = body
	}
	return nil
}

// toJSONValue normalises YAML scalars (ints, timestamps) through a JSON round
// trip.
func toJSONValue(raw any) (any, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("not representable as JSON: %w", err)
	}
	var value any
	if err := json.Unmarshal(encoded, &value); err != nil {
		return nil, err
	}
	return value, nil
}
