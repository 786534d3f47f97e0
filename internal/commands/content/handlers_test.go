package contentcmd

import (
	"context"
	"errors"
	"slices"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-portfolio/internal/artifacts"
	"github.com/goliatone/go-portfolio/internal/ingest"
	"github.com/goliatone/go-portfolio/internal/validation"
)

type stubBuilder struct {
	dirs   []string
	output string
	err    error
}

func (s *stubBuilder) Ingest(_ context.Context, dirs []string, output string) (*ingest.Result, error) {
	s.dirs, s.output = dirs, output
	if s.err != nil {
		return nil, s.err
	}
	return &ingest.Result{OutputPath: output, Projects: 2, Experiences: 1, Meta: artifacts.Meta{Build: "1"}}, nil
}

type stubLinter struct {
	report *validation.Report
}

func (s *stubLinter) LintDirectories(context.Context, []string) (*validation.Report, error) {
	return s.report, nil
}

func TestBuildBundleHandlerRunsIngester(t *testing.T) {
	builder := &stubBuilder{}
	handler := NewBuildBundleHandler(builder, nil)

	msg := BuildBundleCommand{SourceDirs: []string{"p", "e"}, OutputPath: "out.yaml"}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !slices.Equal(builder.dirs, []string{"p", "e"}) || builder.output != "out.yaml" {
		t.Fatalf("unexpected ingest call %v %s", builder.dirs, builder.output)
	}
	if handler.Result() == nil || handler.Result().Total() != 3 {
		t.Fatalf("unexpected result %+v", handler.Result())
	}
}

func TestBuildBundleCommandValidation(t *testing.T) {
	cases := map[string]BuildBundleCommand{
		"missing output": {SourceDirs: []string{"p"}},
		"blank output":   {SourceDirs: []string{"p"}, OutputPath: "  "},
		"blank dir":      {SourceDirs: []string{"p", " "}, OutputPath: "out.yaml"},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			builder := &stubBuilder{}
			err := NewBuildBundleHandler(builder, nil).Execute(context.Background(), msg)
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if builder.output != "" {
				t.Fatal("ingester must not run for invalid messages")
			}
		})
	}

	if err := (BuildBundleCommand{OutputPath: "out.yaml"}).Validate(); err != nil {
		t.Fatalf("empty directory list must be accepted, got %v", err)
	}
}

func TestBuildBundleHandlerKeepsParseCategory(t *testing.T) {
	parseErr := artifacts.NewParseError("src/a.yaml", 0, artifacts.ErrUnknownLanguage)
	handler := NewBuildBundleHandler(&stubBuilder{err: parseErr}, nil)

	err := handler.Execute(context.Background(), BuildBundleCommand{OutputPath: "out.yaml"})
	if !errors.Is(err, artifacts.ErrUnknownLanguage) {
		t.Fatalf("expected parse cause, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected parse errors to keep their category, got %v", err)
	}
	if handler.Result() != nil {
		t.Fatal("failed run must not expose a result")
	}
}

func TestLintSourcesHandler(t *testing.T) {
	failing := &validation.Report{Files: 1, Issues: []validation.Issue{{Path: "a.yaml", Location: "/Project/status", Message: "bad"}}}
	handler := NewLintSourcesHandler(&stubLinter{report: failing}, nil)

	err := handler.Execute(context.Background(), LintSourcesCommand{SourceDirs: []string{"p"}})
	if !errors.Is(err, validation.ErrLintFailed) {
		t.Fatalf("expected lint failure, got %v", err)
	}
	if handler.Report() != failing {
		t.Fatal("expected failing report to stay available")
	}

	clean := NewLintSourcesHandler(&stubLinter{report: &validation.Report{Files: 2}}, nil)
	if err := clean.Execute(context.Background(), LintSourcesCommand{SourceDirs: []string{"p"}}); err != nil {
		t.Fatalf("expected clean run, got %v", err)
	}

	if err := clean.Execute(context.Background(), LintSourcesCommand{}); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error for missing dirs, got %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if (BuildBundleCommand{}).Type() != "portfolio.content.build_bundle" {
		t.Fatal("unexpected build message type")
	}
	if (LintSourcesCommand{}).Type() != "portfolio.content.lint_sources" {
		t.Fatal("unexpected lint message type")
	}
}
