package contentcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/ingest"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const (
	buildOperation = "content.build_bundle"
	lintOperation  = "content.lint_sources"
)

// BundleBuilder is the ingest surface used by BuildBundleHandler.
type BundleBuilder interface {
	Ingest(ctx context.Context, sourceDirs []string, outputPath string) (*ingest.Result, error)
}

// SourceLinter is the lint surface used by LintSourcesHandler.
type SourceLinter interface {
	LintDirectories(ctx context.Context, dirs []string) (*validation.Report, error)
}

var (
	_ command.Commander[BuildBundleCommand] = (*BuildBundleHandler)(nil)
	_ command.Commander[LintSourcesCommand] = (*LintSourcesHandler)(nil)
)

// BuildBundleHandler runs the ingester for BuildBundleCommand messages.
type BuildBundleHandler struct {
	inner  *commands.Handler[BuildBundleCommand]
	result *ingest.Result
}

// NewBuildBundleHandler binds builder to the shared command handler.
func NewBuildBundleHandler(builder BundleBuilder, logger interfaces.Logger, opts ...commands.HandlerOption[BuildBundleCommand]) *BuildBundleHandler {
	logger = logging.OrNoOp(logger)
	h := &BuildBundleHandler{}

	exec := func(ctx context.Context, msg BuildBundleCommand) error {
		result, err := builder.Ingest(ctx, msg.SourceDirs, msg.OutputPath)
		if err != nil {
			return err
		}
		h.result = result
		logging.WithFields(logger, map[string]any{
			"projects":    result.Projects,
			"experiences": result.Experiences,
			"build":       result.Meta.Build,
		}).Info("content.command.build_bundle.completed", "output", result.OutputPath)
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildBundleCommand]{
		commands.WithLogger[BuildBundleCommand](logger),
		commands.WithOperation[BuildBundleCommand](buildOperation),
	}
	h.inner = commands.NewHandler(command.CommandFunc[BuildBundleCommand](exec), append(handlerOpts, opts...)...)
	return h
}

// Execute satisfies command.Commander[BuildBundleCommand].
func (h *BuildBundleHandler) Execute(ctx context.Context, msg BuildBundleCommand) error {
	h.result = nil
	return h.inner.Execute(ctx, msg)
}

// Result returns the summary of the last successful execution, or nil.
func (h *BuildBundleHandler) Result() *ingest.Result {
	return h.result
}

// LintSourcesHandler runs the linter for LintSourcesCommand messages and
// fails when any issue is found.
type LintSourcesHandler struct {
	inner  *commands.Handler[LintSourcesCommand]
	report *validation.Report
}

// NewLintSourcesHandler binds linter to the shared command handler.
func NewLintSourcesHandler(linter SourceLinter, logger interfaces.Logger, opts ...commands.HandlerOption[LintSourcesCommand]) *LintSourcesHandler {
	logger = logging.OrNoOp(logger)
	h := &LintSourcesHandler{}

	exec := func(ctx context.Context, msg LintSourcesCommand) error {
		report, err := linter.LintDirectories(ctx, msg.SourceDirs)
		if err != nil {
			return err
		}
		h.report = report
		if err := report.Err(); err != nil {
			return err
		}
		logger.Info("content.command.lint_sources.completed", "files", report.Files)
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintSourcesCommand]{
		commands.WithLogger[LintSourcesCommand](logger),
		commands.WithOperation[LintSourcesCommand](lintOperation),
	}
	h.inner = commands.NewHandler(command.CommandFunc[LintSourcesCommand](exec), append(handlerOpts, opts...)...)
	return h
}

// Execute satisfies command.Commander[LintSourcesCommand].
func (h *LintSourcesHandler) Execute(ctx context.Context, msg LintSourcesCommand) error {
	h.report = nil
	return h.inner.Execute(ctx, msg)
}

// Report returns the report of the last run, including failing ones.
func (h *LintSourcesHandler) Report() *validation.Report {
	return h.report
}
