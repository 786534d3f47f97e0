// Package portfolio compiles portfolio artifact sources (projects and work
// experiences) into a single YAML bundle at build time and loads that bundle
// back into ordered content at run time.
package portfolio

import (
	"context"

	"github.com/goliatone/go-portfolio/internal/artifacts"
	"github.com/goliatone/go-portfolio/internal/bundle"
	contentcmd "github.com/goliatone/go-portfolio/internal/commands/content"
	"github.com/goliatone/go-portfolio/internal/di"
	"github.com/goliatone/go-portfolio/internal/ingest"
	"github.com/goliatone/go-portfolio/internal/validation"
)

type (
	Project       = artifacts.Project
	Experience    = artifacts.Experience
	Artifact      = artifacts.Artifact
	Language      = artifacts.Language
	ProjectStatus = artifacts.ProjectStatus
	Meta          = artifacts.Meta
	ParseError    = artifacts.ParseError

	Content     = bundle.Content
	StatusGroup = bundle.StatusGroup

	IngestResult = ingest.Result
	LintReport   = validation.Report
	LintIssue    = validation.Issue

	BuildBundleCommand = contentcmd.BuildBundleCommand
	LintSourcesCommand = contentcmd.LintSourcesCommand
)

var (
	ErrParse           = artifacts.ErrParse
	ErrUnknownKind     = artifacts.ErrUnknownKind
	ErrUnknownLanguage = artifacts.ErrUnknownLanguage
	ErrUnknownStatus   = artifacts.ErrUnknownStatus
	ErrMissingField    = artifacts.ErrMissingField
	ErrIO              = ingest.ErrIO
	ErrLintFailed      = validation.ErrLintFailed
)

// CompareStatus orders project statuses by display priority.
func CompareStatus(a, b ProjectStatus) int {
	return artifacts.CompareStatus(a, b)
}

// Module is the top level façade over the content pipeline.
type Module struct {
	container *di.Container
}

// New constructs a Module using cfg and optional container overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Ingest compiles the configured source directories into the configured
// bundle path.
func (m *Module) Ingest(ctx context.Context) (*IngestResult, error) {
	handler := m.container.BuildHandler()
	err := handler.Execute(ctx, BuildBundleCommand{
		SourceDirs: m.container.Config.Content.SourceDirs,
		OutputPath: m.container.Config.Content.OutputPath,
	})
	if err != nil {
		return nil, err
	}
	return handler.Result(), nil
}

// Lint checks the configured source directories. The report is returned
// alongside ErrLintFailed when issues were found.
func (m *Module) Lint(ctx context.Context) (*LintReport, error) {
	handler := m.container.LintHandler()
	err := handler.Execute(ctx, LintSourcesCommand{SourceDirs: m.container.Config.Content.SourceDirs})
	return handler.Report(), err
}

// LoadBundle reads the configured bundle path.
func (m *Module) LoadBundle() (*Content, error) {
	return m.container.Loader().LoadFile(m.container.Config.Content.OutputPath)
}

// Load parses compiled bundle text into ordered content.
func Load(data []byte) (*Content, error) {
	return bundle.Load(data)
}

// LoadFile reads and parses the compiled bundle at path.
func LoadFile(path string) (*Content, error) {
	return bundle.LoadFile(path)
}
