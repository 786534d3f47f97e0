package di

import (
	"fmt"
	"time"

	"github.com/goliatone/go-portfolio/internal/bundle"
	"github.com/goliatone/go-portfolio/internal/commands"
	contentcmd "github.com/goliatone/go-portfolio/internal/commands/content"
	"github.com/goliatone/go-portfolio/internal/ingest"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/console"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/runtimeconfig"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Container wires the pipeline services from a validated Config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	renderer       interfaces.MarkdownRenderer
	clock          func() time.Time

	ingester *ingest.Ingester
	linter   *validation.Linter
	loader   *bundle.Loader

	buildHandler *contentcmd.BuildBundleHandler
	lintHandler  *contentcmd.LintSourcesHandler
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithRenderer overrides the goldmark renderer built from Config.Markdown.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(c *Container) {
		if renderer != nil {
			c.renderer = renderer
		}
	}
}

// WithClock pins the clock used to stamp bundles.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		if now != nil {
			c.clock = now
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	if c.renderer == nil {
		c.renderer = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			Sanitize:   cfg.Markdown.Sanitize,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		})
	}

	c.ingester = ingest.New(
		ingest.WithRenderer(c.renderer),
		ingest.WithLogger(logging.IngestLogger(c.loggerProvider)),
		ingest.WithClock(c.clock),
	)
	c.linter = validation.NewLinter(logging.LintLogger(c.loggerProvider))
	c.loader = bundle.NewLoader(logging.BundleLogger(c.loggerProvider))

	c.buildHandler = contentcmd.NewBuildBundleHandler(
		c.ingester,
		logging.CommandsLogger(c.loggerProvider, "build"),
		commands.WithTimeout[contentcmd.BuildBundleCommand](cfg.Commands.Timeout),
	)
	c.lintHandler = contentcmd.NewLintSourcesHandler(
		c.linter,
		logging.CommandsLogger(c.loggerProvider, "lint"),
		commands.WithTimeout[contentcmd.LintSourcesCommand](cfg.Commands.Timeout),
	)

	logging.ModuleLogger(c.loggerProvider, "").Debug("container.configured",
		"logging_provider", runtimeconfig.NormalizeProvider(cfg.Logging.Provider),
		"source_dirs", cfg.Content.SourceDirs,
		"output", cfg.Content.OutputPath,
	)
	return c, nil
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("di: logger provider: %w", err)
		}
		return provider, nil
	case "none":
		return nil, nil
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

// LoggerProvider returns the provider serving module loggers; nil means
// logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Renderer returns the markdown renderer used at ingest.
func (c *Container) Renderer() interfaces.MarkdownRenderer { return c.renderer }

// Ingester returns the bundle compiler.
func (c *Container) Ingester() *ingest.Ingester { return c.ingester }

// Linter returns the source linter.
func (c *Container) Linter() *validation.Linter { return c.linter }

// Loader returns the bundle loader.
func (c *Container) Loader() *bundle.Loader { return c.loader }

// BuildHandler returns the build command handler.
func (c *Container) BuildHandler() *contentcmd.BuildBundleHandler { return c.buildHandler }

// LintHandler returns the lint command handler.
func (c *Container) LintHandler() *contentcmd.LintSourcesHandler { return c.lintHandler }
