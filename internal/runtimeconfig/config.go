package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/markdown"
)

var (
	ErrSourceDirsRequired     = errors.New("portfolio config: at least one source directory is required")
	ErrSourceDirEmpty         = errors.New("portfolio config: source directory must not be blank")
	ErrOutputPathRequired     = errors.New("portfolio config: bundle output path is required")
	ErrMarkdownExtension      = errors.New("portfolio config: markdown extension is unknown")
	ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("portfolio config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("portfolio config: logging format is invalid")
	ErrCommandTimeoutInvalid  = errors.New("portfolio config: command timeout must be zero or positive")
)

const (
	DefaultProjectsDir    = "src/artifacts/projects"
	DefaultExperiencesDir = "src/artifacts/experiences"
	DefaultOutputPath     = "src/artifacts/build/compiled.yaml"
)

// Config aggregates the content pipeline settings.
type Config struct {
	Content  ContentConfig
	Markdown MarkdownParserConfig
	Logging  LoggingConfig
	Commands CommandsConfig
}

// ContentConfig lists the artifact source directories, in bundle order, and
// the compiled bundle location.
type ContentConfig struct {
	SourceDirs []string
	OutputPath string
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// CommandsConfig tunes the command handlers. A zero timeout disables it.
type CommandsConfig struct {
	Timeout time.Duration
}

// DefaultConfig returns the fixed build layout: projects first, then
// experiences, compiled into src/artifacts/build.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			SourceDirs: []string{DefaultProjectsDir, DefaultExperiencesDir},
			OutputPath: DefaultOutputPath,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Commands: CommandsConfig{
			Timeout: time.Minute,
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Content.SourceDirs) == 0 {
		return ErrSourceDirsRequired
	}
	for i, dir := range cfg.Content.SourceDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%w: index %d", ErrSourceDirEmpty, i)
		}
	}
	output := strings.TrimSpace(cfg.Content.OutputPath)
	if output == "" || strings.HasSuffix(output, string(filepath.Separator)) {
		return ErrOutputPathRequired
	}
	for _, ext := range cfg.Markdown.Extensions {
		if !markdown.KnownExtension(ext) {
			return fmt.Errorf("%w: %s", ErrMarkdownExtension, ext)
		}
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	provider := NormalizeProvider(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeProvider lowercases the provider name; blank selects console.
func NormalizeProvider(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return "console"
	}
	return provider
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger", "none":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
