package bootstrap

import (
	"fmt"

	"github.com/goliatone/go-portfolio"
)

// Options overrides the fixed build layout. Empty fields keep the defaults.
type Options struct {
	OutputPath string
	SourceDirs []string
	EnvFiles   []string
}

// FromArgs maps positional arguments `OUT DIR...` onto Options. No
// arguments keeps the fixed layout.
func FromArgs(args []string) Options {
	var opts Options
	if len(args) > 0 {
		opts.OutputPath = args[0]
	}
	if len(args) > 1 {
		opts.SourceDirs = append([]string{}, args[1:]...)
	}
	return opts
}

// BuildModule assembles a portfolio module from the default configuration,
// .env logging overrides and opts.
func BuildModule(opts Options) (*portfolio.Module, error) {
	cfg, err := portfolio.ConfigFromEnv(opts.EnvFiles...)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if opts.OutputPath != "" {
		cfg.Content.OutputPath = opts.OutputPath
	}
	if len(opts.SourceDirs) > 0 {
		cfg.Content.SourceDirs = opts.SourceDirs
	}
	return portfolio.New(cfg)
}
