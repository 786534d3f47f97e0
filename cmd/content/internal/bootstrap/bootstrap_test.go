package bootstrap

import (
	"slices"
	"testing"
)

func TestFromArgs(t *testing.T) {
	if opts := FromArgs(nil); opts.OutputPath != "" || opts.SourceDirs != nil {
		t.Fatalf("expected defaults, got %+v", opts)
	}
	opts := FromArgs([]string{"out.yaml", "a", "b"})
	if opts.OutputPath != "out.yaml" || !slices.Equal(opts.SourceDirs, []string{"a", "b"}) {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestBuildModuleAppliesOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_PROVIDER", "none")

	module, err := BuildModule(Options{OutputPath: "out/compiled.yaml", SourceDirs: []string{"x"}, EnvFiles: []string{"missing.env"}})
	if err != nil {
		t.Fatalf("BuildModule: %v", err)
	}
	cfg := module.Container().Config
	if cfg.Content.OutputPath != "out/compiled.yaml" || !slices.Equal(cfg.Content.SourceDirs, []string{"x"}) {
		t.Fatalf("overrides not applied: %+v", cfg.Content)
	}
	if cfg.Logging.Provider != "none" {
		t.Fatalf("expected environment logging override, got %q", cfg.Logging.Provider)
	}
}
