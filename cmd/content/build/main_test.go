package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCompilesFixtures(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_PROVIDER", "none")
	fixtures := filepath.Join("..", "..", "..", "testdata", "src", "artifacts")
	output := filepath.Join(t.TempDir(), "compiled.yaml")

	var out bytes.Buffer
	args := []string{output, filepath.Join(fixtures, "projects"), filepath.Join(fixtures, "experiences")}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "3 project(s), 3 experience(s)") {
		t.Fatalf("unexpected summary %q", out.String())
	}
}

func TestRunFailsOnMissingDirectory(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_PROVIDER", "none")
	root := t.TempDir()

	err := run(context.Background(), []string{filepath.Join(root, "out.yaml"), filepath.Join(root, "missing")}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected missing directory to fail the build")
	}
}
