package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/cmd/content/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

// Usage: lint [DIR...]. Without arguments the fixed source directories are
// checked.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("content lint: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	module, err := moduleBuilder(bootstrap.Options{SourceDirs: args})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	report, err := module.Lint(ctx)
	if report != nil {
		for _, issue := range report.Issues {
			fmt.Fprintln(out, issue.String())
		}
	}
	if errors.Is(err, portfolio.ErrLintFailed) {
		return fmt.Errorf("%d issue(s) in %d file(s)", len(report.Issues), report.Files)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d file(s) ok\n", report.Files)
	return nil
}
