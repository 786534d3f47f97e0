package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-portfolio/cmd/content/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

// Usage: build [OUT DIR...]. Without arguments the projects and experiences
// under src/artifacts are compiled into src/artifacts/build/compiled.yaml.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("content build: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	module, err := moduleBuilder(bootstrap.FromArgs(args))
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	result, err := module.Ingest(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s: %d project(s), %d experience(s), build %s\n",
		result.OutputPath, result.Projects, result.Experiences, result.Meta.Build)
	return nil
}
