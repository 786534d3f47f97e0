package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/internal/artifacts"
	"github.com/goliatone/go-portfolio/internal/runtimeconfig"
)

func main() {
	if err := runPreview(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("content preview: %v", err)
	}
}

func runPreview(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("content-preview", flag.ContinueOnError)
	fs.SetOutput(out)
	bundlePath := fs.String("bundle", runtimeconfig.DefaultOutputPath, "Path to the compiled bundle")
	showDesc := fs.Bool("desc", false, "Print the rendered HTML descriptions")

	if err := fs.Parse(args); err != nil {
		return err
	}

	content, err := portfolio.LoadFile(*bundlePath)
	if err != nil {
		return err
	}

	built := content.Meta.Build
	if at, err := content.Meta.BuiltAt(); err == nil {
		built = at.Format("2006-01-02 15:04:05 MST")
	}
	fmt.Fprintf(out, "bundle %s (built %s)\n", *bundlePath, built)

	fmt.Fprintf(out, "\nExperiences (%d)\n", len(content.Experiences))
	for _, e := range content.Experiences {
		fmt.Fprintf(out, "  %s - %s  %s, %s (%s)\n", e.StartTime, e.EndTime, e.Title, e.Company, e.Location)
		printDesc(out, *showDesc, e.Desc)
	}

	fmt.Fprintf(out, "\nProjects (%d)\n", len(content.Projects))
	for _, group := range content.ProjectsByStatus() {
		fmt.Fprintf(out, " %s [%s]\n", group.Status.Label(), group.Status.Color())
		for _, p := range group.Projects {
			fmt.Fprintf(out, "  %s  %s  %s  %s\n", p.Time, p.Title, languageLabels(p.Languages), tagLabels(p.Tags))
			printDesc(out, *showDesc, p.Desc)
		}
	}
	return nil
}

func languageLabels(langs []artifacts.Language) string {
	labels := make([]string, 0, len(langs))
	for _, lang := range langs {
		labels = append(labels, lang.Label())
	}
	return strings.Join(labels, ", ")
}

func tagLabels(tags []string) string {
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, fmt.Sprintf("#%s(%s)", tag, artifacts.TagColor(tag)))
	}
	return strings.Join(labels, " ")
}

func printDesc(out io.Writer, show bool, desc string) {
	if !show {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(desc), "\n") {
		fmt.Fprintf(out, "      %s\n", line)
	}
}
