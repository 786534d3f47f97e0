package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/artifacts"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Result summarises a successful ingest run.
type Result struct {
	OutputPath  string
	Projects    int
	Experiences int
	Meta        artifacts.Meta
}

// Total is the number of artifacts written to the bundle.
func (r *Result) Total() int {
	if r == nil {
		return 0
	}
	return r.Projects + r.Experiences
}

// Option configures an Ingester.
type Option func(*Ingester)

// WithRenderer sets the markdown renderer applied to every desc.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(i *Ingester) {
		if renderer != nil {
			i.renderer = renderer
		}
	}
}

// WithLogger sets the logger used for progress entries.
func WithLogger(logger interfaces.Logger) Option {
	return func(i *Ingester) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp meta.build.
func WithClock(now func() time.Time) Option {
	return func(i *Ingester) {
		if now != nil {
			i.now = now
		}
	}
}

// Ingester compiles artifact source directories into a single bundle file.
type Ingester struct {
	renderer interfaces.MarkdownRenderer
	logger   interfaces.Logger
	now      func() time.Time
}

// New builds an Ingester. Without options it renders with the default
// goldmark configuration, logs nothing and stamps with time.Now.
func New(opts ...Option) *Ingester {
	i := &Ingester{
		renderer: markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// Ingest reads every regular file in sourceDirs, renders each artifact's
// desc to HTML and writes the bundle to outputPath. Directory order is kept;
// files inside a directory are taken in name order. Any read, parse or write
// failure aborts the run and leaves outputPath untouched.
func (i *Ingester) Ingest(ctx context.Context, sourceDirs []string, outputPath string) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(outputPath) == "" {
		return nil, ioError("write", outputPath, errors.New("output path is empty"))
	}

	logger := i.logger.WithContext(ctx)
	started := i.now()
	logger.Info("ingest.started", "source_dirs", sourceDirs, "output", outputPath)

	result := &Result{OutputPath: outputPath}
	var rendered []artifacts.Artifact

	for _, dir := range sourceDirs {
		paths, err := ListSources(dir)
		if err != nil {
			logger.Error("ingest.dir.failed", "dir", dir, "error", err)
			return nil, err
		}
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			artifact, err := i.compile(path)
			if err != nil {
				logger.Error("ingest.file.failed", "source_path", path, "error", err)
				return nil, err
			}
			logging.WithSourceContext(logger, path, string(artifact.Kind), "rendered").
				Debug("ingest.file.compiled", "title", artifact.Title())

			switch artifact.Kind {
			case artifacts.KindProject:
				result.Projects++
			case artifacts.KindExperience:
				result.Experiences++
			}
			rendered = append(rendered, artifact)
		}
	}

	result.Meta = artifacts.NewMeta(i.now())
	data, err := artifacts.EncodeBundle(artifacts.Bundle{Artifacts: rendered, Meta: result.Meta})
	if err != nil {
		return nil, ioError("encode", outputPath, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeAtomic(outputPath, data); err != nil {
		logger.Error("ingest.write.failed", "output", outputPath, "error", err)
		return nil, err
	}

	logger.Info("ingest.completed",
		"output", outputPath,
		"projects", result.Projects,
		"experiences", result.Experiences,
		"build", result.Meta.Build,
		"duration", i.now().Sub(started),
	)
	return result, nil
}

// compile reads, parses and renders a single source file.
func (i *Ingester) compile(path string) (artifacts.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return artifacts.Artifact{}, ioError("read", path, err)
	}
	artifact, err := decodeSource(path, data)
	if err == nil {
		err = artifact.Validate()
	}
	if err != nil {
		return artifacts.Artifact{}, artifacts.NewParseError(path, 0, err)
	}
	html, err := i.renderer.Parse([]byte(artifact.Desc()))
	if err != nil {
		return artifacts.Artifact{}, ioError("render", path, err)
	}
	return artifact.WithDesc(string(html)), nil
}

// ListSources returns the regular files of dir sorted by name, following
// symlinks that resolve to regular files. Directories, symlinks to
// directories and other special entries are skipped. The linter walks
// sources through it as well.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ioError("read dir", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.Type().IsRegular() {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				return nil, ioError("stat", path, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}
		}
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths, nil
}
