package bundle

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-portfolio/internal/artifacts"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// TextCodeReadFailed tags bundle files that could not be read.
const TextCodeReadFailed = "BUNDLE_READ_FAILED"

// ErrRead marks failures to read a bundle file from disk.
var ErrRead = errors.New("bundle: read failed")

// Content is the ordered view of a bundle consumed by the presentation layer.
type Content struct {
	Projects    []artifacts.Project
	Experiences []artifacts.Experience
	Meta        artifacts.Meta
}

// StatusGroup is a display section of projects sharing a status.
type StatusGroup struct {
	Status   artifacts.ProjectStatus
	Projects []artifacts.Project
}

// ProjectsByStatus groups projects in status priority order: Completed,
// Ongoing, Discontinued. Empty groups are omitted and each group keeps the
// loader's time ordering.
func (c *Content) ProjectsByStatus() []StatusGroup {
	if c == nil {
		return nil
	}
	var groups []StatusGroup
	for _, status := range artifacts.Statuses() {
		var members []artifacts.Project
		for _, p := range c.Projects {
			if p.Status == status {
				members = append(members, p)
			}
		}
		if len(members) > 0 {
			groups = append(groups, StatusGroup{Status: status, Projects: members})
		}
	}
	return groups
}

// Loader decodes bundles. The zero value is not usable; call NewLoader.
type Loader struct {
	logger interfaces.Logger
}

// NewLoader returns a Loader that reports through logger, which may be nil.
func NewLoader(logger interfaces.Logger) *Loader {
	return &Loader{logger: logging.OrNoOp(logger)}
}

// Load parses bundle text into ordered content. Any malformed artifact fails
// the whole load with a parse error locating it, e.g. "artifacts[3]".
func (l *Loader) Load(data []byte) (*Content, error) {
	decoded, err := artifacts.DecodeBundle(data)
	if err != nil {
		err = locate(err)
		l.logger.Error("bundle.load.failed", "error", err)
		return nil, err
	}

	content := &Content{
		Projects:    []artifacts.Project{},
		Experiences: []artifacts.Experience{},
		Meta:        decoded.Meta,
	}
	for i, a := range decoded.Artifacts {
		switch {
		case a.Kind == artifacts.KindProject && a.Project != nil:
			content.Projects = append(content.Projects, *a.Project)
		case a.Kind == artifacts.KindExperience && a.Experience != nil:
			content.Experiences = append(content.Experiences, *a.Experience)
		default:
			err := locate(&artifacts.ArtifactError{Index: i, Err: fmt.Errorf("%w: %q", artifacts.ErrUnknownKind, string(a.Kind))})
			l.logger.Error("bundle.load.failed", "error", err)
			return nil, err
		}
	}

	// Times compare as plain strings; authors keep them lexicographically
	// sortable (e.g. "2024/06").
	slices.SortStableFunc(content.Experiences, func(a, b artifacts.Experience) int {
		return cmp.Compare(b.StartTime, a.StartTime)
	})
	slices.SortStableFunc(content.Projects, func(a, b artifacts.Project) int {
		return cmp.Compare(b.Time, a.Time)
	})

	l.logger.Debug("bundle.loaded",
		"projects", len(content.Projects),
		"experiences", len(content.Experiences),
		"build", content.Meta.Build,
	)
	return content, nil
}

// LoadFile reads and loads the bundle at path.
func (l *Loader) LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerrors.Wrap(errors.Join(ErrRead, err), goerrors.CategoryInternal, "read bundle "+path).
			WithTextCode(TextCodeReadFailed)
	}
	return l.Load(data)
}

var defaultLoader = NewLoader(nil)

// Load parses bundle text with a silent loader.
func Load(data []byte) (*Content, error) {
	return defaultLoader.Load(data)
}

// LoadFile reads and loads the bundle at path with a silent loader.
func LoadFile(path string) (*Content, error) {
	return defaultLoader.LoadFile(path)
}

func locate(err error) error {
	var artErr *artifacts.ArtifactError
	if errors.As(err, &artErr) {
		return artifacts.NewParseError(artErr.Location(), artErr.Line, artErr.Err)
	}
	return artifacts.NewParseError("bundle", 0, err)
}
