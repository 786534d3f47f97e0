package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-portfolio/internal/artifacts"
)

func experience(company, start string) string {
	return fmt.Sprintf("  - Experience: {company: %s, start_time: %q, end_time: Present, location: Remote, icon: i.png, title: Eng, desc: \"<p>%s</p>\"}\n", company, start, company)
}

func project(title, t, status string) string {
	return fmt.Sprintf("  - Project: {title: %s, time: %q, languages: [Go], status: %s, tags: [], preview: p.png, link: l, desc: \"<p>%s</p>\"}\n", title, t, status, title)
}

func bundleText(items ...string) []byte {
	return []byte("artifacts:\n" + strings.Join(items, "") + "meta:\n  build: \"1718000000000\"\n")
}

func TestLoadOrdersExperiencesByStartTime(t *testing.T) {
	content, err := Load(bundleText(
		experience("A", "2020/01"),
		experience("B", "2024/07"),
		experience("C", "2022/03"),
	))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var starts []string
	for _, e := range content.Experiences {
		starts = append(starts, e.StartTime)
	}
	if !slices.Equal(starts, []string{"2024/07", "2022/03", "2020/01"}) {
		t.Fatalf("unexpected order %v", starts)
	}
	if len(content.Projects) != 0 || content.Projects == nil {
		t.Fatalf("expected empty non-nil projects, got %#v", content.Projects)
	}
}

func TestLoadSortIsStable(t *testing.T) {
	content, err := Load(bundleText(
		project("first", "2023/01", "Ongoing"),
		project("newest", "2024/01", "Completed"),
		project("second", "2023/01", "Discontinued"),
		project("third", "2023/01", "Ongoing"),
	))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var titles []string
	for _, p := range content.Projects {
		titles = append(titles, p.Title)
	}
	if !slices.Equal(titles, []string{"newest", "first", "second", "third"}) {
		t.Fatalf("unexpected order %v", titles)
	}
}

func TestLoadPartitionsMixedKinds(t *testing.T) {
	content, err := Load(bundleText(project("P", "2024/06", "Ongoing"), experience("Acme", "2022/03")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(content.Projects) != 1 || len(content.Experiences) != 1 {
		t.Fatalf("expected singleton partitions, got %d/%d", len(content.Projects), len(content.Experiences))
	}
	if content.Projects[0].Desc != "<p>P</p>" || content.Experiences[0].Desc != "<p>Acme</p>" {
		t.Fatalf("desc must pass through untouched: %q %q", content.Projects[0].Desc, content.Experiences[0].Desc)
	}
	if content.Meta.Build != "1718000000000" {
		t.Fatalf("unexpected meta %+v", content.Meta)
	}
}

func TestLoadEmptyBundle(t *testing.T) {
	content, err := Load([]byte("artifacts: []\nmeta:\n  build: \"42\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(content.Projects) != 0 || len(content.Experiences) != 0 {
		t.Fatalf("expected empty content, got %+v", content)
	}
	if content.ProjectsByStatus() != nil {
		t.Fatalf("expected no status groups")
	}
}

func TestLoadFailures(t *testing.T) {
	cases := []struct {
		name     string
		text     []byte
		target   error
		location string
	}{
		{
			name:   "malformed yaml",
			text:   []byte("artifacts: [\n"),
			target: artifacts.ErrParse,
		},
		{
			name:     "missing tag",
			text:     bundleText("  - {title: P}\n"),
			target:   artifacts.ErrUnknownKind,
			location: "artifacts[0]",
		},
		{
			name:     "unknown language",
			text:     bundleText(project("P", "2024/01", "Ongoing"), strings.Replace(project("Q", "2024/01", "Ongoing"), "[Go]", "[Scala]", 1)),
			target:   artifacts.ErrUnknownLanguage,
			location: "artifacts[1]",
		},
		{
			name:     "unknown status",
			text:     bundleText(project("P", "2024/01", "Paused")),
			target:   artifacts.ErrUnknownStatus,
			location: "artifacts[0]",
		},
		{
			name:     "missing field",
			text:     bundleText(strings.Replace(experience("A", "2020/01"), "icon: i.png, ", "", 1)),
			target:   artifacts.ErrMissingField,
			location: "artifacts[0]",
		},
		{
			name:     "empty experience body",
			text:     bundleText("  - Experience:\n"),
			target:   artifacts.ErrMissingField,
			location: "artifacts[0]",
		},
		{
			name:     "null project body",
			text:     bundleText(experience("A", "2020/01"), "  - Project: ~\n"),
			target:   artifacts.ErrMissingField,
			location: "artifacts[1]",
		},
		{
			name:     "null language",
			text:     bundleText(strings.Replace(project("P", "2024/01", "Ongoing"), "[Go]", "[~]", 1)),
			target:   artifacts.ErrUnknownLanguage,
			location: "artifacts[0]",
		},
		{
			name:     "null item",
			text:     bundleText(project("P", "2024/01", "Ongoing"), "  - ~\n"),
			target:   artifacts.ErrUnknownKind,
			location: "artifacts[1]",
		},
		{
			name:   "zero build stamp",
			text:   []byte("artifacts: []\nmeta:\n  build: \"0\"\n"),
			target: artifacts.ErrParse,
		},
		{
			name:   "missing meta",
			text:   []byte("artifacts: []\n"),
			target: artifacts.ErrMissingField,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.text)
			if err == nil {
				t.Fatal("expected load to fail")
			}
			if !artifacts.IsParseError(err) || !errors.Is(err, tc.target) {
				t.Fatalf("expected parse error wrapping %v, got %v", tc.target, err)
			}
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation category, got %v", err)
			}
			if tc.location != "" {
				var pe *artifacts.ParseError
				if !errors.As(err, &pe) || pe.Location != tc.location {
					t.Fatalf("expected location %s, got %#v", tc.location, pe)
				}
				if pe.Line == 0 {
					t.Fatalf("expected a line number for %s", tc.location)
				}
			}
		})
	}
}

func TestProjectsByStatus(t *testing.T) {
	content, err := Load(bundleText(
		project("d", "2024/05", "Discontinued"),
		project("o1", "2024/04", "Ongoing"),
		project("c", "2024/03", "Completed"),
		project("o2", "2024/02", "Ongoing"),
	))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	groups := content.ProjectsByStatus()
	var got []string
	for _, g := range groups {
		var titles []string
		for _, p := range g.Projects {
			titles = append(titles, p.Title)
		}
		got = append(got, string(g.Status)+":"+strings.Join(titles, ","))
	}
	want := []string{"Completed:c", "Ongoing:o1,o2", "Discontinued:d"}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected groups %v, want %v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compiled.yaml")
	if err := os.WriteFile(path, bundleText(project("P", "2024/06", "Ongoing")), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	content, err := NewLoader(nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(content.Projects) != 1 {
		t.Fatalf("expected one project, got %d", len(content.Projects))
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrRead) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected read error, got %v", err)
	}
}
