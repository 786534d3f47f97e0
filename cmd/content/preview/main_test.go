package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const bundle = `artifacts:
  - Project: {title: Rover, time: "2022/08", languages: [C, Cpp], status: Completed, tags: [Robotics], preview: r.png, link: l, desc: "<p>rover</p>"}
  - Project: {title: Karage, time: "2024/06", languages: [Rust], status: Ongoing, tags: [Music], preview: k.png, link: l, desc: "<p>karage</p>"}
  - Experience: {company: Globex, start_time: "2022/03", end_time: "2024/06", location: Berlin, icon: g.png, title: Backend Engineer, desc: "<p>globex</p>"}
meta:
  build: "1718000000000"
`

func TestRunPreviewPrintsOrderedSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compiled.yaml")
	if err := os.WriteFile(path, []byte(bundle), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := runPreview(context.Background(), []string{"-bundle", path, "-desc"}, &out); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Experiences (1)", "Projects (2)", "Completed [green]", "C, C++", "#Robotics(blue)", "<p>globex</p>"} {
		if !strings.Contains(text, want) {
			t.Fatalf("preview missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "Rover") > strings.Index(text, "Karage") {
		t.Fatalf("expected Completed group before Ongoing:\n%s", text)
	}
}

func TestRunPreviewMissingBundle(t *testing.T) {
	err := runPreview(context.Background(), []string{"-bundle", filepath.Join(t.TempDir(), "none.yaml")}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected missing bundle to fail")
	}
}
