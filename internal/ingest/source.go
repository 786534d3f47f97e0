package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-portfolio/internal/artifacts"
)

const descKey = "desc"

var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// decodeSource parses one source file. Markdown files carry the tagged
// record as frontmatter and the description as body; every other file is a
// single YAML document.
func decodeSource(path string, data []byte) (artifacts.Artifact, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return decodeMarkdownSource(data)
	}
	return artifacts.DecodeArtifact(data)
}

func decodeMarkdownSource(data []byte) (artifacts.Artifact, error) {
	var doc yaml.Node
	body, err := frontmatter.MustParse(bytes.NewReader(data), &doc, yamlFrontmatter)
	if err != nil {
		return artifacts.Artifact{}, fmt.Errorf("frontmatter: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return artifacts.Artifact{}, fmt.Errorf("%w: empty frontmatter", artifacts.ErrUnknownKind)
	}
	// Malformed discriminators are reported by the artifact decoder below.
	if root.Kind == yaml.MappingNode && len(root.Content) == 2 {
		if err := injectDesc(root.Content[1], strings.TrimSpace(string(body))); err != nil {
			return artifacts.Artifact{}, err
		}
	}

	var a artifacts.Artifact
	if err := root.Decode(&a); err != nil {
		return artifacts.Artifact{}, err
	}
	return a, nil
}

// injectDesc adds the markdown body as the desc value of record. An empty
// body leaves the record untouched.
func injectDesc(record *yaml.Node, body string) error {
	if body == "" || record.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(record.Content); i += 2 {
		if record.Content[i].Value == descKey {
			return fmt.Errorf("line %d: %w", record.Content[i].Line, ErrDescConflict)
		}
	}
	record.Content = append(record.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: descKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: body + "\n"},
	)
	return nil
}
