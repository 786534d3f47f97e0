package artifacts

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Meta is the build metadata stamped by the ingester. Build is the decimal
// Unix time in milliseconds at which the bundle was produced.
type Meta struct {
	Build string `yaml:"build" json:"build"`
}

// NewMeta stamps t as build metadata.
func NewMeta(t time.Time) Meta {
	return Meta{Build: strconv.FormatInt(t.UnixMilli(), 10)}
}

var buildStampPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// Validate requires a positive decimal build stamp without leading zeros.
func (m Meta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Build, validation.Required, validation.Match(buildStampPattern)),
	)
}

// BuiltAt converts the build stamp back into a timestamp.
func (m Meta) BuiltAt() (time.Time, error) {
	millis, err := strconv.ParseInt(m.Build, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("artifacts: build stamp %q: %w", m.Build, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// Bundle is the compiled content bundle: the only format crossing the
// build/runtime boundary.
type Bundle struct {
	Artifacts []Artifact `yaml:"artifacts"`
	Meta      Meta       `yaml:"meta"`
}

type bundleDocument struct {
	Artifacts yaml.Node `yaml:"artifacts"`
	Meta      yaml.Node `yaml:"meta"`
}

type metaDocument struct {
	Build *string `yaml:"build" json:"build"`
}

// ArtifactError locates a failure inside a bundle's artifacts sequence.
type ArtifactError struct {
	Index int
	Line  int
	Err   error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifacts[%d]: %v", e.Index, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// Location renders the bundle position, e.g. "artifacts[2]".
func (e *ArtifactError) Location() string {
	return fmt.Sprintf("artifacts[%d]", e.Index)
}

// DecodeBundle parses the compiled bundle text. The first malformed artifact
// aborts decoding with an *ArtifactError carrying its index.
func DecodeBundle(data []byte) (Bundle, error) {
	var doc bundleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Bundle{}, err
	}
	if doc.Artifacts.Kind == 0 {
		return Bundle{}, fmt.Errorf("%w: artifacts", ErrMissingField)
	}
	if doc.Meta.Kind == 0 {
		return Bundle{}, fmt.Errorf("%w: meta", ErrMissingField)
	}

	meta, err := decodeMeta(&doc.Meta)
	if err != nil {
		return Bundle{}, err
	}

	seq := &doc.Artifacts
	if seq.Kind != yaml.SequenceNode {
		return Bundle{}, fmt.Errorf("line %d: artifacts must be a sequence", seq.Line)
	}

	out := Bundle{
		Artifacts: make([]Artifact, 0, len(seq.Content)),
		Meta:      meta,
	}
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return Bundle{}, &ArtifactError{Index: i, Line: item.Line,
				Err: fmt.Errorf("%w: expected a Project or Experience mapping", ErrUnknownKind)}
		}
		var a Artifact
		if err := item.Decode(&a); err != nil {
			return Bundle{}, &ArtifactError{Index: i, Line: item.Line, Err: err}
		}
		if err := a.Validate(); err != nil {
			return Bundle{}, &ArtifactError{Index: i, Line: item.Line, Err: err}
		}
		out.Artifacts = append(out.Artifacts, a)
	}
	return out, nil
}

func decodeMeta(node *yaml.Node) (Meta, error) {
	if node.Kind != yaml.MappingNode {
		return Meta{}, fmt.Errorf("line %d: meta must be a mapping", node.Line)
	}
	var doc metaDocument
	if err := node.Decode(&doc); err != nil {
		return Meta{}, err
	}
	if doc.Build == nil {
		return Meta{}, fmt.Errorf("line %d: %w: meta.build", node.Line, ErrMissingField)
	}
	meta := Meta{Build: *doc.Build}
	if err := meta.Validate(); err != nil {
		return Meta{}, fmt.Errorf("line %d: meta: %v", node.Line, err)
	}
	return meta, nil
}

// EncodeBundle serialises b in the key-tagged YAML form.
func EncodeBundle(b Bundle) ([]byte, error) {
	if b.Artifacts == nil {
		b.Artifacts = []Artifact{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, fmt.Errorf("artifacts: encode bundle: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("artifacts: encode bundle: %w", err)
	}
	return buf.Bytes(), nil
}
