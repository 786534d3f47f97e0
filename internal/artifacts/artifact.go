package artifacts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind is the discriminator of the Artifact union. Its value is the mapping
// key used on the wire.
type Kind string

const (
	KindProject    Kind = "Project"
	KindExperience Kind = "Experience"
)

// Valid reports whether k is a recognised discriminator.
func (k Kind) Valid() bool {
	return k == KindProject || k == KindExperience
}

// Artifact is the tagged union over Project and Experience. Exactly one of
// the payload pointers is set and it matches Kind.
type Artifact struct {
	Kind       Kind
	Project    *Project
	Experience *Experience
}

// NewProjectArtifact tags p as a Project artifact.
func NewProjectArtifact(p Project) Artifact {
	clone := p.Clone()
	return Artifact{Kind: KindProject, Project: &clone}
}

// NewExperienceArtifact tags e as an Experience artifact.
func NewExperienceArtifact(e Experience) Artifact {
	clone := e
	return Artifact{Kind: KindExperience, Experience: &clone}
}

// Desc returns the description of whichever variant is set.
func (a Artifact) Desc() string {
	switch a.Kind {
	case KindProject:
		if a.Project != nil {
			return a.Project.Desc
		}
	case KindExperience:
		if a.Experience != nil {
			return a.Experience.Desc
		}
	}
	return ""
}

// WithDesc returns a copy of a whose description is replaced by desc. All
// other fields are copied unchanged.
func (a Artifact) WithDesc(desc string) Artifact {
	switch a.Kind {
	case KindProject:
		if a.Project == nil {
			return a
		}
		p := a.Project.Clone()
		p.Desc = desc
		return Artifact{Kind: KindProject, Project: &p}
	case KindExperience:
		if a.Experience == nil {
			return a
		}
		e := *a.Experience
		e.Desc = desc
		return Artifact{Kind: KindExperience, Experience: &e}
	}
	return a
}

// Title is a human label for logs: the project title or the experience
// company.
func (a Artifact) Title() string {
	switch {
	case a.Kind == KindProject && a.Project != nil:
		return a.Project.Title
	case a.Kind == KindExperience && a.Experience != nil:
		return a.Experience.Company
	}
	return ""
}

// Validate checks the union shape and the closed enumerations of the
// payload.
func (a Artifact) Validate() error {
	switch a.Kind {
	case KindProject:
		if a.Project == nil || a.Experience != nil {
			return fmt.Errorf("%w: Project artifact must carry only a project", ErrUnknownKind)
		}
		return a.Project.Validate()
	case KindExperience:
		if a.Experience == nil || a.Project != nil {
			return fmt.Errorf("%w: Experience artifact must carry only an experience", ErrUnknownKind)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(a.Kind))
	}
}

// MarshalYAML emits the key-tagged form `Project: {...}` or
// `Experience: {...}`.
func (a Artifact) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Kind == KindProject {
		return map[string]*Project{string(KindProject): a.Project}, nil
	}
	return map[string]*Experience{string(KindExperience): a.Experience}, nil
}

// UnmarshalYAML accepts a mapping with exactly one discriminator key.
func (a *Artifact) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: expected a Project or Experience mapping", node.Line, ErrUnknownKind)
	}
	if len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w: expected exactly one of Project or Experience, found %d keys", node.Line, ErrUnknownKind, len(node.Content)/2)
	}

	key, value := node.Content[0], node.Content[1]
	kind := Kind(key.Value)
	if !kind.Valid() {
		return fmt.Errorf("line %d: %w: %q", key.Line, ErrUnknownKind, key.Value)
	}
	// yaml.v3 skips custom unmarshalers on null nodes and leaves the zero value.
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: %s body must be a mapping", value.Line, ErrMissingField, key.Value)
	}

	switch kind {
	case KindProject:
		var p Project
		if err := value.Decode(&p); err != nil {
			return err
		}
		*a = Artifact{Kind: KindProject, Project: &p}
	case KindExperience:
		var e Experience
		if err := value.Decode(&e); err != nil {
			return err
		}
		*a = Artifact{Kind: KindExperience, Experience: &e}
	}
	return nil
}

// DecodeArtifact parses a single YAML document holding one artifact.
func DecodeArtifact(data []byte) (Artifact, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Artifact{}, err
	}
	if node.Kind == 0 {
		return Artifact{}, fmt.Errorf("%w: empty document", ErrUnknownKind)
	}
	var a Artifact
	if err := node.Decode(&a); err != nil {
		return Artifact{}, err
	}
	if !a.Kind.Valid() {
		return Artifact{}, fmt.Errorf("%w: empty document", ErrUnknownKind)
	}
	return a, nil
}
