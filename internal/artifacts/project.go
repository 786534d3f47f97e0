package artifacts

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Project is a portfolio entry. Desc holds markdown in source files and HTML
// once the record has been through the ingester.
type Project struct {
	Title     string        `yaml:"title" json:"title"`
	Time      string        `yaml:"time" json:"time"`
	Languages []Language    `yaml:"languages" json:"languages"`
	Status    ProjectStatus `yaml:"status" json:"status"`
	Tags      []string      `yaml:"tags" json:"tags"`
	Preview   string        `yaml:"preview" json:"preview"`
	Link      string        `yaml:"link" json:"link"`
	Desc      string        `yaml:"desc" json:"desc"`
}

// projectDocument mirrors Project with pointer fields so absent keys can be
// told apart from empty values.
type projectDocument struct {
	Title     *string        `yaml:"title" json:"title"`
	Time      *string        `yaml:"time" json:"time"`
	Languages *[]Language    `yaml:"languages" json:"languages"`
	Status    *ProjectStatus `yaml:"status" json:"status"`
	Tags      *[]string      `yaml:"tags" json:"tags"`
	Preview   *string        `yaml:"preview" json:"preview"`
	Link      *string        `yaml:"link" json:"link"`
	Desc      *string        `yaml:"desc" json:"desc"`
}

func (d projectDocument) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.NotNil),
		validation.Field(&d.Time, validation.NotNil),
		validation.Field(&d.Languages, validation.NotNil),
		validation.Field(&d.Status, validation.NotNil),
		validation.Field(&d.Tags, validation.NotNil),
		validation.Field(&d.Preview, validation.NotNil),
		validation.Field(&d.Link, validation.NotNil),
		validation.Field(&d.Desc, validation.NotNil),
	)
}

func (d projectDocument) project() Project {
	return Project{
		Title:     *d.Title,
		Time:      *d.Time,
		Languages: append([]Language{}, (*d.Languages)...),
		Status:    *d.Status,
		Tags:      append([]string{}, (*d.Tags)...),
		Preview:   *d.Preview,
		Link:      *d.Link,
		Desc:      *d.Desc,
	}
}

// UnmarshalYAML decodes a project body, rejecting missing fields and values
// outside the Language and ProjectStatus enumerations.
func (p *Project) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: project must be a mapping", node.Line)
	}
	var doc projectDocument
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("line %d: %w: %v", node.Line, ErrMissingField, err)
	}
	project := doc.project()
	if err := project.Validate(); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = project
	return nil
}

// Validate checks the enumerations of an in-memory project. Null sequence
// items decode to empty values without reaching Language.UnmarshalYAML, so
// they are caught here.
func (p Project) Validate() error {
	for i, lang := range p.Languages {
		if err := lang.Validate(); err != nil {
			return fmt.Errorf("languages[%d]: %w", i, err)
		}
	}
	return p.Status.Validate()
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	out.Languages = append([]Language{}, p.Languages...)
	out.Tags = append([]string{}, p.Tags...)
	return out
}
