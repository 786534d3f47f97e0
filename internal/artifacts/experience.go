package artifacts

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Experience is a work history entry. EndTime is either sortable like
// StartTime or a free label such as "Present".
type Experience struct {
	Company   string `yaml:"company" json:"company"`
	StartTime string `yaml:"start_time" json:"start_time"`
	EndTime   string `yaml:"end_time" json:"end_time"`
	Location  string `yaml:"location" json:"location"`
	Icon      string `yaml:"icon" json:"icon"`
	Title     string `yaml:"title" json:"title"`
	Desc      string `yaml:"desc" json:"desc"`
}

type experienceDocument struct {
	Company   *string `yaml:"company" json:"company"`
	StartTime *string `yaml:"start_time" json:"start_time"`
	EndTime   *string `yaml:"end_time" json:"end_time"`
	Location  *string `yaml:"location" json:"location"`
	Icon      *string `yaml:"icon" json:"icon"`
	Title     *string `yaml:"title" json:"title"`
	Desc      *string `yaml:"desc" json:"desc"`
}

func (d experienceDocument) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Company, validation.NotNil),
		validation.Field(&d.StartTime, validation.NotNil),
		validation.Field(&d.EndTime, validation.NotNil),
		validation.Field(&d.Location, validation.NotNil),
		validation.Field(&d.Icon, validation.NotNil),
		validation.Field(&d.Title, validation.NotNil),
		validation.Field(&d.Desc, validation.NotNil),
	)
}

func (d experienceDocument) experience() Experience {
	return Experience{
		Company:   *d.Company,
		StartTime: *d.StartTime,
		EndTime:   *d.EndTime,
		Location:  *d.Location,
		Icon:      *d.Icon,
		Title:     *d.Title,
		Desc:      *d.Desc,
	}
}

func (e *Experience) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: experience must be a mapping", node.Line)
	}
	var doc experienceDocument
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("line %d: %w: %v", node.Line, ErrMissingField, err)
	}
	*e = doc.experience()
	return nil
}
