package artifacts

import (
	"cmp"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ProjectStatus is the closed set of project lifecycle states.
type ProjectStatus string

const (
	StatusCompleted    ProjectStatus = "Completed"
	StatusOngoing      ProjectStatus = "Ongoing"
	StatusDiscontinued ProjectStatus = "Discontinued"
)

var statusPriority = map[ProjectStatus]int{
	StatusCompleted:    0,
	StatusOngoing:      100,
	StatusDiscontinued: 200,
}

var statusColor = map[ProjectStatus]string{
	StatusCompleted:    "green",
	StatusOngoing:      "yellow",
	StatusDiscontinued: "indigo",
}

// Statuses returns every variant in priority order.
func Statuses() []ProjectStatus {
	return []ProjectStatus{StatusCompleted, StatusOngoing, StatusDiscontinued}
}

// ParseProjectStatus resolves the wire spelling of a status.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	status := ProjectStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
	}
	return status, nil
}

// Valid reports whether s is one of the enumeration variants.
func (s ProjectStatus) Valid() bool {
	_, ok := statusPriority[s]
	return ok
}

// Validate satisfies ozzo-validation's Validatable.
func (s ProjectStatus) Validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return nil
}

// Priority returns the display-grouping weight of the status. Unknown values
// report -1.
func (s ProjectStatus) Priority() int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return -1
}

// Compare orders statuses by priority: Completed < Ongoing < Discontinued.
func (s ProjectStatus) Compare(other ProjectStatus) int {
	return cmp.Compare(s.Priority(), other.Priority())
}

// Less reports whether s sorts before other.
func (s ProjectStatus) Less(other ProjectStatus) bool {
	return s.Compare(other) < 0
}

// CompareStatus is the schema comparator for slices.SortFunc and friends.
func CompareStatus(a, b ProjectStatus) int {
	return a.Compare(b)
}

// Label is the display text of the status.
func (s ProjectStatus) Label() string {
	if !s.Valid() {
		return ""
	}
	return string(s)
}

// Color is the color family of the status indicator.
func (s ProjectStatus) Color() string {
	return statusColor[s]
}

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return string(s), nil
}

func (s *ProjectStatus) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", node.Line, ErrUnknownStatus)
	}
	parsed, err := ParseProjectStatus(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = parsed
	return nil
}
