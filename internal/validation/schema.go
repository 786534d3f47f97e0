package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-portfolio/internal/artifacts"
)

const artifactSchemaURL = "artifact.schema.json"

//go:embed schemas/artifact.schema.json
var artifactSchemaJSON []byte

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ArtifactSchema returns the compiled JSON Schema for artifact sources. The
// embedded enumerations are checked against the artifacts package on first
// use.
func ArtifactSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiledSchema, compileErr = compileSchema(artifactSchemaJSON)
	})
	return compiledSchema, compileErr
}

func compileSchema(doc []byte) (*jsonschema.Schema, error) {
	if err := checkEnumerations(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(artifactSchemaURL, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	schema, err := compiler.Compile(artifactSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return schema, nil
}

// checkEnumerations keeps the embedded enums in step with the Go types.
func checkEnumerations(doc []byte) error {
	text := string(doc)
	for _, lang := range artifacts.Languages() {
		if !strings.Contains(text, `"`+string(lang)+`"`) {
			return fmt.Errorf("language %s missing from schema", lang)
		}
	}
	for _, status := range artifacts.Statuses() {
		if !strings.Contains(text, `"`+string(status)+`"`) {
			return fmt.Errorf("status %s missing from schema", status)
		}
	}
	return nil
}

// Issue is a single schema violation inside one source file.
type Issue struct {
	Path     string
	Location string
	Message  string
}

func (i Issue) String() string {
	location := strings.TrimSpace(i.Location)
	if location == "" {
		location = "#"
	} else if !strings.HasPrefix(location, "#") {
		location = "#" + location
	}
	if i.Message == "" {
		return i.Path + location
	}
	return fmt.Sprintf("%s%s: %s", i.Path, location, i.Message)
}

// ValidateDocument checks a decoded source value against the artifact schema.
// Violations come back as issues tagged with path; only a schema that fails
// to compile is returned as an error.
func ValidateDocument(path string, value any) ([]Issue, error) {
	schema, err := ArtifactSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(value); err != nil {
		return issuesFrom(path, err), nil
	}
	return nil, nil
}

func issuesFrom(path string, err error) []Issue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []Issue{{Path: path, Message: err.Error()}}
	}

	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Path:     path,
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return strings.Compare(a.Location, b.Location)
	})
	return issues
}
