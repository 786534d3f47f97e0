package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	buildBundleMessageType = "portfolio.content.build_bundle"
	lintSourcesMessageType = "portfolio.content.lint_sources"
)

// BuildBundleCommand compiles the source directories, in order, into the
// bundle at OutputPath.
type BuildBundleCommand struct {
	SourceDirs []string `json:"source_dirs"`
	OutputPath string   `json:"output_path"`
}

// Type implements command.Message.
func (BuildBundleCommand) Type() string { return buildBundleMessageType }

// Validate requires an output path and non-blank directories. An empty
// directory list is allowed and produces an empty bundle.
func (cmd BuildBundleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourceDirs, validation.Each(validation.By(nonBlank("portfolio.content.source_dir_blank", "source directory must not be blank")))),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(nonBlank("portfolio.content.output_path_required", "output path is required"))),
	)
}

// LintSourcesCommand checks the source directories against the artifact
// schema without writing anything.
type LintSourcesCommand struct {
	SourceDirs []string `json:"source_dirs"`
}

// Type implements command.Message.
func (LintSourcesCommand) Type() string { return lintSourcesMessageType }

// Validate requires at least one non-blank directory.
func (cmd LintSourcesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourceDirs,
			validation.Required,
			validation.Each(validation.By(nonBlank("portfolio.content.source_dir_blank", "source directory must not be blank"))),
		),
	)
}

func nonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
