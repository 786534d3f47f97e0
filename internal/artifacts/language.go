package artifacts

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Language is the closed set of programming languages a project can be
// tagged with. Values are case-sensitive on the wire.
type Language string

const (
	LanguageHaskell    Language = "Haskell"
	LanguageRust       Language = "Rust"
	LanguagePython     Language = "Python"
	LanguageGo         Language = "Go"
	LanguageC          Language = "C"
	LanguageCpp        Language = "Cpp"
	LanguageOCaml      Language = "OCaml"
	LanguageJavascript Language = "Javascript"
	LanguageJava       Language = "Java"
)

type languageInfo struct {
	label string
	color string
}

var languageTable = map[Language]languageInfo{
	LanguageHaskell:    {label: "Haskell", color: "purple"},
	LanguageRust:       {label: "Rust", color: "orange"},
	LanguagePython:     {label: "Python", color: "yellow"},
	LanguageGo:         {label: "Go", color: "cyan"},
	LanguageC:          {label: "C", color: "gray"},
	LanguageCpp:        {label: "C++", color: "blue"},
	LanguageOCaml:      {label: "OCaml", color: "blue"},
	LanguageJavascript: {label: "Javascript", color: "yellow"},
	LanguageJava:       {label: "Java", color: "red"},
}

// Languages returns every variant in declaration order.
func Languages() []Language {
	return []Language{
		LanguageHaskell,
		LanguageRust,
		LanguagePython,
		LanguageGo,
		LanguageC,
		LanguageCpp,
		LanguageOCaml,
		LanguageJavascript,
		LanguageJava,
	}
}

// ParseLanguage resolves the wire spelling of a language.
func ParseLanguage(value string) (Language, error) {
	lang := Language(value)
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, value)
	}
	return lang, nil
}

// Valid reports whether l is one of the enumeration variants.
func (l Language) Valid() bool {
	_, ok := languageTable[l]
	return ok
}

// Validate satisfies ozzo-validation's Validatable.
func (l Language) Validate() error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, string(l))
	}
	return nil
}

// Label is the display name, e.g. "C++" for Cpp.
func (l Language) Label() string {
	return languageTable[l].label
}

// Color is the color family used when rendering the language as a tag.
func (l Language) Color() string {
	return languageTable[l].color
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return string(l), nil
}

func (l *Language) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", node.Line, ErrUnknownLanguage)
	}
	parsed, err := ParseLanguage(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = parsed
	return nil
}
