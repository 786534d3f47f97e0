package interfaces

// MarkdownRenderer converts markdown source into an HTML fragment. The
// ingester calls it exactly once per artifact description; implementations
// must be deterministic so repeated builds of the same sources produce the
// same bundle body.
type MarkdownRenderer interface {
	// Parse converts Markdown into HTML using the renderer's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering, keeping option names readable
// for configuration unmarshalling.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}
