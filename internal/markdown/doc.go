// Package markdown renders artifact descriptions from Markdown into HTML
// fragments with goldmark. Rendering happens once, at ingest; the bundle
// loader never calls into this package.
package markdown
