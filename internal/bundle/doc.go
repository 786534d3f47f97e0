// Package bundle loads the compiled content bundle at run time. It splits the
// artifacts into projects and experiences, orders each list newest first and
// hands the descriptions through untouched: they are already HTML.
package bundle
