// Package sanitize strips markdown decoration from model output so it can
// be rendered as plain text or fed to a TTS engine.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	asterisks      = regexp.MustCompile(`\*+`)
	headings       = regexp.MustCompile(`#+\s*`)
	backticks      = regexp.MustCompile("`+")
	underscores    = regexp.MustCompile(`_{2,}`)
	excessNewlines = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// PlainText removes bold/italic markers, heading prefixes, code fences and
// long underscore runs, then collapses runs of blank lines down to one.
func PlainText(s string) string {
	s = asterisks.ReplaceAllString(s, "")
	s = headings.ReplaceAllString(s, "")
	s = backticks.ReplaceAllString(s, "")
	s = underscores.ReplaceAllString(s, "")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
