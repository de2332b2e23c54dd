// Package textclean strips markup from applicant-supplied free text.
//
// Cover letters, motivation statements, and reviewer notes are stored and
// rendered as plain text, so any HTML that arrives in them is hostile or
// accidental either way. Strip removes it at the boundary; nothing past
// intake normalization should ever see markup.
package textclean

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s and returns the
// remaining text with entities decoded and surrounding whitespace trimmed.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	cleaned := strict.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// StripAll applies Strip to every element of ss in place and returns ss.
func StripAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Strip(s)
	}
	return ss
}
