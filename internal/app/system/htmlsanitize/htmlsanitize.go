// Package htmlsanitize removes markup from user-supplied free text
// (activity notes, team and workout descriptions) before it is stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML elements from s, drops script and style
// contents, and returns plain text with surrounding whitespace trimmed.
// bluemonday escapes the surviving text, so entities are decoded again
// to keep characters like "&" intact in the JSON payload.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// StripTagsPtr is StripTags for optional fields. nil stays nil.
func StripTagsPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := StripTags(*s)
	return &v
}
