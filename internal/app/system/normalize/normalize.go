// Package normalize cleans user-supplied strings before they are stored
// or used in a query.
package normalize

import "strings"

// Email trims and lowercases an email address, so uniqueness ignores case.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a filter value. Case is preserved since filters match exactly.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Ref trims an optional reference (team_id and the like). nil and blank
// values both come back as nil.
func Ref(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
