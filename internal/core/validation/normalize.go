// Package validation holds the pure rule engine for entity creation. Rules
// accumulate every violation into an ordered message list instead of failing
// on the first one, so clients see all problems at once.
package validation

import "strings"

// DateLayout is the calendar date format accepted on all date fields.
const DateLayout = "2006-01-02"

// matchEnum returns the canonical spelling for value when it matches one of
// the candidates case-insensitively, or "" when it matches none.
func matchEnum(value string, canonical ...string) string {
	v := strings.TrimSpace(value)
	for _, c := range canonical {
		if strings.EqualFold(v, c) {
			return c
		}
	}
	return ""
}
