// Package sanitize derives filesystem-safe base names from episode titles.
package sanitize

import "strings"

// BaseName maps an arbitrary title to a lowercase token containing only
// [a-z0-9_]. Every rune outside [A-Za-z0-9] becomes '_'; letters are
// lowered. Output length equals input length in runes. Two titles that
// differ only in non-alphanumeric runes collapse to the same base name;
// callers accept that collision and the later write wins.
func BaseName(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
