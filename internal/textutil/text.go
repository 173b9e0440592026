// Package textutil contains small string helpers used when rendering and
// logging profile content.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonAlnumRuns   = regexp.MustCompile(`[^a-z0-9]+`)
	stripDiacritic = runes.Remove(runes.In(unicode.Mn))
)

// Truncate keeps the first n space-separated words and appends "..." when
// anything was cut.
func Truncate(text string, n int) string {
	words := strings.Split(text, " ")
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "..."
}

// Slugify lowercases text, folds accents and joins alphanumeric runs with '-'.
func Slugify(text string) string {
	t := transform.Chain(norm.NFD, stripDiacritic, norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	return strings.Trim(nonAlnumRuns.ReplaceAllString(folded, "-"), "-")
}

// Initials returns at most two upper-case initials for a display name.
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		r := []rune(words[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	}
	first := []rune(words[0])[0]
	last := []rune(words[len(words)-1])[0]
	return strings.ToUpper(string([]rune{first, last}))
}

// IsValidEmail is the loose address check used by the site's client forms.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
