// Package locale holds the supported display languages and the date labels
// rendered for them.
package locale

import (
	"strings"

	"github.com/Zachkp/portfolio/internal/apperr"
	"golang.org/x/text/language"
)

// Locale is a supported display language code.
type Locale string

const (
	ES Locale = "es"
	EN Locale = "en"

	// Default is served when the client expresses no usable preference.
	Default = ES
)

var supported = []Locale{ES, EN}

// matcher order must follow supported; index 0 doubles as the fallback.
var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// Supported returns the supported locales in preference order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse resolves a locale code. Codes outside the supported set are a
// configuration error; there is no fallback.
func Parse(code string) (Locale, error) {
	c := Locale(strings.ToLower(strings.TrimSpace(code)))
	for _, l := range supported {
		if c == l {
			return l, nil
		}
	}
	return "", apperr.Configuration("unsupported locale %q", code)
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return Default
	}
	return supported[idx]
}

func (l Locale) String() string { return string(l) }
