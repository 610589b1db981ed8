// Package i18n holds the three supported locales and every literal string
// the engine renders. The engine never falls back to English for its own
// strings: each key must be present in each locale, which the tests pin
// down.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one supported language with its text direction.
type Locale struct {
	Code  string
	Label string
	Dir   string
}

var (
	English = Locale{Code: "en", Label: "English", Dir: "ltr"}
	French  = Locale{Code: "fr", Label: "Français", Dir: "ltr"}
	Arabic  = Locale{Code: "ar", Label: "العربية", Dir: "rtl"}
)

var locales = []Locale{English, French, Arabic}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Arabic,
})

// Locales returns the supported locales in display order.
func Locales() []Locale {
	out := make([]Locale, len(locales))
	copy(out, locales)
	return out
}

// Match resolves a requested language code (possibly a full BCP 47 tag like
// "fr-CA") to a supported locale. Unknown or empty input selects English.
// This fallback applies to locale selection only, never to message lookup.
func Match(code string) Locale {
	code = strings.TrimSpace(code)
	if code == "" {
		return English
	}
	_, idx, conf := matcher.Match(language.Make(code))
	if conf == language.No {
		return English
	}
	return locales[idx]
}
