package utils

import (
	"strings"

	"golang.org/x/text/language"
)

// DetermineLocale resolves the locale to use from an explicit query param,
// then the Accept-Language header, then def. Supported values are base
// languages like "en" or "zh"; regional variants match their base.
func DetermineLocale(queryLang, acceptLang string, supported []string, def string) string {
	if len(supported) == 0 {
		return strings.ToLower(def)
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(strings.ToLower(s)))
	}
	matcher := language.NewMatcher(tags)

	match := func(desired ...language.Tag) (string, bool) {
		if len(desired) == 0 {
			return "", false
		}
		_, idx, conf := matcher.Match(desired...)
		if conf == language.No {
			return "", false
		}
		return strings.ToLower(supported[idx]), true
	}

	if queryLang != "" {
		if t, err := language.Parse(queryLang); err == nil {
			if v, ok := match(t); ok {
				return v
			}
		}
	}
	if acceptLang != "" {
		if desired, _, err := language.ParseAcceptLanguage(acceptLang); err == nil {
			if v, ok := match(desired...); ok {
				return v
			}
		}
	}
	for _, s := range supported {
		if strings.EqualFold(s, def) {
			return strings.ToLower(s)
		}
	}
	return strings.ToLower(supported[0])
}
