package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Match picks the supported locale that best serves an Accept-Language header.
func (s *Set) Match(acceptLanguage string) string {
	header := strings.TrimSpace(acceptLanguage)
	if header == "" {
		return s.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return s.fallback
	}

	// The default goes first so it wins ties and no-confidence matches.
	ordered := make([]string, 0, len(s.supported))
	ordered = append(ordered, s.fallback)
	for _, code := range s.supported {
		if code != s.fallback {
			ordered = append(ordered, code)
		}
	}
	tags := make([]language.Tag, 0, len(ordered))
	for _, code := range ordered {
		tags = append(tags, language.Make(code))
	}

	_, idx, confidence := language.NewMatcher(tags).Match(prefs...)
	if confidence == language.No || idx < 0 || idx >= len(ordered) {
		return s.fallback
	}
	return ordered[idx]
}
