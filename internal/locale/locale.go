package locale

import (
	"errors"
	"slices"
	"strings"
)

const (
	English    = "en"
	Spanish    = "es"
	German     = "de"
	Italian    = "it"
	Portuguese = "pt"
	Chinese    = "zh"
	Arabic     = "ar"
)

// DefaultSupported lists the locales the site ships translations for, in tab order.
var DefaultSupported = []string{English, Spanish, German, Italian, Portuguese, Chinese, Arabic}

var ErrNoLocales = errors.New("at least one supported locale is required")

// Preference carries the presentation attributes of a locale.
type Preference struct {
	Locale   string
	HTMLLang string
	Dir      string
	Label    string
}

var preferences = map[string]Preference{
	English:    {Locale: English, HTMLLang: "en", Dir: "ltr", Label: "English"},
	Spanish:    {Locale: Spanish, HTMLLang: "es", Dir: "ltr", Label: "Español"},
	German:     {Locale: German, HTMLLang: "de", Dir: "ltr", Label: "Deutsch"},
	Italian:    {Locale: Italian, HTMLLang: "it", Dir: "ltr", Label: "Italiano"},
	Portuguese: {Locale: Portuguese, HTMLLang: "pt", Dir: "ltr", Label: "Português"},
	Chinese:    {Locale: Chinese, HTMLLang: "zh-CN", Dir: "ltr", Label: "中文"},
	Arabic:     {Locale: Arabic, HTMLLang: "ar", Dir: "rtl", Label: "العربية"},
}

// Set is a fixed, ordered list of supported locales with a default.
type Set struct {
	supported []string
	index     map[string]struct{}
	fallback  string
}

// NewSet builds a Set. The default must be one of supported; when it is not,
// the first supported locale becomes the default.
func NewSet(supported []string, fallback string) (*Set, error) {
	if len(supported) == 0 {
		return nil, ErrNoLocales
	}
	s := &Set{
		supported: make([]string, 0, len(supported)),
		index:     make(map[string]struct{}, len(supported)),
	}
	for _, code := range supported {
		if code == "" {
			continue
		}
		if _, ok := s.index[code]; ok {
			continue
		}
		s.index[code] = struct{}{}
		s.supported = append(s.supported, code)
	}
	if len(s.supported) == 0 {
		return nil, ErrNoLocales
	}
	s.fallback = fallback
	if _, ok := s.index[fallback]; !ok {
		s.fallback = s.supported[0]
	}
	return s, nil
}

// MustNewSet is NewSet for package-level and test fixtures.
func MustNewSet(supported []string, fallback string) *Set {
	s, err := NewSet(supported, fallback)
	if err != nil {
		panic(err)
	}
	return s
}

// Resolve returns raw when it is a supported locale and the default otherwise.
func (s *Set) Resolve(raw string) string {
	if _, ok := s.index[raw]; ok {
		return raw
	}
	return s.fallback
}

func (s *Set) IsSupported(raw string) bool {
	_, ok := s.index[raw]
	return ok
}

// Supported returns a copy of the supported locales in configured order.
func (s *Set) Supported() []string {
	return slices.Clone(s.supported)
}

func (s *Set) Default() string { return s.fallback }

// Preference returns presentation attributes for a resolved locale.
func (s *Set) Preference(raw string) Preference {
	code := s.Resolve(raw)
	if pref, ok := preferences[code]; ok {
		return pref
	}
	return Preference{Locale: code, HTMLLang: code, Dir: "ltr", Label: strings.ToUpper(code)}
}

// Preferences lists the presentation attributes of every supported locale.
func (s *Set) Preferences() []Preference {
	out := make([]Preference, 0, len(s.supported))
	for _, code := range s.supported {
		out = append(out, s.Preference(code))
	}
	return out
}

// SplitPath separates the locale segment from a request path. explicit reports
// whether the first segment was consumed as a locale segment.
func (s *Set) SplitPath(path string) (lang, rest string, explicit bool) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return s.fallback, "", false
	}
	first, remainder, _ := strings.Cut(trimmed, "/")
	if s.IsSupported(first) {
		return first, remainder, true
	}
	if looksLikeLocale(first) {
		return s.fallback, remainder, true
	}
	return s.fallback, trimmed, false
}

// looksLikeLocale accepts "xx" and "xx-YY" / "xx_YY" shaped segments.
func looksLikeLocale(segment string) bool {
	primary, region, hasRegion := strings.Cut(strings.ReplaceAll(segment, "_", "-"), "-")
	if len(primary) != 2 || !isLetters(primary) {
		return false
	}
	if !hasRegion {
		return true
	}
	return len(region) == 2 && isLetters(region)
}

func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

// Initial picks the locale an editor opens on: the default when it has saved
// content, otherwise the first saved locale in order, otherwise the default.
func (s *Set) Initial(saved map[string]bool) string {
	if saved[s.fallback] {
		return s.fallback
	}
	for _, code := range s.supported {
		if saved[code] {
			return code
		}
	}
	return s.fallback
}
