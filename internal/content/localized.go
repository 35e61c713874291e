package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// anyLocale stores text written as a plain YAML scalar; it serves every locale.
const anyLocale = "*"

// Localized is a piece of copy keyed by locale. In YAML it is either a plain
// string or a mapping of locale code to string.
type Localized map[string]string

// Text builds a Localized value that serves every locale.
func Text(value string) Localized {
	return Localized{anyLocale: value}
}

func (l *Localized) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = Localized{anyLocale: strings.TrimSpace(node.Value)}
		return nil
	case yaml.MappingNode:
		values := make(map[string]string, len(node.Content)/2)
		if err := node.Decode(&values); err != nil {
			return err
		}
		out := make(Localized, len(values))
		for key, value := range values {
			out[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: localized text must be a string or a locale map", node.Line)
	}
}

// In returns the text for lang, then for fallback, then the locale-neutral text.
func (l Localized) In(lang, fallback string) string {
	if l == nil {
		return ""
	}
	if value := l[lang]; value != "" {
		return value
	}
	if value := l[fallback]; value != "" {
		return value
	}
	return l[anyLocale]
}

// Has reports whether lang has its own translation.
func (l Localized) Has(lang string) bool {
	return l[lang] != ""
}

// IsZero reports whether no locale carries text.
func (l Localized) IsZero() bool {
	for _, value := range l {
		if value != "" {
			return false
		}
	}
	return true
}

// Format substitutes {placeholders} in every locale's text.
func (l Localized) Format(replacements map[string]string) Localized {
	if l == nil {
		return nil
	}
	pairs := make([]string, 0, len(replacements)*2)
	for key, value := range replacements {
		pairs = append(pairs, "{"+key+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)
	out := make(Localized, len(l))
	for lang, text := range l {
		out[lang] = replacer.Replace(text)
	}
	return out
}
