package service

import (
	"errors"
	"strings"

	"github.com/sumeshkk123/cloud-sub010/internal/locale"
)

var (
	ErrPageRequired      = errors.New("page is required")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// NormalizeField trims a nullable text field. Blank input becomes nil so the
// column is stored as NULL rather than an empty string.
func NormalizeField(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizePage canonicalizes a page key: trimmed, lowercase, no surrounding slashes.
func NormalizePage(page string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(page), "/"))
}

func validateKey(locales *locale.Set, page, lang string) (string, error) {
	normalized := NormalizePage(page)
	if normalized == "" {
		return "", ErrPageRequired
	}
	if locales != nil && !locales.IsSupported(lang) {
		return "", ErrUnsupportedLocale
	}
	return normalized, nil
}
