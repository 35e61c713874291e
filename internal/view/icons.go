package view

import (
	"html/template"
	"strings"
)

type iconAsset struct {
	Key string
	SVG string
}

const svgOpen = `<svg viewBox="0 0 24 24" width="24" height="24" fill="none" stroke="currentColor" stroke-width="1.75" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var (
	iconDefinitions = []iconAsset{
		{Key: "wallet", SVG: svgOpen + `<rect x="2" y="6" width="20" height="14" rx="2"/><path d="M16 13h2M2 10h20M6 6V4h12v2"/></svg>`},
		{Key: "credit-card", SVG: svgOpen + `<rect x="1" y="4" width="22" height="16" rx="2"/><path d="M1 10h22"/></svg>`},
		{Key: "git-branch", SVG: svgOpen + `<circle cx="6" cy="6" r="3"/><circle cx="6" cy="18" r="3"/><circle cx="18" cy="6" r="3"/><path d="M6 9v6M18 9a9 9 0 0 1-9 9"/></svg>`},
		{Key: "git-merge", SVG: svgOpen + `<circle cx="18" cy="18" r="3"/><circle cx="6" cy="6" r="3"/><path d="M6 21V9a9 9 0 0 0 9 9"/></svg>`},
		{Key: "grid", SVG: svgOpen + `<rect x="3" y="3" width="7" height="7"/><rect x="14" y="3" width="7" height="7"/><rect x="14" y="14" width="7" height="7"/><rect x="3" y="14" width="7" height="7"/></svg>`},
		{Key: "layers", SVG: svgOpen + `<path d="M12 2 2 7l10 5 10-5-10-5zM2 17l10 5 10-5M2 12l10 5 10-5"/></svg>`},
		{Key: "shield", SVG: svgOpen + `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/></svg>`},
		{Key: "heart", SVG: svgOpen + `<path d="M20.8 4.6a5.5 5.5 0 0 0-7.8 0L12 5.7l-1-1.1a5.5 5.5 0 0 0-7.8 7.8l1 1.1L12 21l7.8-7.5 1-1.1a5.5 5.5 0 0 0 0-7.8z"/></svg>`},
		{Key: "globe", SVG: svgOpen + `<circle cx="12" cy="12" r="10"/><path d="M2 12h20M12 2a15 15 0 0 1 0 20M12 2a15 15 0 0 0 0 20"/></svg>`},
		{Key: "building", SVG: svgOpen + `<rect x="4" y="2" width="16" height="20" rx="1"/><path d="M9 22v-4h6v4M8 6h.01M16 6h.01M8 10h.01M16 10h.01M8 14h.01M16 14h.01"/></svg>`},
		{Key: "book-open", SVG: svgOpen + `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2zM22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/></svg>`},
		{Key: "trending-up", SVG: svgOpen + `<path d="m23 6-9.5 9.5-5-5L1 18M17 6h6v6"/></svg>`},
		{Key: "rocket", SVG: svgOpen + `<path d="M4.5 16.5c-1.5 1.3-2 5-2 5s3.7-.5 5-2c.7-.8.7-2.1-.1-2.9a2.2 2.2 0 0 0-2.9-.1zM12 15l-3-3a22 22 0 0 1 2-4A12.9 12.9 0 0 1 22 2c0 2.7-.8 7.5-6 11a22.4 22.4 0 0 1-4 2z"/></svg>`},
	}
	defaultIcon = iconAsset{Key: "default", SVG: svgOpen + `<circle cx="12" cy="12" r="9"/><path d="m9 12 2 2 4-4"/></svg>`}
	iconLookup  = func() map[string]iconAsset {
		lookup := make(map[string]iconAsset, len(iconDefinitions)+1)
		for _, icon := range iconDefinitions {
			lookup[icon.Key] = icon
		}
		lookup[defaultIcon.Key] = defaultIcon
		return lookup
	}()
)

// IconKeys lists the named icons in definition order.
func IconKeys() []string {
	keys := make([]string, 0, len(iconDefinitions))
	for _, icon := range iconDefinitions {
		keys = append(keys, icon.Key)
	}
	return keys
}

// IconSVG resolves the inline SVG for key, falling back to the default icon.
func IconSVG(key string) template.HTML {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	if icon, ok := iconLookup[trimmed]; ok {
		return template.HTML(icon.SVG)
	}
	return template.HTML(defaultIcon.SVG)
}
