package seo

import (
	"encoding/json"
	"html/template"
	"time"

	"github.com/sumeshkk123/cloud-sub010/internal/content"
)

// JSON marshals v for a <script type="application/ld+json"> block. It returns
// an empty value on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Organization returns a minimal Organization schema.
func Organization(site Site) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     site.Name,
	}
	if site.BaseURL != "" {
		m["url"] = site.BaseURL
	}
	if site.LogoURL != "" {
		m["logo"] = site.LogoURL
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// QA is one resolved FAQ entry.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds schema.org FAQPage; nil when there are no questions.
func FAQPage(items []QA) map[string]any {
	if len(items) == 0 {
		return nil
	}
	entities := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// BlogPosting builds schema.org BlogPosting for a blog page.
func BlogPosting(site Site, page *content.Page, meta Meta) map[string]any {
	m := map[string]any{
		"@context":         "https://schema.org",
		"@type":            "BlogPosting",
		"headline":         meta.Title,
		"description":      meta.Description,
		"mainEntityOfPage": meta.Canonical,
		"publisher":        Organization(site),
	}
	if page.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": page.Author}
	}
	if !page.Published.IsZero() {
		m["datePublished"] = page.Published.UTC().Format(time.DateOnly)
	}
	if meta.OG.Image != "" {
		m["image"] = meta.OG.Image
	}
	return m
}
