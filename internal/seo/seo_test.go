package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
)

var testSite = Site{Name: "Cloud MLM Software", BaseURL: "https://example.com", LogoURL: "https://example.com/logo.png"}

func testPage() *content.Page {
	return &content.Page{
		Slug: "pricing",
		Kind: content.KindPricing,
		Meta: content.Meta{
			Title:       content.Localized{"en": "Pricing", "es": "Precios"},
			Description: content.Text("Transparent pricing"),
			Keywords:    content.Text("mlm, pricing"),
		},
	}
}

func TestBuildUsesCatalogDefaults(t *testing.T) {
	locales := locale.MustNewSet([]string{"en", "es", "de"}, "en")
	meta := Build(testSite, testPage(), "es", locales, nil)

	assert.Equal(t, "Precios", meta.Title)
	assert.Equal(t, "Transparent pricing", meta.Description)
	assert.Equal(t, "https://example.com/es/pricing", meta.Canonical)
	assert.Equal(t, "https://example.com/en/pricing", meta.XDefault)
	require.Len(t, meta.Alternates, 3)
	assert.Equal(t, "de", meta.Alternates[2].HrefLang)
	assert.Equal(t, "website", meta.OG.Type)
	assert.Equal(t, testSite.LogoURL, meta.OG.Image)
}

func TestBuildUnsupportedLocaleCanonicalizesToDefault(t *testing.T) {
	locales := locale.MustNewSet([]string{"en", "es"}, "en")
	meta := Build(testSite, testPage(), "fr", locales, nil)

	assert.Equal(t, "Pricing", meta.Title)
	assert.Equal(t, "https://example.com/en/pricing", meta.Canonical)
}

func TestBuildAppliesOverridesFieldByField(t *testing.T) {
	locales := locale.MustNewSet([]string{"en"}, "en")
	title := "Custom title"
	meta := Build(testSite, testPage(), "en", locales, &Override{Title: &title})

	assert.Equal(t, "Custom title", meta.Title)
	assert.Equal(t, "Custom title", meta.OG.Title)
	assert.Equal(t, "Transparent pricing", meta.Description, "nil override keeps the default")
}

func TestHomeCanonicalHasTrailingSlash(t *testing.T) {
	locales := locale.MustNewSet([]string{"en"}, "en")
	home := &content.Page{Kind: content.KindHome}
	meta := Build(testSite, home, "en", locales, nil)
	assert.Equal(t, "https://example.com/en/", meta.Canonical)
	assert.Equal(t, testSite.Name, meta.Title)
}

func TestJSONLD(t *testing.T) {
	faq := FAQPage([]QA{{Question: "Q?", Answer: "A."}})
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(faq)), &decoded))
	assert.Equal(t, "FAQPage", decoded["@type"])
	assert.Nil(t, FAQPage(nil))

	crumbs := BreadcrumbList([]BreadcrumbItem{{Name: "Home", Item: "https://example.com/en/"}, {Name: "Blog", Item: "https://example.com/en/blog"}})
	assert.Len(t, crumbs["itemListElement"], 2)

	post := &content.Page{Slug: "blog/x", Kind: content.KindBlog, Author: "Ed", Published: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)}
	posting := BlogPosting(testSite, post, Meta{Title: "X", Canonical: "https://example.com/en/blog/x"})
	assert.Equal(t, "2024-03-12", posting["datePublished"])
}

func TestSitemap(t *testing.T) {
	locales := locale.MustNewSet([]string{"en", "es"}, "en")
	body, err := Sitemap("https://example.com", []string{"", "pricing"}, locales)
	require.NoError(t, err)

	xmlText := string(body)
	assert.True(t, strings.HasPrefix(xmlText, "<?xml"))
	assert.Equal(t, 4, strings.Count(xmlText, "<url>"))
	assert.Contains(t, xmlText, "<loc>https://example.com/es/pricing</loc>")
	assert.Contains(t, xmlText, `hreflang="x-default" href="https://example.com/en/"`)
}

func TestRobots(t *testing.T) {
	robots := Robots("https://example.com/")
	assert.Contains(t, robots, "Disallow: /admin")
	assert.Contains(t, robots, "Sitemap: https://example.com/sitemap.xml")
}
