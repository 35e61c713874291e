package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
)

func TestHref(t *testing.T) {
	assert.Equal(t, "/es/contact", Href("es", "contact"))
	assert.Equal(t, "/es/features/e-wallet", Href("es", "features/e-wallet/"))
	assert.Equal(t, "/admin/login", Href("es", "/admin/login"))
	assert.Equal(t, "https://example.com", Href("es", "https://example.com"))
	assert.Equal(t, "", Href("es", "  "))
}

func TestResolveAppliesHeroOverride(t *testing.T) {
	page := &content.Page{
		Slug: "pricing",
		Kind: content.KindPricing,
		Hero: content.Hero{
			Pill:     content.Localized{"en": "Plans", "es": "Planes"},
			Title:    content.Localized{"en": "Pricing", "es": "Precios"},
			Subtitle: content.Text("Simple pricing"),
			CTA:      &content.Link{Label: content.Text("Talk to sales"), Href: "contact"},
		},
		Sections: []content.Section{{
			Title:   content.Text("Included"),
			Cards:   []content.Card{{Icon: "wallet", Title: content.Text("E-wallet"), Href: "features/e-wallet"}},
			Bullets: []content.Localized{content.Text("Hosting"), {}},
		}},
		FAQ: []content.FAQ{{Question: content.Text("Trial?"), Answer: content.Text("Yes.")}},
	}

	title := "Precios a medida"
	resolved, err := Resolve(page, "es", "en", &HeroOverride{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Precios a medida", resolved.Hero.Title)
	assert.Equal(t, "Planes", resolved.Hero.Pill)
	assert.Equal(t, "Simple pricing", resolved.Hero.Subtitle)
	require.NotNil(t, resolved.Hero.CTA)
	assert.Equal(t, "/es/contact", resolved.Hero.CTA.Href)
	require.Len(t, resolved.Sections, 1)
	assert.Equal(t, "/es/features/e-wallet", resolved.Sections[0].Cards[0].Href)
	assert.Equal(t, IconSVG("wallet"), resolved.Sections[0].Cards[0].Icon)
	assert.Equal(t, []string{"Hosting"}, resolved.Sections[0].Bullets)
	assert.Equal(t, []seo.QA{{Question: "Trial?", Answer: "Yes."}}, resolved.FAQ)
}

func TestIconSVGFallsBack(t *testing.T) {
	assert.Equal(t, IconSVG("default"), IconSVG("no-such-icon"))
	assert.NotEqual(t, IconSVG("default"), IconSVG("Wallet"))
	assert.Contains(t, IconKeys(), "credit-card")
}

func TestPageTemplateRendersHeadAndHero(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	locales := locale.MustNewSet([]string{"en", "ar"}, "en")
	catalogPage := &content.Page{Slug: "about", Kind: content.KindStatic, Hero: content.Hero{Title: content.Text("About us")}}
	site := seo.Site{Name: "Cloud MLM Software", BaseURL: "https://example.com"}
	meta := seo.Build(site, catalogPage, "ar", locales, nil)
	resolved, err := Resolve(catalogPage, "ar", "en", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "page.html", map[string]any{
		"siteName": site.Name,
		"locale":   "ar",
		"lang":     locales.Preference("ar"),
		"meta":     meta,
		"page":     resolved,
		"jsonld":   nil,
		"year":     2024,
		"nav":      []Link{{Label: "Pricing", Href: "/ar/pricing"}},
		"languages": []LanguageLink{
			{Label: "English", Href: "/en/about", HrefLang: "en"},
			{Label: "العربية", Href: "/ar/about", HrefLang: "ar", Current: true},
		},
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
	assert.Equal(t, "About us", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, "https://example.com/ar/about", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 3, doc.Find(`link[rel="alternate"]`).Length())
	assert.Equal(t, "true", doc.Find(`.lang-switch a[hreflang="ar"]`).AttrOr("aria-current", ""))
}
