package seo

import (
	"encoding/xml"
	"strings"

	"github.com/sumeshkk123/cloud-sub010/internal/locale"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap renders a sitemap with one <url> per slug and locale, each listing
// its translations as hreflang alternates.
func Sitemap(baseURL string, slugs []string, locales *locale.Set) ([]byte, error) {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	supported := locales.Supported()
	for _, slug := range slugs {
		links := make([]sitemapLink, 0, len(supported)+1)
		for _, code := range supported {
			links = append(links, sitemapLink{
				Rel:      "alternate",
				HrefLang: locales.Preference(code).HTMLLang,
				Href:     PageURL(baseURL, code, slug),
			})
		}
		links = append(links, sitemapLink{
			Rel:      "alternate",
			HrefLang: "x-default",
			Href:     PageURL(baseURL, locales.Default(), slug),
		})
		for _, code := range supported {
			set.URLs = append(set.URLs, sitemapURL{Loc: PageURL(baseURL, code, slug), Links: links})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api\n")
	b.WriteString("Allow: /\n")
	if baseURL != "" {
		b.WriteString("Sitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n")
	}
	return b.String()
}
