package seo

import (
	"strings"

	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
)

// Site identifies the public site for canonical URLs and structured data.
type Site struct {
	Name    string
	BaseURL string
	LogoURL string
}

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	Type        string
	Locale      string
	SiteName    string
}

type Alternate struct {
	HrefLang string
	Href     string
}

// Meta is everything the <head> of a page needs.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Alternates  []Alternate
	XDefault    string
	OG          OpenGraph
}

// Override carries admin-managed values; nil fields keep the catalog default.
type Override struct {
	Title       *string
	Description *string
	Keywords    *string
}

// PageURL returns the absolute URL of slug in lang.
func PageURL(baseURL, lang, slug string) string {
	path := "/" + lang + "/"
	if slug != "" {
		path += slug
	}
	return strings.TrimRight(baseURL, "/") + path
}

// Build assembles page metadata for lang. The canonical URL always points at
// the resolved locale, so a request for an unsupported locale canonicalizes
// to the default locale's URL.
func Build(site Site, page *content.Page, lang string, locales *locale.Set, override *Override) Meta {
	fallback := locales.Default()
	resolved := locales.Resolve(lang)

	meta := Meta{
		Title:       page.Meta.Title.In(resolved, fallback),
		Description: page.Meta.Description.In(resolved, fallback),
		Keywords:    page.Meta.Keywords.In(resolved, fallback),
		Canonical:   PageURL(site.BaseURL, resolved, page.Slug),
		XDefault:    PageURL(site.BaseURL, fallback, page.Slug),
	}
	if meta.Title == "" {
		meta.Title = page.Title(resolved, fallback)
	}
	if meta.Title == "" {
		meta.Title = site.Name
	}

	if override != nil {
		if override.Title != nil {
			meta.Title = *override.Title
		}
		if override.Description != nil {
			meta.Description = *override.Description
		}
		if override.Keywords != nil {
			meta.Keywords = *override.Keywords
		}
	}

	for _, code := range locales.Supported() {
		meta.Alternates = append(meta.Alternates, Alternate{
			HrefLang: locales.Preference(code).HTMLLang,
			Href:     PageURL(site.BaseURL, code, page.Slug),
		})
	}

	ogType := "website"
	if page.Kind == content.KindBlog {
		ogType = "article"
	}
	image := page.Image
	if image == "" {
		image = site.LogoURL
	}
	meta.OG = OpenGraph{
		Title:       meta.Title,
		Description: meta.Description,
		URL:         meta.Canonical,
		Image:       image,
		Type:        ogType,
		Locale:      strings.ReplaceAll(locales.Preference(resolved).HTMLLang, "-", "_"),
		SiteName:    site.Name,
	}
	return meta
}
