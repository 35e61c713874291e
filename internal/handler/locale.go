package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/view"
)

func (a *API) setRequestLocale(c *gin.Context, lang string) {
	c.Header("Content-Language", a.locales.Preference(lang).HTMLLang)
}

// RedirectToLocale sends the bare root to the best locale for Accept-Language.
func (a *API) RedirectToLocale(c *gin.Context) {
	lang := a.locales.Match(c.GetHeader("Accept-Language"))
	appendVaryHeader(c, "Accept-Language")
	c.Redirect(http.StatusFound, "/"+lang+"/")
}

// languageLinks builds the switcher entries pointing at slug in every locale.
func (a *API) languageLinks(slug, current string) []view.LanguageLink {
	prefs := a.locales.Preferences()
	links := make([]view.LanguageLink, 0, len(prefs))
	for _, pref := range prefs {
		links = append(links, view.LanguageLink{
			Label:    pref.Label,
			Href:     localePath(pref.Locale, slug),
			HrefLang: pref.HTMLLang,
			Current:  pref.Locale == current,
		})
	}
	return links
}

func localePath(lang, slug string) string {
	return "/" + lang + "/" + strings.Trim(slug, "/")
}

// preference is a shorthand used by templates for html lang/dir.
func (a *API) preference(lang string) locale.Preference {
	return a.locales.Preference(lang)
}

func appendVaryHeader(c *gin.Context, headers ...string) {
	existing := c.Writer.Header().Get("Vary")
	seen := make(map[string]struct{})
	order := make([]string, 0, len(headers))
	for _, token := range append(strings.Split(existing, ","), headers...) {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		order = append(order, trimmed)
	}
	if len(order) > 0 {
		c.Header("Vary", strings.Join(order, ", "))
	}
}
