package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
)

func TestRootRedirectsToAcceptLanguage(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")
	rec := srv.serve(req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/de/", rec.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec = srv.serve(req)
	assert.Equal(t, "/en/", rec.Header().Get("Location"))
}

func TestUnsupportedLocaleRendersDefaultPage(t *testing.T) {
	srv := newTestServer(t)

	english := srv.get("/en/pricing")
	require.Equal(t, http.StatusOK, english.Code)
	french := srv.get("/fr/pricing")
	require.Equal(t, http.StatusOK, french.Code)

	enDoc := parseHTML(t, english)
	frDoc := parseHTML(t, french)
	assert.Equal(t, "en", frDoc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, testBaseURL+"/en/pricing", frDoc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, enDoc.Find("h1").Text(), frDoc.Find("h1").Text())
	assert.Equal(t, enDoc.Find("title").Text(), frDoc.Find("title").Text())
}

func TestPathWithoutLocaleUsesDefault(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.get("/pricing/")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, testBaseURL+"/en/pricing", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
}

func TestUnknownSlugRendersNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.get("/es/no-such-page")
	require.Equal(t, http.StatusNotFound, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, "404", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Contains(t, doc.Find(".hero-subtitle").Text(), "no existe")

	api := srv.get("/api/nothing")
	assert.Equal(t, http.StatusNotFound, api.Code)
	assert.Equal(t, "not found", decodeJSON(t, api)["error"])
}

func TestPageRendersHreflangAlternates(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.get("/es/payment-gateways/mexico")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "es", rec.Header().Get("Content-Language"))

	doc := parseHTML(t, rec)
	assert.Equal(t, "Pasarelas de pago MLM para México", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, 8, doc.Find(`link[rel="alternate"]`).Length())
	assert.Equal(t, testBaseURL+"/en/payment-gateways/mexico", doc.Find(`link[hreflang="x-default"]`).AttrOr("href", ""))
	assert.Equal(t, "/zh/payment-gateways/mexico", doc.Find(`.lang-switch a[hreflang="zh-CN"]`).AttrOr("href", ""))
	assert.GreaterOrEqual(t, doc.Find(`script[type="application/ld+json"]`).Length(), 2)
}

func TestAdminRecordsOverrideCatalogCopy(t *testing.T) {
	srv := newTestServer(t)
	metas := service.NewMetaDetailService(srv.gdb, srv.api.Locales())
	titles := service.NewPageTitleService(srv.gdb, srv.api.Locales())

	title := "Precios personalizados"
	_, err := titles.Upsert(service.PageTitleInput{Page: "pricing", Locale: "es", Title: &title})
	require.NoError(t, err)
	metaTitle := "Precios | Cloud MLM"
	_, err = metas.Upsert(service.MetaDetailInput{Page: "pricing", Locale: "es", Title: &metaTitle})
	require.NoError(t, err)

	rec := srv.get("/es/pricing")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, title, strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, metaTitle, doc.Find("title").Text())
	assert.NotEmpty(t, doc.Find(`meta[name="description"]`).AttrOr("content", ""), "catalog description is kept")

	english := parseHTML(t, srv.get("/en/pricing"))
	assert.NotEqual(t, title, strings.TrimSpace(english.Find("h1").Text()))
}

func TestHomeOverrideUsesHomeKey(t *testing.T) {
	srv := newTestServer(t)

	titles := service.NewPageTitleService(srv.gdb, srv.api.Locales())
	pill := "Nuevo"
	_, err := titles.Upsert(service.PageTitleInput{Page: content.AdminKey(""), Locale: "es", PagePill: &pill})
	require.NoError(t, err)

	doc := parseHTML(t, srv.get("/es/"))
	assert.Equal(t, pill, doc.Find(".page-pill").Text())
}

func TestHomeListsIndustrySolutions(t *testing.T) {
	srv := newTestServer(t)

	catalog, err := content.Default("en")
	require.NoError(t, err)
	industries := service.NewIndustrySolutionService(srv.gdb, srv.api.Locales())
	_, err = industries.SeedFromCatalog(catalog)
	require.NoError(t, err)

	doc := parseHTML(t, srv.get("/it/"))
	assert.Equal(t, 3, doc.Find(".industry").Length(), "italian falls back to english rows")

	doc = parseHTML(t, srv.get("/de/"))
	require.Equal(t, 1, doc.Find(".industry").Length())
	assert.Equal(t, "Gesundheit & Wellness", doc.Find(".industry h3").Text())
}

func TestSitemapRobotsAndHealth(t *testing.T) {
	srv := newTestServer(t)

	sitemap := srv.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, sitemap.Code)
	assert.Contains(t, sitemap.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, sitemap.Body.String(), "<loc>"+testBaseURL+"/ar/features/e-wallet</loc>")

	robots := srv.get("/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: "+testBaseURL+"/sitemap.xml")

	health := srv.get("/healthz")
	require.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "ok", decodeJSON(t, health)["status"])
}
