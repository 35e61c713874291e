package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"github.com/sumeshkk123/cloud-sub010/internal/view"
	"go.uber.org/zap"
)

type navItem struct {
	slug  string
	label content.Localized
}

// navItems are the top-level pages linked from the header, in display order.
var navItems = []navItem{
	{slug: "features", label: content.Localized{"en": "Features", "es": "Funciones", "de": "Funktionen", "it": "Funzionalità", "pt": "Recursos", "zh": "功能", "ar": "الميزات"}},
	{slug: "pricing", label: content.Localized{"en": "Pricing", "es": "Precios", "de": "Preise", "it": "Prezzi", "pt": "Preços", "zh": "价格", "ar": "الأسعار"}},
	{slug: content.GatewaysPrefix, label: content.Localized{"en": "Payment gateways", "es": "Pasarelas de pago", "de": "Zahlungsanbieter", "it": "Gateway di pagamento", "pt": "Gateways de pagamento", "zh": "支付网关", "ar": "بوابات الدفع"}},
	{slug: content.CompaniesPrefix, label: content.Localized{"en": "Company analysis", "es": "Análisis de empresas", "de": "Firmenanalysen", "it": "Analisi aziende", "pt": "Análise de empresas", "zh": "公司分析", "ar": "تحليل الشركات"}},
	{slug: content.BlogPrefix, label: content.Localized{"en": "Blog", "zh": "博客", "ar": "المدونة"}},
	{slug: "contact", label: content.Localized{"en": "Contact", "es": "Contacto", "de": "Kontakt", "it": "Contatti", "pt": "Contato", "zh": "联系我们", "ar": "اتصل بنا"}},
}

var notFoundCopy = content.Localized{
	"en": "The page you are looking for does not exist.",
	"es": "La página que busca no existe.",
	"de": "Die gesuchte Seite existiert nicht.",
	"it": "La pagina che cerchi non esiste.",
	"pt": "A página que você procura não existe.",
	"zh": "您访问的页面不存在。",
	"ar": "الصفحة التي تبحث عنها غير موجودة.",
}

var homeLabel = content.Localized{
	"en": "Back to home",
	"es": "Volver al inicio",
	"de": "Zur Startseite",
	"it": "Torna alla home",
	"pt": "Voltar ao início",
	"zh": "返回首页",
	"ar": "العودة إلى الرئيسية",
}

// ShowPage renders any catalog page under /{lang}/... . An unsupported locale
// segment silently renders the default locale's page.
func (a *API) ShowPage(c *gin.Context) {
	lang, slug, _ := a.locales.SplitPath(c.Request.URL.Path)
	a.setRequestLocale(c, lang)

	page, ok := a.catalog.Page(slug)
	if !ok {
		a.NotFound(c)
		return
	}

	fallback := a.locales.Default()
	key := content.AdminKey(page.Slug)
	metaRecord := a.loadMetaOverride(c, key, lang)
	titleRecord := a.loadTitleOverride(c, key, lang)

	var metaOverride *seo.Override
	if metaRecord != nil {
		metaOverride = &seo.Override{Title: metaRecord.Title, Description: metaRecord.Description, Keywords: metaRecord.Keywords}
	}
	var heroOverride *view.HeroOverride
	if titleRecord != nil {
		heroOverride = &view.HeroOverride{Title: titleRecord.Title, Pill: titleRecord.PagePill, Subtitle: titleRecord.SectionSubtitle}
	}

	meta := seo.Build(a.site, page, lang, a.locales, metaOverride)
	resolved, err := view.Resolve(page, lang, fallback, heroOverride)
	if err != nil {
		c.Error(err)
		a.log(c).Error("render page body", zap.String("slug", page.Slug), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	data := gin.H{
		"locale":    lang,
		"lang":      a.preference(lang),
		"meta":      meta,
		"page":      resolved,
		"nav":       a.navLinks(lang),
		"languages": a.languageLinks(page.Slug, lang),
		"jsonld":    a.structuredData(page, resolved, meta, lang),
	}
	if page.Kind == content.KindHome {
		data["industries"] = a.loadIndustries(c, lang)
	}
	a.renderHTML(c, http.StatusOK, "page.html", data)
}

// NotFound handles unmatched routes: JSON under /api, the 404 page elsewhere.
func (a *API) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	lang, _, _ := a.locales.SplitPath(c.Request.URL.Path)
	a.renderNotFound(c, lang)
}

func (a *API) renderNotFound(c *gin.Context, lang string) {
	fallback := a.locales.Default()
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"title":     "404 · " + a.site.Name,
		"locale":    lang,
		"lang":      a.preference(lang),
		"message":   notFoundCopy.In(lang, fallback),
		"homeLabel": homeLabel.In(lang, fallback),
		"nav":       a.navLinks(lang),
		"languages": a.languageLinks("", lang),
	})
}

func (a *API) loadMetaOverride(c *gin.Context, key, lang string) *db.MetaDetail {
	record, err := a.metas.Get(key, lang)
	if err != nil {
		if !errors.Is(err, service.ErrMetaDetailNotFound) {
			a.log(c).Warn("load meta detail", zap.String("page", key), zap.String("locale", lang), zap.Error(err))
		}
		return nil
	}
	return record
}

func (a *API) loadTitleOverride(c *gin.Context, key, lang string) *db.PageTitle {
	record, err := a.titles.Get(key, lang)
	if err != nil {
		if !errors.Is(err, service.ErrPageTitleNotFound) {
			a.log(c).Warn("load page title", zap.String("page", key), zap.String("locale", lang), zap.Error(err))
		}
		return nil
	}
	return record
}

func (a *API) loadIndustries(c *gin.Context, lang string) []db.IndustrySolution {
	items, _, err := a.industries.List(lang)
	if err != nil {
		a.log(c).Warn("load industry solutions", zap.String("locale", lang), zap.Error(err))
		return nil
	}
	return items
}

func (a *API) navLinks(lang string) []view.Link {
	fallback := a.locales.Default()
	links := make([]view.Link, 0, len(navItems))
	for _, item := range navItems {
		if _, ok := a.catalog.Page(item.slug); !ok {
			continue
		}
		links = append(links, view.Link{Label: item.label.In(lang, fallback), Href: localePath(lang, item.slug)})
	}
	return links
}

// structuredData 生成页面的 JSON-LD 片段。
func (a *API) structuredData(page *content.Page, resolved view.Page, meta seo.Meta, lang string) []template.JS {
	blocks := []template.JS{seo.JSON(seo.Organization(a.site))}

	if page.Slug != "" {
		crumbs := []seo.BreadcrumbItem{{Name: a.site.Name, Item: seo.PageURL(a.site.BaseURL, lang, "")}}
		if page.Parent != "" {
			if parent, ok := a.catalog.Page(page.Parent); ok {
				crumbs = append(crumbs, seo.BreadcrumbItem{
					Name: parent.Title(lang, a.locales.Default()),
					Item: seo.PageURL(a.site.BaseURL, lang, parent.Slug),
				})
			}
		}
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: resolved.Hero.Title, Item: meta.Canonical})
		blocks = append(blocks, seo.JSON(seo.BreadcrumbList(crumbs)))
	}
	if faq := seo.FAQPage(resolved.FAQ); faq != nil {
		blocks = append(blocks, seo.JSON(faq))
	}
	if page.Kind == content.KindBlog {
		blocks = append(blocks, seo.JSON(seo.BlogPosting(a.site, page, meta)))
	}
	return blocks
}
