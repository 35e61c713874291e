package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/logging"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	catalog    *content.Catalog
	locales    *locale.Set
	site       seo.Site
	metas      *service.MetaDetailService
	titles     *service.PageTitleService
	entries    *service.PageEntryService
	industries *service.IndustrySolutionService
	logger     *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, catalog *content.Catalog, locales *locale.Set, site seo.Site, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		db:         gdb,
		catalog:    catalog,
		locales:    locales,
		site:       site,
		metas:      service.NewMetaDetailService(gdb, locales),
		titles:     service.NewPageTitleService(gdb, locales),
		entries:    service.NewPageEntryService(gdb),
		industries: service.NewIndustrySolutionService(gdb, locales),
		logger:     logger,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Locales exposes the supported locale set.
func (a *API) Locales() *locale.Set {
	return a.locales
}

func (a *API) log(c *gin.Context) *zap.Logger {
	return logging.FromContext(c, a.logger)
}

// renderHTML 渲染模板时自动附加站点名称与年份。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["siteName"]; !exists {
		payload["siteName"] = a.site.Name
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	c.HTML(status, template, payload)
}
