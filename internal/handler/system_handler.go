package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"go.uber.org/zap"
)

// HealthCheck 提供给负载均衡与监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	sqlDB, err := a.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "database handle unavailable",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "up",
		"pages":    len(a.catalog.Slugs()),
	})
}

// Sitemap 输出包含所有语言版本的 sitemap.xml。
func (a *API) Sitemap(c *gin.Context) {
	body, err := seo.Sitemap(a.site.BaseURL, a.catalog.Slugs(), a.locales)
	if err != nil {
		c.Error(err)
		a.log(c).Error("render sitemap", zap.Error(err))
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (a *API) Robots(c *gin.Context) {
	c.String(http.StatusOK, seo.Robots(a.site.BaseURL))
}
