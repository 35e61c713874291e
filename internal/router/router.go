package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/handler"
	"github.com/sumeshkk123/cloud-sub010/internal/logging"
	"github.com/sumeshkk123/cloud-sub010/internal/view"
	"go.uber.org/zap"
)

const sessionName = "cloudmlm_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	// 页面 key 可能包含 "/"，后台路由以 %2F 传递。
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(logging.RequestLogger(logger), logging.Recovery(logger))

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode, MaxAge: 7 * 24 * 60 * 60})
	r.Use(sessions.Sessions(sessionName, store))

	tmpl, err := view.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", api.HealthCheck)
	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/robots.txt", api.Robots)
	r.GET("/", api.RedirectToLocale)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.RedirectToPageEditor)
			auth.GET("/pages/:page", api.ShowPageEditor)
			auth.POST("/pages/:page/:locale", api.SavePageLocale)
			auth.POST("/pages/:page/:locale/delete", api.DeletePageLocale)
		}
	}

	// JSON 接口
	apiGroup := r.Group("/api/admin")
	{
		apiGroup.POST("/session", api.CreateSession)
		apiGroup.DELETE("/session", api.DeleteSession)

		authed := apiGroup.Group("")
		authed.Use(handler.APIAuthRequired())
		{
			authed.GET("/meta-details", api.GetMetaDetail)
			authed.PUT("/meta-details", api.UpsertMetaDetail)
			authed.DELETE("/meta-details", api.DeleteMetaDetail)

			authed.GET("/page-titles", api.GetPageTitle)
			authed.PUT("/page-titles", api.UpsertPageTitle)
			authed.DELETE("/page-titles", api.DeletePageTitle)

			authed.GET("/industry-solutions", api.GetIndustrySolutions)
			authed.PUT("/industry-solutions", api.UpsertIndustrySolution)
			authed.DELETE("/industry-solutions", api.DeleteIndustrySolution)

			authed.GET("/page-entries", api.GetPageEntries)
			authed.GET("/pages", api.GetPages)
		}
	}

	// 公开页面：/{lang}/... ，未知路径渲染 404 页面
	r.GET("/:lang/*path", api.ShowPage)
	r.NoRoute(api.NotFound)

	return r, nil
}
