package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"go.uber.org/zap"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	invalidCredentials = "invalid username or password"
)

type sessionRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	if sessions.Default(c).Get(sessionUserIDKey) != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin login",
	})
}

// Login 处理表单登录
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := db.Authenticate(a.db, username, password)
	if err != nil {
		a.log(c).Info("admin login rejected", zap.String("username", username))
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title":    "Admin login",
			"username": username,
			"error":    invalidCredentials,
		})
		return
	}

	if err := a.startSession(c, user); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin login",
			"error": "could not save session",
		})
		return
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	a.endSession(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

// CreateSession is the JSON login used by API clients such as sitectl.
func (a *API) CreateSession(c *gin.Context) {
	var req sessionRequest
	if !bindJSON(c, &req, "username and password are required") {
		return
	}
	user, err := db.Authenticate(a.db, req.Username, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err := a.startSession(c, user); err != nil {
		respondError(c, http.StatusInternalServerError, "could not save session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

func (a *API) DeleteSession(c *gin.Context) {
	a.endSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *API) startSession(c *gin.Context, user *db.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		c.Error(err)
		a.log(c).Error("save session", zap.Error(err))
		return err
	}
	return nil
}

func (a *API) endSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.Error(err)
	}
}

// ShowDashboard 渲染后台主面板：按 (page, locale) 合并的元信息与标题表格。
func (a *API) ShowDashboard(c *gin.Context) {
	filter := service.PageEntryFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		Locale:  strings.TrimSpace(c.Query("locale")),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: 20,
	}

	data := gin.H{
		"title":    "Dashboard",
		"username": sessions.Default(c).Get(sessionUsernameKey),
		"search":   filter.Search,
		"locale":   filter.Locale,
		"locales":  a.locales.Preferences(),
		"pages":    a.pageKeys(),
	}

	result, err := a.entries.List(filter)
	if err != nil {
		c.Error(err)
		a.log(c).Error("list page entries", zap.Error(err))
		data["error"] = "could not load records"
		data["page"] = 1
		data["totalPages"] = 1
		data["total"] = int64(0)
		a.renderHTML(c, http.StatusInternalServerError, "admin_dashboard.html", data)
		return
	}

	data["entries"] = result.Entries
	data["page"] = result.Page
	data["totalPages"] = result.TotalPages
	data["total"] = result.Total
	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", data)
}

// pageKeys lists the admin keys of every catalog page.
func (a *API) pageKeys() []string {
	slugs := a.catalog.Slugs()
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, content.AdminKey(slug))
	}
	return keys
}

// AuthRequired 是后台页面的认证中间件，未登录时跳转到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Default(c).Get(sessionUserIDKey) == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired 是 JSON 接口的认证中间件，未登录时返回 401。
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Default(c).Get(sessionUserIDKey) == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
