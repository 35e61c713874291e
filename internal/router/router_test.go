package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/handler"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/logging"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"gorm.io/gorm/logger"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano()), logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	catalog, err := content.Default(locale.English)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	locales := locale.MustNewSet(locale.DefaultSupported, locale.English)
	api := handler.NewAPI(gdb, catalog, locales, seo.Site{Name: "Test", BaseURL: "https://example.com"}, nil)

	r, err := SetupRouter(api, "test-secret", nil)
	if err != nil {
		t.Fatalf("SetupRouter returned error: %v", err)
	}
	return r
}

func TestSetupRouterServesPublicAndSystemRoutes(t *testing.T) {
	r := newTestEngine(t)

	tests := []struct {
		name     string
		path     string
		status   int
		location string
	}{
		{name: "health", path: "/healthz", status: http.StatusOK},
		{name: "robots", path: "/robots.txt", status: http.StatusOK},
		{name: "sitemap", path: "/sitemap.xml", status: http.StatusOK},
		{name: "root redirect", path: "/", status: http.StatusFound, location: "/en/"},
		{name: "home", path: "/ar/", status: http.StatusOK},
		{name: "nested page", path: "/it/features/binary-plan", status: http.StatusOK},
		{name: "unsupported locale", path: "/fr/pricing", status: http.StatusOK},
		{name: "unknown page", path: "/en/missing", status: http.StatusNotFound},
		{name: "login page", path: "/admin/login", status: http.StatusOK},
		{name: "admin requires login", path: "/admin/pages/pricing", status: http.StatusFound, location: "/admin/login"},
		{name: "api requires login", path: "/api/admin/pages", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rr.Code != tt.status {
				t.Fatalf("GET %s: expected status %d, got %d", tt.path, tt.status, rr.Code)
			}
			if tt.location != "" && rr.Header().Get("Location") != tt.location {
				t.Fatalf("GET %s: expected redirect to %q, got %q", tt.path, tt.location, rr.Header().Get("Location"))
			}
		})
	}
}

func TestSetupRouterEchoesRequestID(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(logging.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get(logging.RequestIDHeader); got != "req-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}
