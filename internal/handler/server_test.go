package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/handler"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/router"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testUsername = "admin"
	testPassword = "s3cret-pass"
	testBaseURL  = "https://example.com"
)

var ginOnce sync.Once

type testServer struct {
	t       *testing.T
	gdb     *gorm.DB
	api     *handler.API
	engine  *gin.Engine
	cookies map[string]*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	_, err = db.EnsureUser(gdb, testUsername, testPassword)
	require.NoError(t, err)

	catalog, err := content.Default(locale.English)
	require.NoError(t, err)
	locales := locale.MustNewSet(locale.DefaultSupported, locale.English)
	site := seo.Site{Name: "Cloud MLM Software", BaseURL: testBaseURL}

	api := handler.NewAPI(gdb, catalog, locales, site, nil)
	engine, err := router.SetupRouter(api, "test-secret", nil)
	require.NoError(t, err)

	return &testServer{t: t, gdb: gdb, api: api, engine: engine, cookies: map[string]*http.Cookie{}}
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	s.t.Helper()
	for _, cookie := range s.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(s.cookies, cookie.Name)
			continue
		}
		s.cookies[cookie.Name] = cookie
	}
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.serve(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) json(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return s.serve(req)
}

func (s *testServer) form(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.serve(req)
}

func (s *testServer) login() {
	s.t.Helper()
	rec := s.json(http.MethodPost, "/api/admin/session", map[string]string{"username": testUsername, "password": testPassword})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	return payload
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}
