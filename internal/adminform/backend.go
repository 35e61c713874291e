package adminform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// MetaDetail mirrors the admin API payload for SEO overrides.
type MetaDetail struct {
	Page        string  `json:"page"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Keywords    *string `json:"keywords"`
}

// PageTitle mirrors the admin API payload for hero overrides.
type PageTitle struct {
	Page            string  `json:"page"`
	Locale          string  `json:"locale"`
	Title           *string `json:"title"`
	PagePill        *string `json:"pagePill"`
	SectionSubtitle *string `json:"sectionSubtitle"`
}

// Backend 是表单依赖的存储接口。Get 在记录不存在时返回 nil, nil。
type Backend interface {
	GetMetaDetail(ctx context.Context, page, locale string) (*MetaDetail, error)
	PutMetaDetail(ctx context.Context, record MetaDetail) error
	DeleteMetaDetail(ctx context.Context, page, locale string) error
	GetPageTitle(ctx context.Context, page, locale string) (*PageTitle, error)
	PutPageTitle(ctx context.Context, record PageTitle) error
	DeletePageTitle(ctx context.Context, page, locale string) error
}

// APIError carries a non-2xx response from the admin API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// IsNotFound reports whether err is a 404 from the admin API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Doer is satisfied by *http.Client and by in-process test clients.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPBackend talks to /api/admin over HTTP with a cookie session.
type HTTPBackend struct {
	baseURL string
	client  Doer
}

var _ Backend = (*HTTPBackend)(nil)

// NewHTTPBackend 创建后台 API 客户端；client 为 nil 时使用带 cookie jar 的默认客户端。
func NewHTTPBackend(baseURL string, client Doer) *HTTPBackend {
	if client == nil {
		jar, _ := cookiejar.New(nil)
		client = &http.Client{Jar: jar}
	}
	return &HTTPBackend{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Login opens an admin session. The session cookie is kept by the client's jar.
func (b *HTTPBackend) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return b.do(ctx, http.MethodPost, "/api/admin/session", nil, body, nil)
}

func (b *HTTPBackend) Logout(ctx context.Context) error {
	return b.do(ctx, http.MethodDelete, "/api/admin/session", nil, nil, nil)
}

func (b *HTTPBackend) GetMetaDetail(ctx context.Context, page, locale string) (*MetaDetail, error) {
	var resp struct {
		Data *MetaDetail `json:"data"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/admin/meta-details", keyQuery(page, locale), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (b *HTTPBackend) PutMetaDetail(ctx context.Context, record MetaDetail) error {
	return b.do(ctx, http.MethodPut, "/api/admin/meta-details", nil, record, nil)
}

func (b *HTTPBackend) DeleteMetaDetail(ctx context.Context, page, locale string) error {
	return b.do(ctx, http.MethodDelete, "/api/admin/meta-details", keyQuery(page, locale), nil, nil)
}

func (b *HTTPBackend) GetPageTitle(ctx context.Context, page, locale string) (*PageTitle, error) {
	var resp struct {
		Data *PageTitle `json:"data"`
	}
	if err := b.do(ctx, http.MethodGet, "/api/admin/page-titles", keyQuery(page, locale), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (b *HTTPBackend) PutPageTitle(ctx context.Context, record PageTitle) error {
	return b.do(ctx, http.MethodPut, "/api/admin/page-titles", nil, record, nil)
}

func (b *HTTPBackend) DeletePageTitle(ctx context.Context, page, locale string) error {
	return b.do(ctx, http.MethodDelete, "/api/admin/page-titles", keyQuery(page, locale), nil, nil)
}

func keyQuery(page, locale string) url.Values {
	return url.Values{"page": {page}, "locale": {locale}}
}

func (b *HTTPBackend) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := b.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
