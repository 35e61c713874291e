package main

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInitUserIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")
	t.Setenv("SUPER_ROOT_USER_NAME", "")
	t.Setenv("SUPER_ROOT_PASSWORD", "")

	_, _, err := runCmd(t, "init-user", "--db", path)
	require.Error(t, err)

	out, _, err := runCmd(t, "init-user", "--db", path, "--username", "ops", "--password", "pw-1234")
	require.NoError(t, err)
	assert.Contains(t, out, `user "ops" created`)

	out, _, err = runCmd(t, "init-user", "--db", path, "--username", "ops", "--password", "other")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestSeedWithSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.db")

	out, _, err := runCmd(t, "seed", "--db", path, "--samples")
	require.NoError(t, err)
	assert.Contains(t, out, "industry solutions: 7 created")

	gdb, err := db.Open(path, logger.Silent)
	require.NoError(t, err)
	var home db.PageTitle
	require.NoError(t, gdb.Where("page = ? AND locale = ?", "home", "en").First(&home).Error)
	require.NotNil(t, home.Title)
	assert.NotEmpty(t, *home.Title)

	out, _, err = runCmd(t, "seed", "--db", path, "--samples")
	require.NoError(t, err)
	assert.Contains(t, out, "industry solutions: 0 created")
	assert.Contains(t, out, "meta details: 0 created")
}

func newRemoteServer(t *testing.T) (string, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:sitectl-%d?mode=memory&cache=shared", time.Now().UnixNano()), logger.Silent)
	require.NoError(t, err)
	_, err = db.EnsureUser(gdb, "ops", "remote-pass")
	require.NoError(t, err)

	catalog, err := content.Default(locale.English)
	require.NoError(t, err)
	api := handler.NewAPI(gdb, catalog, locale.MustNewSet(locale.DefaultSupported, locale.English), seo.Site{Name: "Test"}, nil)
	engine, err := router.SetupRouter(api, "secret", nil)
	require.NoError(t, err)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv.URL, gdb
}

func TestMetaSetShowDelete(t *testing.T) {
	url, gdb := newRemoteServer(t)
	t.Setenv("SUPER_ROOT_USER_NAME", "ops")
	t.Setenv("SUPER_ROOT_PASSWORD", "remote-pass")
	base := []string{"--server", url, "--page", "pricing"}

	_, _, err := runCmd(t, append([]string{"meta", "set"}, base...)...)
	require.Error(t, err, "set without fields fails")

	out, _, err := runCmd(t, append([]string{"meta", "set", "--locale", "es", "--meta-title", "Precios", "--page-pill", "Nuevo"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved pricing (es)")

	var stored db.PageTitle
	require.NoError(t, gdb.Where("page = ? AND locale = ?", "pricing", "es").First(&stored).Error)
	assert.Equal(t, "Nuevo", *stored.PagePill)
	assert.Nil(t, stored.Title)

	out, _, err = runCmd(t, append([]string{"meta", "show"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "es*")
	assert.Contains(t, out, "Precios")

	_, _, err = runCmd(t, append([]string{"meta", "delete", "--locale", "es"}, base...)...)
	require.NoError(t, err)
	var count int64
	gdb.Model(&db.MetaDetail{}).Where("page = ?", "pricing").Count(&count)
	assert.Zero(t, count)

	_, stderr, err := runCmd(t, "meta", "show", "--server", url, "--page", "pricing", "--password", "wrong")
	require.Error(t, err)
	assert.Empty(t, stderr)
}
