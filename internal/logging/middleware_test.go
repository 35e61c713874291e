package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r, logs
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	r, logs := newObservedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
}

func TestRequestLoggerKeepsIncomingRequestID(t *testing.T) {
	r, _ := newObservedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	r, logs := newObservedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecoveryLogsPanic(t *testing.T) {
	r, logs := newObservedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestNewLoggerFallsBackOnInvalidLevel(t *testing.T) {
	logger, err := NewLogger("loud")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
