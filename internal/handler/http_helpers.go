package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// statusForError 将服务层的哨兵错误映射为 HTTP 状态码。
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrPageRequired),
		errors.Is(err, service.ErrUnsupportedLocale),
		errors.Is(err, service.ErrIndustrySolutionInvalid):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMetaDetailNotFound),
		errors.Is(err, service.ErrPageTitleNotFound),
		errors.Is(err, service.ErrIndustrySolutionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes err as JSON. Unexpected errors are logged and
// replaced by fallback so storage details never reach the client.
func (a *API) respondServiceError(c *gin.Context, err error, fallback string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		a.log(c).Error(fallback, zap.Error(err))
		respondError(c, status, fallback)
		return
	}
	respondError(c, status, err.Error())
}

func parsePositiveInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// optionalString keeps JSON null distinct from an empty string.
func optionalString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
