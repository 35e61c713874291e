package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
)

type metaDetailRequest struct {
	Page        string  `json:"page"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Keywords    *string `json:"keywords"`
}

// GetMetaDetail 返回某页面某语言的 SEO 元信息，不存在时 data 为 null。
func (a *API) GetMetaDetail(c *gin.Context) {
	record, err := a.metas.Get(c.Query("page"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrMetaDetailNotFound) {
			c.JSON(http.StatusOK, gin.H{"data": nil})
			return
		}
		a.respondServiceError(c, err, "failed to load meta details")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": metaDetailPayload(record)})
}

// UpsertMetaDetail 创建或覆盖元信息；空白字段保存为 NULL。
func (a *API) UpsertMetaDetail(c *gin.Context) {
	var req metaDetailRequest
	if !bindJSON(c, &req, "invalid meta details payload") {
		return
	}

	record, err := a.metas.Upsert(service.MetaDetailInput{
		Page:        req.Page,
		Locale:      req.Locale,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to save meta details")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meta details saved", "data": metaDetailPayload(record)})
}

func (a *API) DeleteMetaDetail(c *gin.Context) {
	if err := a.metas.Delete(c.Query("page"), c.Query("locale")); err != nil {
		a.respondServiceError(c, err, "failed to delete meta details")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meta details deleted"})
}

func metaDetailPayload(record *db.MetaDetail) gin.H {
	if record == nil {
		return nil
	}
	return gin.H{
		"id":          record.ID,
		"page":        record.Page,
		"locale":      record.Locale,
		"title":       optionalString(record.Title),
		"description": optionalString(record.Description),
		"keywords":    optionalString(record.Keywords),
		"updatedAt":   record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
