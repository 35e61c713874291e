package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
)

type pageTitleRequest struct {
	Page            string  `json:"page"`
	Locale          string  `json:"locale"`
	Title           *string `json:"title"`
	PagePill        *string `json:"pagePill"`
	SectionSubtitle *string `json:"sectionSubtitle"`
}

// GetPageTitle 返回页面首屏文案，不存在时 data 为 null。
func (a *API) GetPageTitle(c *gin.Context) {
	record, err := a.titles.Get(c.Query("page"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrPageTitleNotFound) {
			c.JSON(http.StatusOK, gin.H{"data": nil})
			return
		}
		a.respondServiceError(c, err, "failed to load page title")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pageTitlePayload(record)})
}

func (a *API) UpsertPageTitle(c *gin.Context) {
	var req pageTitleRequest
	if !bindJSON(c, &req, "invalid page title payload") {
		return
	}

	record, err := a.titles.Upsert(service.PageTitleInput{
		Page:            req.Page,
		Locale:          req.Locale,
		Title:           req.Title,
		PagePill:        req.PagePill,
		SectionSubtitle: req.SectionSubtitle,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to save page title")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page title saved", "data": pageTitlePayload(record)})
}

func (a *API) DeletePageTitle(c *gin.Context) {
	if err := a.titles.Delete(c.Query("page"), c.Query("locale")); err != nil {
		a.respondServiceError(c, err, "failed to delete page title")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page title deleted"})
}

func pageTitlePayload(record *db.PageTitle) gin.H {
	if record == nil {
		return nil
	}
	return gin.H{
		"id":              record.ID,
		"page":            record.Page,
		"locale":          record.Locale,
		"title":           optionalString(record.Title),
		"pagePill":        optionalString(record.PagePill),
		"sectionSubtitle": optionalString(record.SectionSubtitle),
		"updatedAt":       record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
