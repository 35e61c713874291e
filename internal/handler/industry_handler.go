package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
)

type industrySolutionRequest struct {
	Locale      string `json:"locale" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sortOrder"`
}

// GetIndustrySolutions 返回指定语言的行业方案；该语言无数据时回退到默认语言。
func (a *API) GetIndustrySolutions(c *gin.Context) {
	items, served, err := a.industries.List(c.Query("locale"))
	if err != nil {
		a.respondServiceError(c, err, "failed to load industry solutions")
		return
	}
	response := make([]gin.H, 0, len(items))
	for i := range items {
		response = append(response, industrySolutionPayload(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": response, "locale": served})
}

func (a *API) UpsertIndustrySolution(c *gin.Context) {
	var req industrySolutionRequest
	if !bindJSON(c, &req, "locale, slug and title are required") {
		return
	}
	item, err := a.industries.Upsert(service.IndustrySolutionInput{
		Locale:      req.Locale,
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		a.respondServiceError(c, err, "failed to save industry solution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "industry solution saved", "data": industrySolutionPayload(item)})
}

func (a *API) DeleteIndustrySolution(c *gin.Context) {
	if err := a.industries.Delete(c.Query("locale"), c.Query("slug")); err != nil {
		a.respondServiceError(c, err, "failed to delete industry solution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "industry solution deleted"})
}

func industrySolutionPayload(item *db.IndustrySolution) gin.H {
	return gin.H{
		"id":          item.ID,
		"locale":      item.Locale,
		"slug":        item.Slug,
		"title":       item.Title,
		"description": item.Description,
		"icon":        item.Icon,
		"sortOrder":   item.SortOrder,
	}
}
