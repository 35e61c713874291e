package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
)

// GetPageEntries 返回按 (page, locale) 合并后的后台表格数据。
func (a *API) GetPageEntries(c *gin.Context) {
	filter := service.PageEntryFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		Locale:  strings.TrimSpace(c.Query("locale")),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("perPage", "20"), 20),
	}

	result, err := a.entries.List(filter)
	if err != nil {
		a.respondServiceError(c, err, "failed to load page entries")
		return
	}

	rows := make([]gin.H, 0, len(result.Entries))
	for i := range result.Entries {
		entry := &result.Entries[i]
		rows = append(rows, gin.H{
			"page":      entry.Page,
			"locale":    entry.Locale,
			"meta":      metaDetailPayload(entry.Meta),
			"pageTitle": pageTitlePayload(entry.Title),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       rows,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"page":       result.Page,
		"perPage":    result.PerPage,
	})
}

// GetPages lists the page keys admins can edit, with the supported locales.
func (a *API) GetPages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":          a.pageKeys(),
		"locales":       a.locales.Supported(),
		"defaultLocale": a.locales.Default(),
	})
}
