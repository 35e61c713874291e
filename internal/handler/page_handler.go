package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"go.uber.org/zap"
)

// pageFields 是编辑表单中单个语言的全部字段。
type pageFields struct {
	MetaTitle       string
	Description     string
	Keywords        string
	Title           string
	PagePill        string
	SectionSubtitle string
}

func (f pageFields) empty() bool {
	return f == pageFields{}
}

type editorTab struct {
	Locale string
	Label  string
	Dir    string
	Saved  bool
	Active bool
	Fields pageFields
}

// RedirectToPageEditor turns the dashboard page picker (?page=) into an editor URL.
func (a *API) RedirectToPageEditor(c *gin.Context) {
	key := service.NormalizePage(c.Query("page"))
	if key == "" {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, editorPath(key, ""))
}

// ShowPageEditor 渲染某页面的多语言编辑页，每个语言一个标签。
func (a *API) ShowPageEditor(c *gin.Context) {
	key := service.NormalizePage(c.Param("page"))
	if key == "" {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	data := gin.H{}
	if c.Query("saved") == "1" {
		data["success"] = "Saved."
	}
	if c.Query("deleted") == "1" {
		data["success"] = "Deleted."
	}
	a.renderEditor(c, http.StatusOK, key, c.Query("locale"), nil, nil, data)
}

// SavePageLocale 保存一个语言的 MetaDetail 与 PageTitle。两个写入相互独立，
// 都会被尝试，失败分别提示。
func (a *API) SavePageLocale(c *gin.Context) {
	key := service.NormalizePage(c.Param("page"))
	lang := c.Param("locale")
	if key == "" {
		respondError(c, http.StatusBadRequest, service.ErrPageRequired.Error())
		return
	}
	submitted := pageFields{
		MetaTitle:       c.PostForm("meta_title"),
		Description:     c.PostForm("meta_description"),
		Keywords:        c.PostForm("meta_keywords"),
		Title:           c.PostForm("title"),
		PagePill:        c.PostForm("page_pill"),
		SectionSubtitle: c.PostForm("section_subtitle"),
	}

	var messages []string
	status := http.StatusOK

	if _, err := a.metas.Upsert(service.MetaDetailInput{
		Page:        key,
		Locale:      lang,
		Title:       &submitted.MetaTitle,
		Description: &submitted.Description,
		Keywords:    &submitted.Keywords,
	}); err != nil {
		messages = append(messages, "Meta details: "+a.editorError(c, err))
		status = statusForError(err)
	}

	if _, err := a.titles.Upsert(service.PageTitleInput{
		Page:            key,
		Locale:          lang,
		Title:           &submitted.Title,
		PagePill:        &submitted.PagePill,
		SectionSubtitle: &submitted.SectionSubtitle,
	}); err != nil {
		messages = append(messages, "Page title: "+a.editorError(c, err))
		if status == http.StatusOK {
			status = statusForError(err)
		}
	}

	if len(messages) == 0 {
		c.Redirect(http.StatusFound, editorPath(key, lang)+"&saved=1")
		return
	}
	a.renderEditor(c, status, key, lang, &submitted, messages, gin.H{})
}

// DeletePageLocale removes both records of one locale. A record that does not
// exist counts as deleted.
func (a *API) DeletePageLocale(c *gin.Context) {
	key := service.NormalizePage(c.Param("page"))
	lang := c.Param("locale")
	if key == "" {
		respondError(c, http.StatusBadRequest, service.ErrPageRequired.Error())
		return
	}

	var messages []string
	status := http.StatusOK
	if err := a.metas.Delete(key, lang); err != nil && !errors.Is(err, service.ErrMetaDetailNotFound) {
		messages = append(messages, "Meta details: "+a.editorError(c, err))
		status = statusForError(err)
	}
	if err := a.titles.Delete(key, lang); err != nil && !errors.Is(err, service.ErrPageTitleNotFound) {
		messages = append(messages, "Page title: "+a.editorError(c, err))
		if status == http.StatusOK {
			status = statusForError(err)
		}
	}

	if len(messages) == 0 {
		c.Redirect(http.StatusFound, editorPath(key, lang)+"&deleted=1")
		return
	}
	a.renderEditor(c, status, key, lang, nil, messages, gin.H{})
}

// editorError returns a user-facing message, logging unexpected failures.
func (a *API) editorError(c *gin.Context, err error) string {
	if statusForError(err) == http.StatusInternalServerError {
		c.Error(err)
		a.log(c).Error("save page locale", zap.Error(err))
		return "could not be saved, try again"
	}
	return err.Error()
}

func (a *API) renderEditor(c *gin.Context, status int, key, requested string, submitted *pageFields, messages []string, data gin.H) {
	tabs, err := a.editorTabs(key, requested, submitted)
	if err != nil {
		c.Error(err)
		a.log(c).Error("load page editor", zap.String("page", key), zap.Error(err))
		messages = append(messages, "could not load records")
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}

	data["title"] = "Edit page"
	data["pageKey"] = key
	data["tabs"] = tabs
	data["errors"] = messages
	data["username"] = sessions.Default(c).Get(sessionUsernameKey)
	a.renderHTML(c, status, "admin_page_edit.html", data)
}

// editorTabs loads every locale's records for key. submitted replaces the
// stored fields of the requested locale so a failed save keeps the input.
func (a *API) editorTabs(key, requested string, submitted *pageFields) ([]editorTab, error) {
	metas, err := a.metas.ListByPage(key)
	if err != nil {
		return nil, err
	}
	titles, err := a.titles.ListByPage(key)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]pageFields, len(a.locales.Supported()))
	for i := range metas {
		f := fields[metas[i].Locale]
		applyMeta(&f, &metas[i])
		fields[metas[i].Locale] = f
	}
	for i := range titles {
		f := fields[titles[i].Locale]
		applyTitle(&f, &titles[i])
		fields[titles[i].Locale] = f
	}

	saved := make(map[string]bool, len(fields))
	for lang, f := range fields {
		saved[lang] = !f.empty()
	}

	active := requested
	if !a.locales.IsSupported(active) {
		active = a.locales.Initial(saved)
	}
	if submitted != nil && active == requested {
		fields[active] = *submitted
	}

	prefs := a.locales.Preferences()
	tabs := make([]editorTab, 0, len(prefs))
	for _, pref := range prefs {
		tabs = append(tabs, editorTab{
			Locale: pref.Locale,
			Label:  pref.Label,
			Dir:    pref.Dir,
			Saved:  saved[pref.Locale],
			Active: pref.Locale == active,
			Fields: fields[pref.Locale],
		})
	}
	return tabs, nil
}

func applyMeta(f *pageFields, record *db.MetaDetail) {
	f.MetaTitle = deref(record.Title)
	f.Description = deref(record.Description)
	f.Keywords = deref(record.Keywords)
}

func applyTitle(f *pageFields, record *db.PageTitle) {
	f.Title = deref(record.Title)
	f.PagePill = deref(record.PagePill)
	f.SectionSubtitle = deref(record.SectionSubtitle)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func editorPath(key, lang string) string {
	path := "/admin/pages/" + url.PathEscape(key)
	if lang = strings.TrimSpace(lang); lang != "" {
		return path + "?locale=" + url.QueryEscape(lang)
	}
	return path
}
