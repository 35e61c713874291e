// Package adminform 实现后台"页面元信息 + 页面标题"组合表单的状态管理。
package adminform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"github.com/sumeshkk123/cloud-sub010/internal/service"
	"golang.org/x/sync/errgroup"
)

// Field names match the inputs of the server-rendered editor.
type Field string

const (
	FieldMetaTitle       Field = "meta_title"
	FieldMetaDescription Field = "meta_description"
	FieldMetaKeywords    Field = "meta_keywords"
	FieldTitle           Field = "title"
	FieldPagePill        Field = "page_pill"
	FieldSectionSubtitle Field = "section_subtitle"
)

// AllFields lists every editable field in display order.
var AllFields = []Field{FieldMetaTitle, FieldMetaDescription, FieldMetaKeywords, FieldTitle, FieldPagePill, FieldSectionSubtitle}

var (
	ErrNotLoaded     = errors.New("no page loaded")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownLocale = errors.New("unsupported locale")
)

// Fields is the editable state of one locale. Empty string means "not set".
type Fields struct {
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	Title           string
	PagePill        string
	SectionSubtitle string
}

func (f Fields) Get(field Field) (string, error) {
	switch field {
	case FieldMetaTitle:
		return f.MetaTitle, nil
	case FieldMetaDescription:
		return f.MetaDescription, nil
	case FieldMetaKeywords:
		return f.MetaKeywords, nil
	case FieldTitle:
		return f.Title, nil
	case FieldPagePill:
		return f.PagePill, nil
	case FieldSectionSubtitle:
		return f.SectionSubtitle, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, field)
}

func (f *Fields) set(field Field, value string) error {
	switch field {
	case FieldMetaTitle:
		f.MetaTitle = value
	case FieldMetaDescription:
		f.MetaDescription = value
	case FieldMetaKeywords:
		f.MetaKeywords = value
	case FieldTitle:
		f.Title = value
	case FieldPagePill:
		f.PagePill = value
	case FieldSectionSubtitle:
		f.SectionSubtitle = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// HasContent reports whether any field carries non-blank text.
func (f Fields) HasContent() bool {
	for _, v := range []string{f.MetaTitle, f.MetaDescription, f.MetaKeywords, f.Title, f.PagePill, f.SectionSubtitle} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Toaster shows user-visible notifications.
type Toaster interface {
	Success(message string)
	Error(message string)
}

type nopToaster struct{}

func (nopToaster) Success(string) {}
func (nopToaster) Error(string)   {}

// Form holds per-locale state for one page. Not safe for concurrent use.
type Form struct {
	backend Backend
	locales *locale.Set
	toast   Toaster

	page   string
	active string
	fields map[string]Fields
	saved  map[string]bool
}

func New(backend Backend, locales *locale.Set, toast Toaster) *Form {
	if toast == nil {
		toast = nopToaster{}
	}
	return &Form{backend: backend, locales: locales, toast: toast}
}

// Load fetches both records for every locale in parallel and replaces the
// form state. On failure the previous state is kept.
func (f *Form) Load(ctx context.Context, page string) error {
	key := service.NormalizePage(page)
	if key == "" {
		f.toast.Error(service.ErrPageRequired.Error())
		return service.ErrPageRequired
	}

	supported := f.locales.Supported()
	metas := make([]*MetaDetail, len(supported))
	titles := make([]*PageTitle, len(supported))

	g, gctx := errgroup.WithContext(ctx)
	for i, lang := range supported {
		i, lang := i, lang
		g.Go(func() error {
			record, err := f.backend.GetMetaDetail(gctx, key, lang)
			if err != nil {
				return fmt.Errorf("load meta details (%s): %w", lang, err)
			}
			metas[i] = record
			return nil
		})
		g.Go(func() error {
			record, err := f.backend.GetPageTitle(gctx, key, lang)
			if err != nil {
				return fmt.Errorf("load page title (%s): %w", lang, err)
			}
			titles[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		f.toast.Error("Failed to load page data: " + messageOf(err))
		return err
	}

	fields := make(map[string]Fields, len(supported))
	saved := make(map[string]bool, len(supported))
	for i, lang := range supported {
		var state Fields
		if m := metas[i]; m != nil {
			state.MetaTitle = value(m.Title)
			state.MetaDescription = value(m.Description)
			state.MetaKeywords = value(m.Keywords)
		}
		if t := titles[i]; t != nil {
			state.Title = value(t.Title)
			state.PagePill = value(t.PagePill)
			state.SectionSubtitle = value(t.SectionSubtitle)
		}
		fields[lang] = state
		saved[lang] = state.HasContent()
	}

	f.page = key
	f.fields = fields
	f.saved = saved
	f.active = f.locales.Initial(saved)
	return nil
}

func (f *Form) Page() string   { return f.page }
func (f *Form) Active() string { return f.active }

func (f *Form) Saved(lang string) bool { return f.saved[lang] }

// Fields returns a copy of the state for lang.
func (f *Form) Fields(lang string) Fields { return f.fields[lang] }

// Select switches the active locale. Edits of other locales are kept.
func (f *Form) Select(lang string) error {
	if f.page == "" {
		return ErrNotLoaded
	}
	if !f.locales.IsSupported(lang) {
		return fmt.Errorf("%w: %s", ErrUnknownLocale, lang)
	}
	f.active = lang
	return nil
}

// Set edits one field of the active locale.
func (f *Form) Set(field Field, v string) error {
	if f.page == "" {
		return ErrNotLoaded
	}
	state := f.fields[f.active]
	if err := state.set(field, v); err != nil {
		return err
	}
	f.fields[f.active] = state
	return nil
}

// Save writes the active locale. Both requests are always attempted and each
// failure is reported on its own; the locale is marked saved only when both
// succeed. There is no rollback of the first write.
func (f *Form) Save(ctx context.Context) error {
	if f.page == "" {
		return ErrNotLoaded
	}
	lang := f.active
	state := f.fields[lang]

	var errs []error
	err := f.backend.PutMetaDetail(ctx, MetaDetail{
		Page:        f.page,
		Locale:      lang,
		Title:       nullable(state.MetaTitle),
		Description: nullable(state.MetaDescription),
		Keywords:    nullable(state.MetaKeywords),
	})
	if err != nil {
		f.toast.Error("Meta details: " + messageOf(err))
		errs = append(errs, fmt.Errorf("save meta details: %w", err))
	}

	err = f.backend.PutPageTitle(ctx, PageTitle{
		Page:            f.page,
		Locale:          lang,
		Title:           nullable(state.Title),
		PagePill:        nullable(state.PagePill),
		SectionSubtitle: nullable(state.SectionSubtitle),
	})
	if err != nil {
		f.toast.Error("Page title: " + messageOf(err))
		errs = append(errs, fmt.Errorf("save page title: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	f.saved[lang] = true
	f.toast.Success(fmt.Sprintf("Saved %s (%s)", f.page, lang))
	return nil
}

// Delete removes both records of the active locale. Missing records count as deleted.
func (f *Form) Delete(ctx context.Context) error {
	if f.page == "" {
		return ErrNotLoaded
	}
	lang := f.active

	var errs []error
	if err := f.backend.DeleteMetaDetail(ctx, f.page, lang); err != nil && !IsNotFound(err) {
		f.toast.Error("Meta details: " + messageOf(err))
		errs = append(errs, fmt.Errorf("delete meta details: %w", err))
	}
	if err := f.backend.DeletePageTitle(ctx, f.page, lang); err != nil && !IsNotFound(err) {
		f.toast.Error("Page title: " + messageOf(err))
		errs = append(errs, fmt.Errorf("delete page title: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	f.fields[lang] = Fields{}
	f.saved[lang] = false
	f.toast.Success(fmt.Sprintf("Deleted %s (%s)", f.page, lang))
	return nil
}

// nullable maps blank input to JSON null.
func nullable(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// messageOf prefers the backend's own message over our wrapping.
func messageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
