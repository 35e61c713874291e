package view

import (
	"html/template"
	"strings"
	"time"

	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/seo"
)

// Link 是已解析语言的链接。
type Link struct {
	Label string
	Href  string
}

type Metric struct {
	Value string
	Label string
}

type Card struct {
	Icon  template.HTML
	Title string
	Body  string
	Href  string
	Score string
}

type Section struct {
	Title    string
	Subtitle string
	Cards    []Card
	Bullets  []string
}

type Hero struct {
	Pill     string
	Title    string
	Subtitle string
	CTA      *Link
	Metrics  []Metric
}

// Page 是模板直接消费的页面数据，所有多语言文本均已解析为单一语言。
type Page struct {
	Slug      string
	Kind      string
	Hero      Hero
	Sections  []Section
	FAQ       []seo.QA
	Body      template.HTML
	Author    string
	Published string
}

// HeroOverride carries PageTitle values; nil fields keep the catalog copy.
type HeroOverride struct {
	Title    *string
	Pill     *string
	Subtitle *string
}

// Href turns a catalog link into a site path under lang. Absolute paths and
// external URLs are returned unchanged.
func Href(lang, href string) string {
	trimmed := strings.TrimSpace(href)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "/") || strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "mailto:") {
		return trimmed
	}
	return "/" + lang + "/" + strings.Trim(trimmed, "/")
}

// Resolve flattens page into lang, applying the hero override field by field.
func Resolve(page *content.Page, lang, fallback string, override *HeroOverride) (Page, error) {
	out := Page{
		Slug:   page.Slug,
		Kind:   page.Kind,
		Author: page.Author,
		Hero: Hero{
			Pill:     page.Hero.Pill.In(lang, fallback),
			Title:    page.Title(lang, fallback),
			Subtitle: page.Hero.Subtitle.In(lang, fallback),
		},
	}
	if override != nil {
		if override.Title != nil {
			out.Hero.Title = *override.Title
		}
		if override.Pill != nil {
			out.Hero.Pill = *override.Pill
		}
		if override.Subtitle != nil {
			out.Hero.Subtitle = *override.Subtitle
		}
	}
	if cta := page.Hero.CTA; cta != nil {
		out.Hero.CTA = &Link{Label: cta.Label.In(lang, fallback), Href: Href(lang, cta.Href)}
	}
	for _, metric := range page.Hero.Metrics {
		out.Hero.Metrics = append(out.Hero.Metrics, Metric{Value: metric.Value, Label: metric.Label.In(lang, fallback)})
	}

	for _, section := range page.Sections {
		resolved := Section{
			Title:    section.Title.In(lang, fallback),
			Subtitle: section.Subtitle.In(lang, fallback),
		}
		for _, card := range section.Cards {
			resolved.Cards = append(resolved.Cards, Card{
				Icon:  IconSVG(card.Icon),
				Title: card.Title.In(lang, fallback),
				Body:  card.Body.In(lang, fallback),
				Href:  Href(lang, card.Href),
				Score: card.Score,
			})
		}
		for _, bullet := range section.Bullets {
			if text := bullet.In(lang, fallback); text != "" {
				resolved.Bullets = append(resolved.Bullets, text)
			}
		}
		out.Sections = append(out.Sections, resolved)
	}

	for _, item := range page.FAQ {
		question := item.Question.In(lang, fallback)
		if question == "" {
			continue
		}
		out.FAQ = append(out.FAQ, seo.QA{Question: question, Answer: item.Answer.In(lang, fallback)})
	}

	if body := page.Body.In(lang, fallback); body != "" {
		rendered, err := content.RenderMarkdown(body)
		if err != nil {
			return Page{}, err
		}
		out.Body = rendered
	}
	if !page.Published.IsZero() {
		out.Published = page.Published.UTC().Format(time.DateOnly)
	}
	return out, nil
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Label    string
	Href     string
	HrefLang string
	Current  bool
}
