package content

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GatewaysPrefix  = "payment-gateways"
	CompaniesPrefix = "mlm-company-analysis"
	BlogPrefix      = "blog"
)

// Country lists the payment gateways the software integrates with in one market.
type Country struct {
	Slug     string    `yaml:"slug"`
	Name     Localized `yaml:"name"`
	Currency string    `yaml:"currency"`
	Gateways []Gateway `yaml:"gateways"`
}

type Gateway struct {
	Name        string    `yaml:"name"`
	Description Localized `yaml:"description"`
	Methods     []string  `yaml:"methods"`
}

// Company is an MLM company profiled on an analysis page.
type Company struct {
	Slug         string    `yaml:"slug"`
	Name         string    `yaml:"name"`
	Founded      int       `yaml:"founded"`
	Headquarters string    `yaml:"headquarters"`
	Revenue      string    `yaml:"revenue"`
	Plan         string    `yaml:"plan"`
	TrustScore   string    `yaml:"trust_score"`
	Summary      Localized `yaml:"summary"`
	Products     []string  `yaml:"products"`
}

// GeneratedCopy is the copy shared by every generated page of one family.
// Placeholders in braces are substituted per country or company.
type GeneratedCopy struct {
	Meta      Meta                 `yaml:"meta"`
	Hero      Hero                 `yaml:"hero"`
	ListTitle Localized            `yaml:"list_title"`
	Sections  []Section            `yaml:"sections"`
	FAQ       []FAQ                `yaml:"faq"`
	Labels    map[string]Localized `yaml:"labels"`
}

func gatewayPage(tpl GeneratedCopy, country Country, fallback string) (Page, error) {
	slug := strings.Trim(strings.TrimSpace(country.Slug), "/")
	if slug == "" {
		return Page{}, fmt.Errorf("country without slug")
	}
	names := country.Name
	if names.IsZero() {
		names = Text(slug)
	}
	extra := map[string]string{
		"currency": country.Currency,
		"count":    strconv.Itoa(len(country.Gateways)),
	}
	fill := func(text Localized) Localized {
		return formatWithName(text, "country", names, fallback, extra)
	}

	page := Page{
		Slug:   GatewaysPrefix + "/" + slug,
		Kind:   KindGateway,
		Parent: GatewaysPrefix,
	}

	cards := make([]Card, 0, len(country.Gateways))
	for _, gw := range country.Gateways {
		cards = append(cards, Card{Icon: "credit-card", Title: Text(gw.Name), Body: gatewayBody(gw)})
	}

	page.Meta, page.Hero, page.Sections, page.FAQ = instantiate(tpl, fill)
	page.Sections = append([]Section{{Title: fill(tpl.ListTitle), Cards: cards}}, page.Sections...)
	return page, nil
}

func gatewayBody(gw Gateway) Localized {
	body := make(Localized, len(gw.Description)+1)
	for lang, text := range gw.Description {
		body[lang] = text
	}
	if len(gw.Methods) == 0 {
		return body
	}
	methods := strings.Join(gw.Methods, ", ")
	if body.IsZero() {
		body[anyLocale] = methods
		return body
	}
	for lang, text := range body {
		body[lang] = text + " (" + methods + ")"
	}
	return body
}

func companyPage(tpl GeneratedCopy, company Company) (Page, error) {
	slug := strings.Trim(strings.TrimSpace(company.Slug), "/")
	if slug == "" {
		return Page{}, fmt.Errorf("company without slug")
	}
	name := company.Name
	if name == "" {
		name = slug
	}
	replacements := map[string]string{
		"company":      name,
		"founded":      strconv.Itoa(company.Founded),
		"headquarters": company.Headquarters,
		"revenue":      company.Revenue,
		"plan":         company.Plan,
		"trust_score":  company.TrustScore,
	}

	page := Page{
		Slug:   CompaniesPrefix + "/" + slug,
		Kind:   KindCompany,
		Parent: CompaniesPrefix,
		Body:   company.Summary,
	}
	page.Meta, page.Hero, page.Sections, page.FAQ = instantiate(tpl, func(text Localized) Localized {
		return text.Format(replacements)
	})
	page.Hero.Metrics = []Metric{
		{Value: replacements["founded"], Label: tpl.Labels["founded"]},
		{Value: company.Revenue, Label: tpl.Labels["revenue"]},
		{Value: company.TrustScore, Label: tpl.Labels["trust_score"]},
	}
	if len(company.Products) > 0 {
		bullets := make([]Localized, 0, len(company.Products))
		for _, product := range company.Products {
			bullets = append(bullets, Text(product))
		}
		page.Sections = append(page.Sections, Section{Title: tpl.Labels["products"], Bullets: bullets})
	}
	return page, nil
}

// formatWithName substitutes {key} with name written in the same locale as
// each text variant, plus the locale-independent extra values.
func formatWithName(text Localized, key string, name Localized, fallback string, extra map[string]string) Localized {
	if text == nil {
		return nil
	}
	out := make(Localized, len(text))
	for lang, value := range text {
		nameLang := lang
		if lang == anyLocale {
			nameLang = fallback
		}
		replacements := map[string]string{key: name.In(nameLang, fallback)}
		for k, v := range extra {
			replacements[k] = v
		}
		out[lang] = Localized{lang: value}.Format(replacements)[lang]
	}
	return out
}

func instantiate(tpl GeneratedCopy, fill func(Localized) Localized) (Meta, Hero, []Section, []FAQ) {
	meta := Meta{
		Title:       fill(tpl.Meta.Title),
		Description: fill(tpl.Meta.Description),
		Keywords:    fill(tpl.Meta.Keywords),
	}
	hero := Hero{
		Pill:     fill(tpl.Hero.Pill),
		Title:    fill(tpl.Hero.Title),
		Subtitle: fill(tpl.Hero.Subtitle),
		Metrics:  append([]Metric(nil), tpl.Hero.Metrics...),
	}
	if tpl.Hero.CTA != nil {
		cta := Link{Label: fill(tpl.Hero.CTA.Label), Href: tpl.Hero.CTA.Href}
		hero.CTA = &cta
	}

	sections := make([]Section, 0, len(tpl.Sections))
	for _, section := range tpl.Sections {
		copied := Section{Title: fill(section.Title), Subtitle: fill(section.Subtitle)}
		for _, card := range section.Cards {
			copied.Cards = append(copied.Cards, Card{
				Icon:  card.Icon,
				Title: fill(card.Title),
				Body:  fill(card.Body),
				Href:  card.Href,
				Score: card.Score,
			})
		}
		for _, bullet := range section.Bullets {
			copied.Bullets = append(copied.Bullets, fill(bullet))
		}
		sections = append(sections, copied)
	}

	faq := make([]FAQ, 0, len(tpl.FAQ))
	for _, item := range tpl.FAQ {
		faq = append(faq, FAQ{Question: fill(item.Question), Answer: fill(item.Answer)})
	}
	return meta, hero, sections, faq
}
