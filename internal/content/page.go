package content

import "time"

// Page kinds.
const (
	KindHome    = "home"
	KindPricing = "pricing"
	KindFeature = "feature"
	KindGateway = "gateway"
	KindCompany = "company"
	KindBlog    = "blog"
	KindIndex   = "index"
	KindStatic  = "static"
)

// Page is one renderable marketing page. Every page, hand-written or generated,
// goes through the same template set.
type Page struct {
	Slug      string    `yaml:"slug"`
	Kind      string    `yaml:"kind"`
	Parent    string    `yaml:"parent"`
	Meta      Meta      `yaml:"meta"`
	Hero      Hero      `yaml:"hero"`
	Sections  []Section `yaml:"sections"`
	FAQ       []FAQ     `yaml:"faq"`
	Body      Localized `yaml:"body"`
	Author    string    `yaml:"author"`
	Published time.Time `yaml:"published"`
	Image     string    `yaml:"image"`
}

// Meta holds the catalog's default SEO copy; admin MetaDetail records override it.
type Meta struct {
	Title       Localized `yaml:"title"`
	Description Localized `yaml:"description"`
	Keywords    Localized `yaml:"keywords"`
}

// Hero is the top-of-page block; admin PageTitle records override its copy.
type Hero struct {
	Pill     Localized `yaml:"pill"`
	Title    Localized `yaml:"title"`
	Subtitle Localized `yaml:"subtitle"`
	CTA      *Link     `yaml:"cta"`
	Metrics  []Metric  `yaml:"metrics"`
}

type Link struct {
	Label Localized `yaml:"label"`
	Href  string    `yaml:"href"`
}

type Metric struct {
	Value string    `yaml:"value"`
	Label Localized `yaml:"label"`
}

// Section is a titled grid of cards or bullets.
type Section struct {
	Title    Localized   `yaml:"title"`
	Subtitle Localized   `yaml:"subtitle"`
	Cards    []Card      `yaml:"cards"`
	Bullets  []Localized `yaml:"bullets"`
}

type Card struct {
	Icon  string    `yaml:"icon"`
	Title Localized `yaml:"title"`
	Body  Localized `yaml:"body"`
	Href  string    `yaml:"href"`
	Score string    `yaml:"score"`
}

type FAQ struct {
	Question Localized `yaml:"question"`
	Answer   Localized `yaml:"answer"`
}

// Title returns the best human title for the page in lang.
func (p *Page) Title(lang, fallback string) string {
	if title := p.Hero.Title.In(lang, fallback); title != "" {
		return title
	}
	return p.Meta.Title.In(lang, fallback)
}
