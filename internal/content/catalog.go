package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

var ErrDuplicateSlug = errors.New("duplicate page slug")

// Industry is an "industries we serve" card used to seed the database.
type Industry struct {
	Slug        string    `yaml:"slug"`
	Icon        string    `yaml:"icon"`
	SortOrder   int       `yaml:"sort_order"`
	Title       Localized `yaml:"title"`
	Description Localized `yaml:"description"`
}

// Catalog is the read-only set of marketing pages, built once at startup.
type Catalog struct {
	fallback   string
	pages      map[string]*Page
	slugs      []string
	industries []Industry
}

type pagesFile struct {
	Pages []Page `yaml:"pages"`
}

type blogFile struct {
	Index Page   `yaml:"index"`
	Posts []Page `yaml:"posts"`
}

type gatewaysFile struct {
	Index     Page          `yaml:"index"`
	Template  GeneratedCopy `yaml:"template"`
	Countries []Country     `yaml:"countries"`
}

type companiesFile struct {
	Index     Page          `yaml:"index"`
	Template  GeneratedCopy `yaml:"template"`
	Companies []Company     `yaml:"companies"`
}

type industriesFile struct {
	Industries []Industry `yaml:"industries"`
}

// Default loads the catalog shipped with the binary.
func Default(fallback string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback)
}

// Load reads pages.yaml, blog.yaml, gateways.yaml, companies.yaml and
// industries.yaml from fsys. Missing files are skipped.
func Load(fsys fs.FS, fallback string) (*Catalog, error) {
	c := &Catalog{fallback: fallback, pages: map[string]*Page{}}

	var pages pagesFile
	if err := decodeFile(fsys, "pages.yaml", &pages); err != nil {
		return nil, err
	}
	for i := range pages.Pages {
		if err := c.add(pages.Pages[i]); err != nil {
			return nil, err
		}
	}

	var blog blogFile
	if err := decodeFile(fsys, "blog.yaml", &blog); err != nil {
		return nil, err
	}
	if err := c.addBlog(blog); err != nil {
		return nil, err
	}

	var gateways gatewaysFile
	if err := decodeFile(fsys, "gateways.yaml", &gateways); err != nil {
		return nil, err
	}
	if err := c.addGateways(gateways); err != nil {
		return nil, err
	}

	var companies companiesFile
	if err := decodeFile(fsys, "companies.yaml", &companies); err != nil {
		return nil, err
	}
	if err := c.addCompanies(companies); err != nil {
		return nil, err
	}

	var industries industriesFile
	if err := decodeFile(fsys, "industries.yaml", &industries); err != nil {
		return nil, err
	}
	c.industries = industries.Industries

	sort.Strings(c.slugs)
	return c, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) add(page Page) error {
	page.Slug = NormalizeSlug(page.Slug)
	if page.Kind == "" {
		page.Kind = KindStatic
	}
	if page.Slug == "" && page.Kind != KindHome {
		return fmt.Errorf("page of kind %q has no slug", page.Kind)
	}
	if _, exists := c.pages[page.Slug]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSlug, page.Slug)
	}
	stored := page
	c.pages[page.Slug] = &stored
	c.slugs = append(c.slugs, page.Slug)
	return nil
}

func (c *Catalog) addBlog(file blogFile) error {
	if len(file.Posts) == 0 {
		return nil
	}
	posts := slices.Clone(file.Posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})

	index := file.Index
	index.Slug = BlogPrefix
	index.Kind = KindIndex
	cards := make([]Card, 0, len(posts))
	for _, post := range posts {
		post.Slug = BlogPrefix + "/" + NormalizeSlug(post.Slug)
		post.Kind = KindBlog
		post.Parent = BlogPrefix
		if err := c.add(post); err != nil {
			return err
		}
		cards = append(cards, Card{
			Icon:  "book-open",
			Title: post.Hero.Title,
			Body:  post.Meta.Description,
			Href:  post.Slug,
		})
	}
	index.Sections = append([]Section{{Cards: cards}}, index.Sections...)
	return c.add(index)
}

func (c *Catalog) addGateways(file gatewaysFile) error {
	if len(file.Countries) == 0 {
		return nil
	}
	index := file.Index
	index.Slug = GatewaysPrefix
	index.Kind = KindIndex
	cards := make([]Card, 0, len(file.Countries))
	for _, country := range file.Countries {
		page, err := gatewayPage(file.Template, country, c.fallback)
		if err != nil {
			return fmt.Errorf("gateway page: %w", err)
		}
		if err := c.add(page); err != nil {
			return err
		}
		cards = append(cards, Card{
			Icon:  "globe",
			Title: country.Name,
			Body:  Text(fmt.Sprintf("%d · %s", len(country.Gateways), country.Currency)),
			Href:  page.Slug,
		})
	}
	index.Sections = append([]Section{{Cards: cards}}, index.Sections...)
	return c.add(index)
}

func (c *Catalog) addCompanies(file companiesFile) error {
	if len(file.Companies) == 0 {
		return nil
	}
	index := file.Index
	index.Slug = CompaniesPrefix
	index.Kind = KindIndex
	cards := make([]Card, 0, len(file.Companies))
	for _, company := range file.Companies {
		page, err := companyPage(file.Template, company)
		if err != nil {
			return fmt.Errorf("company page: %w", err)
		}
		if err := c.add(page); err != nil {
			return err
		}
		cards = append(cards, Card{
			Icon:  "building",
			Title: Text(company.Name),
			Body:  company.Summary,
			Href:  page.Slug,
			Score: company.TrustScore,
		})
	}
	index.Sections = append([]Section{{Cards: cards}}, index.Sections...)
	return c.add(index)
}

// NormalizeSlug lowercases a slug and strips surrounding slashes.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(slug), "/"))
}

// Page looks a page up by slug. The home page has the empty slug.
func (c *Catalog) Page(slug string) (*Page, bool) {
	page, ok := c.pages[NormalizeSlug(slug)]
	return page, ok
}

// Slugs returns every page slug in lexical order.
func (c *Catalog) Slugs() []string {
	return slices.Clone(c.slugs)
}

// Pages returns every page ordered by slug.
func (c *Catalog) Pages() []*Page {
	out := make([]*Page, 0, len(c.slugs))
	for _, slug := range c.slugs {
		out = append(out, c.pages[slug])
	}
	return out
}

// Industries returns the industry cards used for seeding.
func (c *Catalog) Industries() []Industry {
	return slices.Clone(c.industries)
}

// DefaultLocale is the locale untranslated copy falls back to.
func (c *Catalog) DefaultLocale() string {
	return c.fallback
}

// AdminKey maps a slug to the key admin records are stored under.
// The home page is stored as "home".
func AdminKey(slug string) string {
	if normalized := NormalizeSlug(slug); normalized != "" {
		return normalized
	}
	return "home"
}
