// Package site renders the HTML pages: the listing homepage, item detail
// pages and the not-found page.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/markdown"
	"github.com/Bitlatte/showcase/internal/model"
)

//go:embed layouts
var layoutsFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the stylesheet and other assets served under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

const (
	homeLayout     = "home.html"
	singleLayout   = "single.html"
	notFoundLayout = "notfound.html"
)

// Pages holds one template set per page layout, each built on base.html
// and the partials.
type Pages struct {
	siteTitle string
	baseURL   string
	renderer  *markdown.Renderer
	templates map[string]*template.Template
}

func NewPages(siteTitle, baseURL string, renderer *markdown.Renderer) (*Pages, error) {
	base, err := template.ParseFS(layoutsFS, "layouts/base.html", "layouts/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base.html and partials: %w", err)
	}

	p := &Pages{
		siteTitle: siteTitle,
		baseURL:   baseURL,
		renderer:  renderer,
		templates: make(map[string]*template.Template),
	}
	for _, name := range []string{homeLayout, singleLayout, notFoundLayout} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(layoutsFS, "layouts/"+name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		p.templates[name] = clone
	}
	return p, nil
}

func (p *Pages) execute(w io.Writer, layout string, data any) error {
	if err := p.templates[layout].ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", layout, err)
	}
	return nil
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type tagChip struct {
	Name   string
	URL    string
	Active bool
}

type card struct {
	Item  model.ContentItem
	URL   string
	Cover string
	Date  string
	Label string
}

type totals struct {
	Blogs    int
	Projects int
	Tags     int
}

type homeData struct {
	SiteTitle   string
	PageTitle   string
	BaseURL     string
	State       listing.ViewState
	Totals      totals
	Tags        []tagChip
	TypeOptions []option
	SortOptions []option
	Cards       []card
	Total       int
	LoadMoreURL string
}

// StateURL is the homepage link that reproduces s.
func (p *Pages) StateURL(s listing.ViewState) string {
	q := url.Values{}
	for k, v := range s.Values() {
		q.Set(k, v)
	}
	if len(q) == 0 {
		return p.baseURL + "/"
	}
	return p.baseURL + "/?" + q.Encode()
}

func (p *Pages) card(item model.ContentItem) card {
	return card{
		Item:  item,
		URL:   p.baseURL + item.Permalink(),
		Cover: model.CoverOrPlaceholder(item.Cover),
		Date:  model.FormatDate(item.Date),
		Label: model.ActionLabel(item.Kind),
	}
}

// Home renders the listing page for res. c supplies the blog and project
// totals.
func (p *Pages) Home(w io.Writer, c model.ContentResponse, res listing.Result) error {
	s := res.State
	data := homeData{
		SiteTitle: p.siteTitle,
		BaseURL:   p.baseURL,
		State:     s,
		Totals:    totals{Blogs: len(c.Blogs), Projects: len(c.Projects), Tags: len(res.Tags)},
		TypeOptions: []option{
			{Value: string(listing.TypeAll), Label: "All", Selected: s.Type == listing.TypeAll},
			{Value: string(listing.TypeBlog), Label: "Blogs", Selected: s.Type == listing.TypeBlog},
			{Value: string(listing.TypeProject), Label: "Projects", Selected: s.Type == listing.TypeProject},
		},
		SortOptions: []option{
			{Value: string(listing.SortNewest), Label: "Newest", Selected: s.Sort == listing.SortNewest},
			{Value: string(listing.SortOldest), Label: "Oldest", Selected: s.Sort == listing.SortOldest},
			{Value: string(listing.SortAlphabetical), Label: "A–Z", Selected: s.Sort == listing.SortAlphabetical},
		},
		Total: res.Total,
	}
	for _, t := range res.Tags {
		data.Tags = append(data.Tags, tagChip{
			Name:   t,
			URL:    p.StateURL(listing.ToggleTag(s, t)),
			Active: s.Tag == t,
		})
	}
	for _, item := range res.Visible {
		data.Cards = append(data.Cards, p.card(item))
	}
	if res.HasMore {
		data.LoadMoreURL = p.StateURL(listing.Reduce(s, listing.LoadMore{}))
	}
	return p.execute(w, homeLayout, data)
}

// Detail renders item with its Markdown body.
func (p *Pages) Detail(w io.Writer, item model.ContentItem) error {
	html, err := p.renderer.Render(item.Body)
	if err != nil {
		return err
	}
	return p.execute(w, singleLayout, model.NewPageData(p.siteTitle, p.baseURL, item, html))
}

type notFoundData struct {
	SiteTitle string
	PageTitle string
	BaseURL   string
	Message   string
}

func (p *Pages) NotFound(w io.Writer, message string) error {
	return p.execute(w, notFoundLayout, notFoundData{
		SiteTitle: p.siteTitle,
		PageTitle: "Not found",
		BaseURL:   p.baseURL,
		Message:   message,
	})
}
