package model

import "html/template"

const placeholderCover = "/placeholder.svg?height=240&width=800&query=Cover%20image"

// PageData is what the detail layouts render.
type PageData struct {
	SiteTitle string
	PageTitle string
	BaseURL   string
	Item      ContentItem
	Content   template.HTML
	Date      string
	Cover     string
	Label     string
}

// NewPageData fills the display fields for item, substituting a placeholder
// cover and a readable date.
func NewPageData(siteTitle, baseURL string, item ContentItem, content template.HTML) PageData {
	return PageData{
		SiteTitle: siteTitle,
		PageTitle: item.Title,
		BaseURL:   baseURL,
		Item:      item,
		Content:   content,
		Date:      FormatDate(item.Date),
		Cover:     CoverOrPlaceholder(item.Cover),
		Label:     ActionLabel(item.Kind),
	}
}

// FormatDate renders an ISO date as "Aug 20, 2025". Unparseable input is
// returned unchanged.
func FormatDate(d string) string {
	if d == "" {
		return ""
	}
	t, ok := ParseDate(d)
	if !ok {
		return d
	}
	return t.Format("Jan 2, 2006")
}

func CoverOrPlaceholder(cover string) string {
	if cover == "" {
		return placeholderCover
	}
	return cover
}

// ActionLabel is the call to action shown on cards.
func ActionLabel(k Kind) string {
	if k == KindBlog {
		return "Read post"
	}
	return "View project"
}
