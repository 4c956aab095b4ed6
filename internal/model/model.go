package model

import (
	"strings"
	"time"
)

// Kind discriminates the two content families.
type Kind string

const (
	KindBlog    Kind = "blog"
	KindProject Kind = "project"
)

// ParseKind accepts both the singular and plural forms used in URLs
// ("blog", "blogs", "project", "projects").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "blog", "blogs":
		return KindBlog, true
	case "project", "projects":
		return KindProject, true
	}
	return "", false
}

// ContentItem represents a single piece of content (e.g., blog post, project page).
type ContentItem struct {
	Kind    Kind     `json:"type" yaml:"type"`
	Slug    string   `json:"slug" yaml:"slug"`
	Title   string   `json:"title" yaml:"title"`
	Excerpt string   `json:"excerpt" yaml:"excerpt"`
	Tags    []string `json:"tags" yaml:"tags"`
	Date    string   `json:"date,omitempty" yaml:"date,omitempty"`
	Cover   string   `json:"cover,omitempty" yaml:"cover,omitempty"`
	Body    string   `json:"body" yaml:"body"`
}

var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// Epoch is the ordering time of items without a usable date.
var Epoch = time.Unix(0, 0).UTC()

// ParseDate parses an ISO-8601 date string. ok is false when the string is
// empty or matches none of the accepted formats.
func ParseDate(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Time is the item's date as used for ordering; missing or unparseable
// dates are Epoch.
func (c ContentItem) Time() time.Time {
	if t, ok := ParseDate(c.Date); ok {
		return t
	}
	return Epoch
}

// Permalink is the detail page path for the item.
func (c ContentItem) Permalink() string {
	if c.Kind == KindBlog {
		return "/posts/" + c.Slug
	}
	return "/projects/" + c.Slug
}

// HasTag reports exact, case-sensitive membership of tag.
func (c ContentItem) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContentResponse is the wire shape of the full collection.
type ContentResponse struct {
	Blogs    []ContentItem `json:"blogs" yaml:"blogs"`
	Projects []ContentItem `json:"projects" yaml:"projects"`
}

// All returns blogs followed by projects.
func (r ContentResponse) All() []ContentItem {
	items := make([]ContentItem, 0, len(r.Blogs)+len(r.Projects))
	items = append(items, r.Blogs...)
	return append(items, r.Projects...)
}
