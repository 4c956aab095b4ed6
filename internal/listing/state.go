// Package listing derives the homepage listing from a content collection:
// the tag set, the filtered and sorted results and the visible window.
// Every function here is pure; view transitions go through Reduce.
package listing

import (
	"strconv"
	"strings"

	"github.com/Bitlatte/showcase/internal/model"
)

// PageSize is how many items one "load more" reveals.
const PageSize = 6

// AllTags is the tag filter value that disables tag filtering.
const AllTags = "all"

type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeBlog    TypeFilter = TypeFilter(model.KindBlog)
	TypeProject TypeFilter = TypeFilter(model.KindProject)
)

// ParseTypeFilter recognizes "all", "blog" and "project". Anything else is
// reported as not ok so callers can fall back to TypeAll.
func ParseTypeFilter(s string) (TypeFilter, bool) {
	switch TypeFilter(s) {
	case TypeAll, TypeBlog, TypeProject:
		return TypeFilter(s), true
	}
	return TypeAll, false
}

type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// ParseSortOrder accepts the three orders plus "az" as an alias for
// alphabetical.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(s) {
	case "newest":
		return SortNewest, true
	case "oldest":
		return SortOldest, true
	case "alphabetical", "az", "a-z":
		return SortAlphabetical, true
	}
	return SortNewest, false
}

// ViewState is the set of user-controlled listing parameters.
type ViewState struct {
	Query   string     `json:"query"`
	Type    TypeFilter `json:"type"`
	Tag     string     `json:"tag"`
	Sort    SortOrder  `json:"sort"`
	Visible int        `json:"visible"`
}

func DefaultViewState() ViewState {
	return ViewState{
		Query:   "",
		Type:    TypeAll,
		Tag:     AllTags,
		Sort:    SortNewest,
		Visible: PageSize,
	}
}

// FromParams reads a view state from query parameters. Unknown type and sort
// values are ignored and a non-positive or malformed visible count falls
// back to PageSize.
func FromParams(get func(string) string) ViewState {
	s := DefaultViewState()
	s.Query = get("q")
	if t, ok := ParseTypeFilter(get("type")); ok {
		s.Type = t
	}
	if tag := get("tag"); tag != "" {
		s.Tag = tag
	}
	if o, ok := ParseSortOrder(get("sort")); ok {
		s.Sort = o
	}
	if v, err := strconv.Atoi(get("visible")); err == nil && v > 0 {
		s.Visible = v
	}
	return s
}

// Values is the inverse of FromParams; defaults are omitted.
func (s ViewState) Values() map[string]string {
	out := map[string]string{}
	if s.Query != "" {
		out["q"] = s.Query
	}
	if s.Type != TypeAll {
		out["type"] = string(s.Type)
	}
	if s.Tag != AllTags {
		out["tag"] = s.Tag
	}
	if s.Sort != SortNewest {
		out["sort"] = string(s.Sort)
	}
	if s.Visible != PageSize {
		out["visible"] = strconv.Itoa(s.Visible)
	}
	return out
}
