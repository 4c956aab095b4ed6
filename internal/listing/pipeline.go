package listing

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Bitlatte/showcase/internal/model"
)

// Tags returns every distinct tag across items in ascending order.
func Tags(items []model.ContentItem) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, t := range item.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Matches reports whether item passes the type, query and tag filters of s.
// Query matching is case-insensitive over title and tags; the tag filter is
// an exact, case-sensitive membership test.
func Matches(item model.ContentItem, s ViewState) bool {
	typeOk := s.Type == TypeAll || s.Type == "" || TypeFilter(item.Kind) == s.Type
	tagOk := s.Tag == AllTags || s.Tag == "" || item.HasTag(s.Tag)
	return typeOk && matchesQuery(item, strings.ToLower(s.Query)) && tagOk
}

func matchesQuery(item model.ContentItem, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	for _, t := range item.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Filter keeps the items that match s, preserving input order.
func Filter(items []model.ContentItem, s ViewState) []model.ContentItem {
	out := make([]model.ContentItem, 0, len(items))
	for _, item := range items {
		if Matches(item, s) {
			out = append(out, item)
		}
	}
	return out
}

// Sort returns a stably sorted copy of items. Items without a usable date
// order as model.Epoch (1970-01-01).
func Sort(items []model.ContentItem, order SortOrder) []model.ContentItem {
	out := slices.Clone(items)
	if out == nil {
		out = []model.ContentItem{}
	}

	switch order {
	case SortAlphabetical:
		// A Collator keeps scratch buffers, so each call gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b model.ContentItem) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b model.ContentItem) int {
			return a.Time().Compare(b.Time())
		})
	default:
		slices.SortStableFunc(out, func(a, b model.ContentItem) int {
			return b.Time().Compare(a.Time())
		})
	}
	return out
}

// Window returns the first visible items, clamped to the slice bounds.
func Window(items []model.ContentItem, visible int) []model.ContentItem {
	if visible < 0 {
		visible = 0
	}
	if visible > len(items) {
		visible = len(items)
	}
	return items[:visible]
}

// Result is everything the listing view renders.
type Result struct {
	State   ViewState           `json:"state" yaml:"state"`
	Tags    []string            `json:"tags" yaml:"tags"`
	Results []model.ContentItem `json:"-" yaml:"-"`
	Visible []model.ContentItem `json:"items" yaml:"items"`
	Total   int                 `json:"total" yaml:"total"`
	HasMore bool                `json:"hasMore" yaml:"hasMore"`
}

// Run composes Tags, Filter, Sort and Window.
func Run(items []model.ContentItem, s ViewState) Result {
	sorted := Sort(Filter(items, s), s.Sort)
	visible := Window(sorted, s.Visible)
	return Result{
		State:   s,
		Tags:    Tags(items),
		Results: sorted,
		Visible: visible,
		Total:   len(sorted),
		HasMore: len(visible) < len(sorted),
	}
}
