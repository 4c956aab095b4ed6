package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/showcase/internal/content"
	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/model"
)

func sampleItems() []model.ContentItem {
	return content.Sample().All()
}

func titles(items []model.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func slugs(items []model.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Slug
	}
	return out
}

func TestTagsDeduplicatedAndSorted(t *testing.T) {
	items := []model.ContentItem{
		{Tags: []string{"b", "a"}},
		{Tags: []string{"a", "c"}},
	}
	assert.Equal(t, []string{"a", "b", "c"}, listing.Tags(items))
	assert.Empty(t, listing.Tags(nil))
}

func TestTagsOfSample(t *testing.T) {
	tags := listing.Tags(sampleItems())
	assert.Equal(t, []string{
		"api", "app", "content", "crud", "data", "guide", "images", "markdown",
		"nextjs", "routing", "swr", "tailwind", "theme", "tooling", "typescript", "website",
	}, tags)
}

func TestMatchesRules(t *testing.T) {
	item := model.ContentItem{Kind: model.KindBlog, Title: "Dark Mode with Tailwind", Tags: []string{"tailwind", "Theme"}}
	s := listing.DefaultViewState()

	assert.True(t, listing.Matches(item, s), "empty query matches everything")

	s.Type = listing.TypeProject
	assert.False(t, listing.Matches(item, s))
	s.Type = listing.TypeBlog
	assert.True(t, listing.Matches(item, s))

	s.Query = "MODE"
	assert.True(t, listing.Matches(item, s), "title match is case-insensitive")
	s.Query = "THEM"
	assert.True(t, listing.Matches(item, s), "tag substring match is case-insensitive")
	s.Query = "wind mode"
	assert.False(t, listing.Matches(item, s), "query is a single substring, not tokens")

	s.Query = ""
	s.Tag = "Theme"
	assert.True(t, listing.Matches(item, s))
	s.Tag = "theme"
	assert.False(t, listing.Matches(item, s), "tag filter is case-sensitive")
	s.Tag = "tail"
	assert.False(t, listing.Matches(item, s), "tag filter is exact membership")
}

func TestFilterIsMonotonicallyNarrowing(t *testing.T) {
	items := sampleItems()
	s := listing.DefaultViewState()
	all := listing.Filter(items, s)
	assert.Len(t, all, len(items))

	steps := []listing.Action{
		listing.SetType{Type: listing.TypeProject},
		listing.SetTag{Tag: "app"},
		listing.SetQuery{Query: "task"},
	}
	prev := all
	for _, a := range steps {
		s = listing.Reduce(s, a)
		next := listing.Filter(items, s)
		assert.LessOrEqual(t, len(next), len(prev))
		for _, item := range next {
			assert.Contains(t, slugs(prev), item.Slug)
		}
		prev = next
	}
	assert.Equal(t, []string{"task-tracker"}, slugs(prev))
}

func TestSortNewestOldest(t *testing.T) {
	items := []model.ContentItem{
		{Slug: "mid", Date: "2025-08-10"},
		{Slug: "none"},
		{Slug: "new", Date: "2025-08-20"},
		{Slug: "old", Date: "2025-08-01"},
	}
	assert.Equal(t, []string{"new", "mid", "old", "none"}, slugs(listing.Sort(items, listing.SortNewest)))
	assert.Equal(t, []string{"none", "old", "mid", "new"}, slugs(listing.Sort(items, listing.SortOldest)))
}

func TestSortUndatedCountsAsEpoch(t *testing.T) {
	items := []model.ContentItem{
		{Slug: "none"},
		{Slug: "y1960", Date: "1960-05-01"},
		{Slug: "bad", Date: "someday"},
		{Slug: "y1980", Date: "1980-01-01"},
	}
	assert.Equal(t, []string{"y1980", "none", "bad", "y1960"}, slugs(listing.Sort(items, listing.SortNewest)))
	assert.Equal(t, []string{"y1960", "none", "bad", "y1980"}, slugs(listing.Sort(items, listing.SortOldest)))
}

func TestSortIsStable(t *testing.T) {
	items := []model.ContentItem{
		{Slug: "a", Date: "2025-08-10"},
		{Slug: "b", Date: "2025-08-10"},
		{Slug: "x"},
		{Slug: "c", Date: "2025-08-10"},
		{Slug: "y"},
	}
	assert.Equal(t, []string{"a", "b", "c", "x", "y"}, slugs(listing.Sort(items, listing.SortNewest)))
	assert.Equal(t, []string{"x", "y", "a", "b", "c"}, slugs(listing.Sort(items, listing.SortOldest)))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := []model.ContentItem{{Slug: "old", Date: "2025-01-01"}, {Slug: "new", Date: "2025-02-01"}}
	sorted := listing.Sort(items, listing.SortNewest)
	assert.Equal(t, []string{"new", "old"}, slugs(sorted))
	assert.Equal(t, []string{"old", "new"}, slugs(items))
}

func TestSortAlphabeticalIsLocaleAware(t *testing.T) {
	items := []model.ContentItem{
		{Title: "zebra"},
		{Title: "Éclair"},
		{Title: "apple"},
		{Title: "Banana"},
	}
	assert.Equal(t, []string{"apple", "Banana", "Éclair", "zebra"}, titles(listing.Sort(items, listing.SortAlphabetical)))
}

func TestWindowClamps(t *testing.T) {
	items := sampleItems()
	for _, visible := range []int{-3, 0, 1, 6, 10, 12, 100} {
		want := visible
		if want < 0 {
			want = 0
		}
		if want > len(items) {
			want = len(items)
		}
		assert.Len(t, listing.Window(items, visible), want, "visible=%d", visible)
	}
}

func TestRunBlogsNewest(t *testing.T) {
	s := listing.Reduce(listing.DefaultViewState(), listing.SetType{Type: listing.TypeBlog})
	res := listing.Run(sampleItems(), s)

	require.Equal(t, 5, res.Total)
	assert.Equal(t, []string{
		"Routing with the App Router",
		"SWR for Fast Data Fetching",
		"Markdown Basics for Posts",
		"Dark Mode with Tailwind",
		"Getting Started with the Showcase",
	}, titles(res.Results))
	assert.Equal(t, "2025-08-20", res.Results[0].Date)
	assert.False(t, res.HasMore)
}

func TestRunQueryDark(t *testing.T) {
	res := listing.Run(sampleItems(), listing.Reduce(listing.DefaultViewState(), listing.SetQuery{Query: "dark"}))
	assert.Equal(t, []string{"Dark Mode with Tailwind"}, titles(res.Results))
}

func TestRunTagNextjs(t *testing.T) {
	res := listing.Run(sampleItems(), listing.Reduce(listing.DefaultViewState(), listing.SetTag{Tag: "nextjs"}))
	assert.ElementsMatch(t, []string{"Getting Started with the Showcase", "Routing with the App Router"}, titles(res.Results))

	res = listing.Run(sampleItems(), listing.Reduce(listing.DefaultViewState(), listing.SetTag{Tag: "NextJS"}))
	assert.Zero(t, res.Total)
}

func TestRunVisibleWindowAndLoadMore(t *testing.T) {
	items := sampleItems()
	s := listing.DefaultViewState()

	res := listing.Run(items, s)
	assert.Len(t, res.Visible, 6)
	assert.Equal(t, 10, res.Total)
	assert.True(t, res.HasMore)
	assert.Equal(t, "Image Optimizer", res.Visible[0].Title)

	s = listing.Reduce(s, listing.LoadMore{})
	res = listing.Run(items, s)
	assert.Equal(t, 12, s.Visible)
	assert.Len(t, res.Visible, 10)
	assert.False(t, res.HasMore)
	assert.Len(t, res.Tags, 16)
}
