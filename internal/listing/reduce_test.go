package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/showcase/internal/model"
)

func TestFilterChangesResetVisible(t *testing.T) {
	changes := []Action{
		SetQuery{Query: "x"},
		SetType{Type: TypeProject},
		SetTag{Tag: "tailwind"},
		SetSort{Sort: SortOldest},
	}
	for _, a := range changes {
		for _, prior := range []int{0, 6, 12, 42} {
			s := DefaultViewState()
			s.Visible = prior
			got := Reduce(s, a)
			assert.Equal(t, PageSize, got.Visible, "%T from %d", a, prior)
			assert.Equal(t, got, Reduce(got, a), "%T reset is idempotent", a)
		}
	}
}

func TestLoadMoreIsUncapped(t *testing.T) {
	s := DefaultViewState()
	for i := 0; i < 5; i++ {
		s = Reduce(s, LoadMore{})
	}
	assert.Equal(t, 6*PageSize, s.Visible)
}

func TestReset(t *testing.T) {
	s := ViewState{Query: "x", Type: TypeProject, Tag: "tailwind", Sort: SortAlphabetical, Visible: 12}
	assert.Equal(t, DefaultViewState(), Reduce(s, Reset{}))
	assert.Equal(t, ViewState{Query: "", Type: TypeAll, Tag: AllTags, Sort: SortNewest, Visible: 6}, DefaultViewState())
}

func TestReduceLeavesInputUntouched(t *testing.T) {
	s := DefaultViewState()
	_ = Reduce(s, SetQuery{Query: "go"})
	assert.Equal(t, DefaultViewState(), s)
	assert.Equal(t, s, Reduce(s, nil))
}

func TestToggleTag(t *testing.T) {
	s := ToggleTag(DefaultViewState(), "go")
	assert.Equal(t, "go", s.Tag)
	s = ToggleTag(s, "go")
	assert.Equal(t, AllTags, s.Tag)
}

func TestParseTypeFilter(t *testing.T) {
	for _, in := range []string{"all", "blog", "project"} {
		got, ok := ParseTypeFilter(in)
		assert.True(t, ok)
		assert.Equal(t, TypeFilter(in), got)
	}
	got, ok := ParseTypeFilter("blogs")
	assert.False(t, ok)
	assert.Equal(t, TypeAll, got)
}

func TestParseSortOrder(t *testing.T) {
	got, ok := ParseSortOrder("az")
	assert.True(t, ok)
	assert.Equal(t, SortAlphabetical, got)

	_, ok = ParseSortOrder("random")
	assert.False(t, ok)
}

func TestFromParamsRoundTrip(t *testing.T) {
	q := url.Values{}
	q.Set("type", "nonsense")
	q.Set("visible", "-1")
	assert.Equal(t, DefaultViewState(), FromParams(q.Get), "unrecognized values fall back to defaults")

	want := ViewState{Query: "dark", Type: TypeBlog, Tag: "theme", Sort: SortOldest, Visible: 18}
	q = url.Values{}
	for k, v := range want.Values() {
		q.Set(k, v)
	}
	assert.Equal(t, want, FromParams(q.Get))
	assert.Empty(t, DefaultViewState().Values())
}

func TestRunnerMemoizesPerGeneration(t *testing.T) {
	r, err := NewRunner(4)
	require.NoError(t, err)

	items := []model.ContentItem{{Kind: model.KindBlog, Slug: "a", Title: "A"}}
	s := DefaultViewState()

	first := r.Run(1, items, s)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 1, r.Len())

	// Same generation: cached result even if the caller passes other items.
	again := r.Run(1, nil, s)
	assert.Equal(t, 1, again.Total)

	// New generation: recomputed.
	fresh := r.Run(2, nil, s)
	assert.Equal(t, 0, fresh.Total)
	assert.Equal(t, 2, r.Len())

	r.Purge()
	assert.Equal(t, 0, r.Len())
}

type countingObserver struct{ hits, misses int }

func (o *countingObserver) CacheHit()  { o.hits++ }
func (o *countingObserver) CacheMiss() { o.misses++ }

func TestRunnerReportsCacheLookups(t *testing.T) {
	obs := &countingObserver{}
	r, err := NewRunner(4, WithObserver(obs))
	require.NoError(t, err)

	s := DefaultViewState()
	r.Run(1, nil, s)
	r.Run(1, nil, s)
	r.Run(1, nil, Reduce(s, LoadMore{}))

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 2, obs.misses)
}
