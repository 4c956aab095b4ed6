package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/showcase/internal/listing"
)

func withListOpts(t *testing.T, set func()) {
	t.Helper()
	saved := listOpts
	t.Cleanup(func() { listOpts = saved })
	listOpts.query, listOpts.kind, listOpts.tag, listOpts.sort = "", "", "", ""
	listOpts.visible = listing.PageSize
	set()
}

func TestListStateFromFlags(t *testing.T) {
	withListOpts(t, func() {
		listOpts.query = "next"
		listOpts.kind = "blog"
		listOpts.tag = "nextjs"
		listOpts.sort = "az"
		listOpts.visible = 7
	})

	s, err := listStateFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "next", s.Query)
	assert.Equal(t, listing.TypeBlog, s.Type)
	assert.Equal(t, "nextjs", s.Tag)
	assert.Equal(t, listing.SortAlphabetical, s.Sort)
	assert.Equal(t, 2*listing.PageSize, s.Visible)
}

func TestListStateFromFlagsDefaults(t *testing.T) {
	withListOpts(t, func() {})

	s, err := listStateFromFlags()
	require.NoError(t, err)
	assert.Equal(t, listing.DefaultViewState(), s)
}

func TestListStateFromFlagsInvalid(t *testing.T) {
	withListOpts(t, func() { listOpts.kind = "video" })
	_, err := listStateFromFlags()
	assert.ErrorContains(t, err, "invalid type")

	withListOpts(t, func() { listOpts.sort = "random" })
	_, err = listStateFromFlags()
	assert.ErrorContains(t, err, "invalid sort")
}
