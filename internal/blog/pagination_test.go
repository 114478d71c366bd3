package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

func TestPageFilename(t *testing.T) {
	assert.Equal(t, "index.html", PageFilename("index.html", 1))
	assert.Equal(t, "index-page-2.html", PageFilename("index.html", 2))
	assert.Equal(t, "blog-page-10.htm", PageFilename("blog.htm", 10))
}

func TestPaginate(t *testing.T) {
	entries := make([]page.Metadata, 5)
	pages := Paginate(entries, 2, "index.html")
	require.Len(t, pages, 3)

	assert.Len(t, pages[0].Entries, 2)
	assert.Len(t, pages[2].Entries, 1)

	p := pages[1].Pagination
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, "index.html", p.PrevURL)
	assert.Equal(t, "index-page-3.html", p.NextURL)

	assert.False(t, pages[0].Pagination.HasPrev)
	assert.Empty(t, pages[0].Pagination.PrevURL)
	assert.False(t, pages[2].Pagination.HasNext)
	assert.Empty(t, pages[2].Pagination.NextURL)
}

func TestPaginateUnlimited(t *testing.T) {
	pages := Paginate(make([]page.Metadata, 7), 0, "index.html")
	require.Len(t, pages, 1)
	assert.Nil(t, pages[0].Pagination)
	assert.Len(t, pages[0].Entries, 7)
}

func TestPaginateEmpty(t *testing.T) {
	pages := Paginate(nil, 3, "index.html")
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Pagination.TotalPages)
	assert.Empty(t, pages[0].Entries)
}
