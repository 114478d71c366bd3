package blog

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// IndexPage is one page of the blog listing.
type IndexPage struct {
	FileName   string
	Entries    []page.Metadata
	Pagination *render.Pagination
}

// PageFilename names page n of a listing whose first page is indexName:
// page 1 keeps the name, later pages become "{stem}-page-{n}.{ext}".
func PageFilename(indexName string, n int) string {
	if n <= 1 {
		return indexName
	}
	ext := filepath.Ext(indexName)
	stem := strings.TrimSuffix(indexName, ext)
	if stem == "" {
		stem = "index"
	}
	if ext == "" {
		ext = ".html"
	}
	return fmt.Sprintf("%s-page-%d%s", stem, n, ext)
}

// Paginate splits entries into index pages of at most perPage entries.
// With perPage <= 0 there is a single page without pagination. An empty
// paginated listing still yields page 1 of 1.
func Paginate(entries []page.Metadata, perPage int, indexName string) []IndexPage {
	if perPage <= 0 {
		return []IndexPage{{FileName: indexName, Entries: entries}}
	}

	total := max((len(entries)+perPage-1)/perPage, 1)
	pages := make([]IndexPage, 0, total)
	for n := 1; n <= total; n++ {
		lo := min((n-1)*perPage, len(entries))
		hi := min(n*perPage, len(entries))

		p := &render.Pagination{
			CurrentPage: n,
			TotalPages:  total,
			HasPrev:     n > 1,
			HasNext:     n < total,
		}
		if p.HasPrev {
			p.PrevURL = PageFilename(indexName, n-1)
		}
		if p.HasNext {
			p.NextURL = PageFilename(indexName, n+1)
		}
		pages = append(pages, IndexPage{
			FileName:   PageFilename(indexName, n),
			Entries:    entries[lo:hi],
			Pagination: p,
		})
	}
	return pages
}
