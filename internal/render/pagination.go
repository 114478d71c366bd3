package render

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Pagination describes the position of one index page among its siblings.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
}

func (p *Pagination) context() pongo2.Context {
	return pongo2.Context{
		"current_page": p.CurrentPage,
		"total_pages":  p.TotalPages,
		"has_prev":     p.HasPrev,
		"has_next":     p.HasNext,
		"prev_url":     p.PrevURL,
		"next_url":     p.NextURL,
	}
}

// HTML renders the navigation block used by marker templates. A nil
// pagination renders as the empty string.
func (p *Pagination) HTML() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("<nav class=\"pagination\">\n")
	if p.HasPrev {
		fmt.Fprintf(&b, "  <a href=\"%s\" class=\"pagination-prev\">Previous</a>\n", p.PrevURL)
	}
	fmt.Fprintf(&b, "  <span class=\"pagination-info\">Page %d of %d</span>\n", p.CurrentPage, p.TotalPages)
	if p.HasNext {
		fmt.Fprintf(&b, "  <a href=\"%s\" class=\"pagination-next\">Next</a>\n", p.NextURL)
	}
	b.WriteString("</nav>")
	return b.String()
}
