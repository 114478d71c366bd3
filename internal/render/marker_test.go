package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

func testSite() SiteContext {
	return SiteContext{Title: "My Site", URL: "https://example.com", Description: "A site", CurrentYear: 2024}
}

func markerTemplate(src string) Template {
	return Template{Name: "index.html", Path: "templates/main/index.html", Source: src}
}

func TestMarkerRenderPage(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "")
	tpl := markerTemplate("<title>$PAGE['title']</title><main><!-- start_content -->placeholder<!-- end_content --></main><footer>$PAGE['author']</footer>")
	meta := page.Metadata{Title: "Hello", Custom: map[string]string{"author": "Ada"}}

	out, err := r.RenderPage(tpl, meta, "<p>$PAGE['title']</p>")
	require.NoError(t, err)
	assert.Equal(t, "<title>Hello</title><main><!-- start_content --><p>$PAGE['title']</p><!-- end_content --></main><footer>Ada</footer>", out)
}

func TestMarkerRenderPageLeavesUnknownPlaceholders(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "")
	tpl := markerTemplate("$PAGE['nope']<!-- start_content --><!-- end_content -->")

	out, err := r.RenderPage(tpl, page.Metadata{Title: "x"}, "body")
	require.NoError(t, err)
	assert.Equal(t, "$PAGE['nope']<!-- start_content -->body<!-- end_content -->", out)
}

func TestMarkerValidation(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "")
	cases := map[string]string{
		"no markers":      "<html></html>",
		"only start":      "<!-- start_content -->",
		"reversed":        "<!-- end_content --><!-- start_content -->",
		"duplicate start": "<!-- start_content --><!-- start_content --><!-- end_content -->",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.RenderPage(markerTemplate(src), page.Metadata{}, "")
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryMissingTemplateMarker))

			_, err = r.RenderIndex(markerTemplate(src), nil, nil)
			assert.True(t, errors.HasCategory(err, errors.CategoryMissingTemplateMarker))
		})
	}
}

func TestMarkerRenderIndexUsesSpanAsEntryTemplate(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "Blog")
	tpl := markerTemplate("<h1>$PAGE['title']</h1><!-- start_content -->\n  <li>$PAGE['title'] ($PAGE['publish_date'])</li>\n<!-- end_content -->$PAGE['pagination']")
	pages := []page.Metadata{
		{Title: "B", PublishDate: "2024-02-01"},
		{Title: "A", PublishDate: "2024-01-01"},
	}

	out, err := r.RenderIndex(tpl, pages, nil)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Blog</h1><!-- start_content -->\n<li>B (2024-02-01)</li>\n<li>A (2024-01-01)</li>\n<!-- end_content -->", out)
}

func TestMarkerRenderIndexDefaultEntry(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "")
	tpl := markerTemplate("<h1>$PAGE['title']</h1><!-- start_content -->  <!-- end_content -->")
	pages := []page.Metadata{{Title: "Post", PublishDate: "2024-01-01", FileName: "post.html", Description: "About"}}

	out, err := r.RenderIndex(tpl, pages, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>My Site</h1>")
	assert.Contains(t, out, `<h2><a href="post.html">Post</a></h2>`)
	assert.Contains(t, out, `<div class="post-date">2024-01-01</div>`)
	assert.Contains(t, out, `<p class="post-description">About</p>`)
}

func TestPaginationHTML(t *testing.T) {
	var none *Pagination
	assert.Empty(t, none.HTML())

	middle := &Pagination{CurrentPage: 2, TotalPages: 3, HasPrev: true, HasNext: true, PrevURL: "index.html", NextURL: "index-page-3.html"}
	assert.Equal(t, "<nav class=\"pagination\">\n"+
		"  <a href=\"index.html\" class=\"pagination-prev\">Previous</a>\n"+
		"  <span class=\"pagination-info\">Page 2 of 3</span>\n"+
		"  <a href=\"index-page-3.html\" class=\"pagination-next\">Next</a>\n"+
		"</nav>", middle.HTML())

	first := &Pagination{CurrentPage: 1, TotalPages: 1}
	assert.Equal(t, "<nav class=\"pagination\">\n  <span class=\"pagination-info\">Page 1 of 1</span>\n</nav>", first.HTML())
}

func TestMarkerRenderIndexPagination(t *testing.T) {
	r := NewMarkerRenderer(testSite(), "")
	tpl := markerTemplate("<!-- start_content --><!-- end_content -->$PAGE['pagination']")
	p := &Pagination{CurrentPage: 1, TotalPages: 2, HasNext: true, NextURL: "index-page-2.html"}

	out, err := r.RenderIndex(tpl, nil, p)
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="index-page-2.html" class="pagination-next">Next</a>`)
	assert.NotContains(t, out, "pagination-prev")
}
