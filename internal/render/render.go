package render

import (
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

// Renderer produces finished HTML documents from templates.
type Renderer interface {
	// RenderPage renders a single page whose body is already HTML.
	RenderPage(tpl Template, meta page.Metadata, html string) (string, error)
	// RenderIndex renders a listing of pages. p is nil for unpaginated listings.
	RenderIndex(tpl Template, pages []page.Metadata, p *Pagination) (string, error)
}

// Options configures a renderer.
type Options struct {
	Site SiteContext
	// IndexTitle overrides the site title on index pages.
	IndexTitle string
	// TemplateDir resolves engine includes.
	TemplateDir string
}

// New returns the renderer for the run: an EngineRenderer when engine is
// set, a MarkerRenderer otherwise.
func New(engine bool, opts Options) (Renderer, error) {
	marker := NewMarkerRenderer(opts.Site, opts.IndexTitle)
	if !engine {
		return marker, nil
	}
	return NewEngineRenderer(opts.TemplateDir, opts.Site, marker)
}
