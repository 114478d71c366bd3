package render

import (
	"sync"

	"github.com/flosch/pongo2/v6"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

var disableAutoescape sync.Once

// EngineRenderer evaluates pongo2 templates. Templates not loaded from a
// .jinja file are handed to the marker renderer.
type EngineRenderer struct {
	set      *pongo2.TemplateSet
	site     SiteContext
	fallback *MarkerRenderer

	mu       sync.Mutex
	compiled map[string]*pongo2.Template
}

// NewEngineRenderer creates an engine renderer whose includes resolve
// against templateDir.
func NewEngineRenderer(templateDir string, site SiteContext, fallback *MarkerRenderer) (*EngineRenderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(templateDir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "template directory is not usable").
			Fatal().
			WithPath(templateDir).
			Build()
	}

	// Content and table of contents are HTML and are emitted verbatim.
	disableAutoescape.Do(func() { pongo2.SetAutoescape(false) })

	if fallback == nil {
		fallback = NewMarkerRenderer(site, "")
	}
	return &EngineRenderer{
		set:      pongo2.NewSet("sitebuilder", loader),
		site:     site,
		fallback: fallback,
		compiled: make(map[string]*pongo2.Template),
	}, nil
}

func (r *EngineRenderer) compile(tpl Template) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.compiled[tpl.Path]; ok {
		return c, nil
	}
	c, err := r.set.FromFile(tpl.Path)
	if err != nil {
		return nil, renderError(tpl, "template does not compile", err)
	}
	r.compiled[tpl.Path] = c
	return c, nil
}

func renderError(tpl Template, message string, err error) error {
	return errors.WrapError(err, errors.CategoryRender, message).
		Fatal().
		WithPath(tpl.Path).
		WithContext(errors.ContextTemplate, tpl.Name).
		Build()
}

// RenderPage renders a page with the context keys site, page and content.
func (r *EngineRenderer) RenderPage(tpl Template, meta page.Metadata, html string) (string, error) {
	if !tpl.Engine {
		return r.fallback.RenderPage(tpl, meta, html)
	}
	c, err := r.compile(tpl)
	if err != nil {
		return "", err
	}
	out, err := c.Execute(pongo2.Context{
		"site":    r.site.context(),
		"page":    pageContext(meta),
		"content": html,
	})
	if err != nil {
		return "", renderError(tpl, "template execution failed", err)
	}
	return out, nil
}

// RenderIndex renders a listing with the context keys site, articles and
// pagination. pagination is nil for unpaginated listings.
func (r *EngineRenderer) RenderIndex(tpl Template, pages []page.Metadata, p *Pagination) (string, error) {
	if !tpl.Engine {
		return r.fallback.RenderIndex(tpl, pages, p)
	}
	c, err := r.compile(tpl)
	if err != nil {
		return "", err
	}
	ctx := pongo2.Context{
		"site":       r.site.context(),
		"articles":   articlesContext(pages),
		"pagination": nil,
	}
	if p != nil {
		ctx["pagination"] = p.context()
	}
	out, err := c.Execute(ctx)
	if err != nil {
		return "", renderError(tpl, "template execution failed", err)
	}
	return out, nil
}
