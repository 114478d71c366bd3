package render

import (
	"time"

	"github.com/flosch/pongo2/v6"

	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

// SiteContext holds the site-wide values available to every template.
type SiteContext struct {
	Title       string
	URL         string
	Description string
	CurrentYear int
}

// NewSiteContext builds the site context, stamping the year from now.
func NewSiteContext(title, url, description string, now time.Time) SiteContext {
	return SiteContext{
		Title:       title,
		URL:         url,
		Description: description,
		CurrentYear: now.Year(),
	}
}

func (s SiteContext) context() pongo2.Context {
	return pongo2.Context{
		"title":        s.Title,
		"url":          s.URL,
		"description":  s.Description,
		"current_year": s.CurrentYear,
	}
}

func pageContext(meta page.Metadata) pongo2.Context {
	vars := meta.Variables()
	ctx := make(pongo2.Context, len(vars))
	for k, v := range vars {
		ctx[k] = v
	}
	return ctx
}

func articlesContext(pages []page.Metadata) []pongo2.Context {
	articles := make([]pongo2.Context, 0, len(pages))
	for _, p := range pages {
		articles = append(articles, pageContext(p))
	}
	return articles
}
