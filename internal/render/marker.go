package render

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

// Content markers delimit the replaceable region of a marker template.
const (
	StartMarker = "<!-- start_content -->"
	EndMarker   = "<!-- end_content -->"
)

// DefaultEntryTemplate renders one listing entry when an index template
// leaves the region between its markers blank.
const DefaultEntryTemplate = `<div class="post">
<h2><a href="$PAGE['file_name']">$PAGE['title']</a></h2>
<div class="post-date">$PAGE['publish_date']</div>
<p class="post-description">$PAGE['description']</p>
</div>`

var placeholderPattern = regexp.MustCompile(`\$PAGE\['([A-Za-z0-9_\-]+)'\]`)

// MarkerRenderer renders templates by splicing content between the content
// markers and substituting $PAGE['field'] placeholders.
type MarkerRenderer struct {
	site       SiteContext
	indexTitle string
}

// NewMarkerRenderer returns a marker renderer. indexTitle replaces
// $PAGE['title'] on index pages; when empty the site title is used.
func NewMarkerRenderer(site SiteContext, indexTitle string) *MarkerRenderer {
	if indexTitle == "" {
		indexTitle = site.Title
	}
	return &MarkerRenderer{site: site, indexTitle: indexTitle}
}

type markedTemplate struct {
	head, body, tail string
}

func splitMarkers(tpl Template) (markedTemplate, error) {
	if strings.Count(tpl.Source, StartMarker) != 1 || strings.Count(tpl.Source, EndMarker) != 1 {
		return markedTemplate{}, markerError(tpl)
	}
	start := strings.Index(tpl.Source, StartMarker) + len(StartMarker)
	end := strings.Index(tpl.Source, EndMarker)
	if end < start {
		return markedTemplate{}, markerError(tpl)
	}
	return markedTemplate{
		head: tpl.Source[:start],
		body: tpl.Source[start:end],
		tail: tpl.Source[end:],
	}, nil
}

// ValidateMarkers reports a missing_template_marker error unless tpl has
// exactly one start marker followed by exactly one end marker.
func ValidateMarkers(tpl Template) error {
	_, err := splitMarkers(tpl)
	return err
}

func markerError(tpl Template) error {
	return errors.MissingTemplateMarker("template needs exactly one " + StartMarker + " followed by one " + EndMarker).
		WithPath(tpl.Path).
		WithContext(errors.ContextTemplate, tpl.Name).
		Build()
}

// Substitute replaces every $PAGE['key'] placeholder whose key is in vars.
// Unknown placeholders are left untouched.
func Substitute(text string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[key]; ok {
			return v
		}
		return match
	})
}

// RenderPage places html between the markers and fills the placeholders of
// the surrounding template from meta.
func (r *MarkerRenderer) RenderPage(tpl Template, meta page.Metadata, html string) (string, error) {
	parts, err := splitMarkers(tpl)
	if err != nil {
		return "", err
	}
	vars := meta.Variables()
	return Substitute(parts.head, vars) + html + Substitute(parts.tail, vars), nil
}

// RenderIndex renders the region between the markers once per page and
// concatenates the results.
func (r *MarkerRenderer) RenderIndex(tpl Template, pages []page.Metadata, p *Pagination) (string, error) {
	parts, err := splitMarkers(tpl)
	if err != nil {
		return "", err
	}

	entry := strings.TrimSpace(parts.body)
	if entry == "" {
		entry = DefaultEntryTemplate
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, meta := range pages {
		b.WriteString(Substitute(entry, meta.Variables()))
		b.WriteString("\n")
	}

	vars := map[string]string{
		"title":       r.indexTitle,
		"description": r.site.Description,
		"url":         r.site.URL,
		"pagination":  p.HTML(),
	}
	return Substitute(parts.head, vars) + b.String() + Substitute(parts.tail, vars), nil
}
