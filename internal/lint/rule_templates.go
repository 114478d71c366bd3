package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/blog"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// TemplateMarkerRule reports marker templates without a valid pair of
// content markers. Templates shadowed by a .jinja sibling in engine mode are
// not rendered with markers and are skipped.
type TemplateMarkerRule struct{}

func (r *TemplateMarkerRule) Name() string { return "template-markers" }

func (r *TemplateMarkerRule) AppliesTo(f *File) bool {
	if f.Kind != KindTemplate || filepath.Ext(f.Path) == render.EngineSuffix {
		return false
	}
	if f.Engine {
		if _, err := os.Stat(f.Path + render.EngineSuffix); err == nil {
			return false
		}
	}
	return true
}

func (r *TemplateMarkerRule) Check(f *File) ([]Issue, error) {
	tpl := render.Template{Name: filepath.Base(f.Path), Path: f.Path, Source: string(f.Data)}
	if err := render.ValidateMarkers(tpl); err != nil {
		return []Issue{{
			FilePath:    f.Path,
			Severity:    SeverityError,
			Rule:        r.Name(),
			Message:     "Template does not have exactly one content marker pair",
			Explanation: "Marker templates need one " + render.StartMarker + " followed by one " + render.EndMarker + ".",
			Fix:         "Add the markers, or provide a .jinja template and enable the templating engine",
		}}, nil
	}
	return nil, nil
}

// ManifestRule checks the blog manifest entries.
type ManifestRule struct{}

func (r *ManifestRule) Name() string { return "blog-manifest" }

func (r *ManifestRule) AppliesTo(f *File) bool { return f.Kind == KindManifest }

func (r *ManifestRule) Check(f *File) ([]Issue, error) {
	docs, err := blog.LoadManifest(f.Path)
	if err != nil {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  err.Error(),
			Fix:      "Every entry needs a title; the file must be a YAML map with an entries list",
		}}, nil
	}
	var issues []Issue
	for i, doc := range docs {
		if doc.Meta.PublishDate == "" {
			continue
		}
		if _, err := time.Parse(page.DateLayout, doc.Meta.PublishDate); err != nil {
			issues = append(issues, Issue{
				FilePath: f.Path,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("entry %d (%s): publish_date %q is not a YYYY-MM-DD date", i, doc.Meta.Title, doc.Meta.PublishDate),
			})
		}
	}
	return issues, nil
}
