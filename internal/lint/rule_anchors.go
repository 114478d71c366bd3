package lint

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// DuplicateAnchorRule reports headings that produce the same anchor id, which
// makes table-of-contents links ambiguous.
type DuplicateAnchorRule struct {
	renderer *markdown.Renderer
}

func (r *DuplicateAnchorRule) Name() string { return "duplicate-anchor" }

func (r *DuplicateAnchorRule) AppliesTo(f *File) bool { return f.Kind == KindPage && f.Doc != nil }

func (r *DuplicateAnchorRule) Check(f *File) ([]Issue, error) {
	if r.renderer == nil {
		r.renderer = markdown.NewRenderer()
	}
	out, err := r.renderer.Render(markdown.InjectHeadingIDs(markdown.StripComments(f.Doc.Body)))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Path, err)
	}
	ids, err := elementIDs(out)
	if err != nil {
		return nil, fmt.Errorf("parse rendered %s: %w", f.Path, err)
	}

	seen := make(map[string]int, len(ids))
	var issues []Issue
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			issues = append(issues, Issue{
				FilePath:    f.Path,
				Severity:    SeverityWarning,
				Rule:        r.Name(),
				Message:     fmt.Sprintf("Anchor #%s is used by more than one heading", id),
				Explanation: "Links to this anchor always jump to the first heading.",
				Fix:         "Rename one of the headings",
			})
		}
	}
	return issues, nil
}

func elementIDs(fragment string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	var ids []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val != "" {
					ids = append(ids, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return ids, nil
}
