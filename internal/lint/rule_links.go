package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// BrokenLinkRule reports relative links and images whose target does not
// exist next to the page. A link to X.html is satisfied by X.md.
type BrokenLinkRule struct{}

func (r *BrokenLinkRule) Name() string { return "broken-link" }

func (r *BrokenLinkRule) AppliesTo(f *File) bool { return f.Kind == KindPage && f.Doc != nil }

func (r *BrokenLinkRule) Check(f *File) ([]Issue, error) {
	var issues []Issue
	base := filepath.Dir(f.Path)
	for _, link := range markdown.ExtractLinks([]byte(f.Doc.Body)) {
		target, ok := localTarget(link.Destination)
		if !ok || targetExists(filepath.Join(base, filepath.FromSlash(target))) {
			continue
		}
		severity := SeverityWarning
		if link.Kind == markdown.LinkKindImage {
			severity = SeverityError
		}
		issues = append(issues, Issue{
			FilePath: f.Path,
			Severity: severity,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Broken %s link to %s", link.Kind, link.Destination),
			Fix:      "Fix the path or add the missing file",
			Line:     lineOf(f.Data, []byte(link.Destination)),
		})
	}
	return issues, nil
}

// localTarget strips fragment and query from a relative destination.
// External, absolute and fragment-only destinations are not local.
func localTarget(dest string) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") ||
		strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return "", false
	}
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	return dest, dest != ""
}

func targetExists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	if filepath.Ext(path) == ".html" {
		_, err := os.Stat(strings.TrimSuffix(path, ".html") + ".md")
		return err == nil
	}
	return false
}
