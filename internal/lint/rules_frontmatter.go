package lint

import (
	"bytes"
	"fmt"
	"time"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

// FrontmatterRule reports pages whose frontmatter cannot be split or decoded.
type FrontmatterRule struct{}

func (r *FrontmatterRule) Name() string { return "frontmatter" }

func (r *FrontmatterRule) AppliesTo(f *File) bool { return f.Kind == KindPage }

func (r *FrontmatterRule) Check(f *File) ([]Issue, error) {
	if f.ParseErr == nil {
		return nil, nil
	}
	issue := Issue{
		FilePath: f.Path,
		Severity: SeverityError,
		Rule:     r.Name(),
		Message:  f.ParseErr.Error(),
	}
	switch {
	case errors.HasCategory(f.ParseErr, errors.CategoryMissingFrontmatter):
		issue.Explanation = "Pages start with a YAML metadata block closed by a line of three or more dashes."
		issue.Fix = "Add a metadata block with at least a title, followed by ---"
	case errors.HasCategory(f.ParseErr, errors.CategoryMalformedMetadata):
		issue.Explanation = "The metadata block must be valid YAML and carry a non-empty title."
		issue.Fix = "Correct the YAML and make sure title is set"
	}
	return []Issue{issue}, nil
}

// PublishDateRule reports invalid publish dates and pages scheduled in the future.
type PublishDateRule struct {
	now func() time.Time
}

func (r *PublishDateRule) Name() string { return "publish-date" }

func (r *PublishDateRule) AppliesTo(f *File) bool { return f.Kind == KindPage && f.Doc != nil }

func (r *PublishDateRule) Check(f *File) ([]Issue, error) {
	date := f.Doc.Meta.PublishDate
	if date == "" {
		return nil, nil
	}
	if _, err := time.Parse(page.DateLayout, date); err != nil {
		return []Issue{{
			FilePath: f.Path,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("publish_date %q is not a YYYY-MM-DD date", date),
			Fix:      "Use the form 2024-05-04",
			Line:     lineOf(f.Data, []byte("publish_date")),
		}}, nil
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	if date > now().Format(page.DateLayout) {
		return []Issue{{
			FilePath:    f.Path,
			Severity:    SeverityInfo,
			Rule:        r.Name(),
			Message:     fmt.Sprintf("publish_date %s is in the future", date),
			Explanation: "The page is treated as a draft until its publish date.",
		}}, nil
	}
	return nil, nil
}

// TodoMarkerRule reports pages that will be published as drafts because of
// an unresolved TODO marker.
type TodoMarkerRule struct{}

func (r *TodoMarkerRule) Name() string { return "todo-marker" }

func (r *TodoMarkerRule) AppliesTo(f *File) bool { return f.Kind == KindPage && f.Doc != nil }

func (r *TodoMarkerRule) Check(f *File) ([]Issue, error) {
	if !markdown.HasTodo(f.Doc.Body) || f.Doc.Meta.IsDraft {
		return nil, nil
	}
	return []Issue{{
		FilePath:    f.Path,
		Severity:    SeverityWarning,
		Rule:        r.Name(),
		Message:     "Page contains a TODO marker",
		Explanation: "Pages with " + markdown.TodoMarker + " markers are built as drafts.",
		Fix:         "Resolve the TODO and remove the marker",
		Line:        lineOf(f.Data, []byte(markdown.TodoMarker)),
	}}, nil
}

// FingerprintRule verifies a stored content fingerprint against the page.
// Pages without a fingerprint field are not checked.
type FingerprintRule struct{}

func (r *FingerprintRule) Name() string { return "fingerprint" }

func (r *FingerprintRule) AppliesTo(f *File) bool { return f.Kind == KindPage && f.Doc != nil }

func (r *FingerprintRule) Check(f *File) ([]Issue, error) {
	stored, ok := f.Doc.Meta.Custom[mdfp.FingerprintField]
	if !ok {
		return nil, nil
	}
	want, err := page.Fingerprint(f.Doc.Frontmatter, f.Doc.Body)
	if err != nil {
		return nil, fmt.Errorf("fingerprint %s: %w", f.Path, err)
	}
	if stored == want {
		return nil, nil
	}
	return []Issue{{
		FilePath:    f.Path,
		Severity:    SeverityWarning,
		Rule:        r.Name(),
		Message:     "Stored fingerprint does not match the page content",
		Explanation: "The content changed after the fingerprint was recorded.",
		Fix:         "Set " + mdfp.FingerprintField + ": " + want,
		Line:        lineOf(f.Data, []byte(mdfp.FingerprintField+":")),
	}}, nil
}

// lineOf returns the 1-based line of the first occurrence of needle, or 0.
func lineOf(data, needle []byte) int {
	idx := bytes.Index(data, needle)
	if idx < 0 {
		return 0
	}
	return bytes.Count(data[:idx], []byte("\n")) + 1
}
