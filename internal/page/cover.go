package page

import (
	"path"
	"regexp"
	"strings"
)

var urlScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ResolveCover returns the cover image path for a page. Absolute URLs are
// kept; relative paths live in the page's asset folder, named after the
// output file without extension. Pages without a cover get fallback.
func ResolveCover(cover, fileName, fallback string) string {
	if cover == "" {
		return fallback
	}
	if urlScheme.MatchString(cover) {
		return cover
	}
	stem := strings.TrimSuffix(fileName, path.Ext(fileName))
	return path.Join(stem, cover)
}
