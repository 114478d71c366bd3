package page

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// DescriptionLength is the character budget of a derived description.
const DescriptionLength = 150

var inlineLink = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)

// Describe derives a plain-text description from page content. Headings are
// skipped and links reduced to their text; text beyond limit is cut at the
// last word boundary and marked with an ellipsis.
func Describe(content string, limit int) string {
	var buf strings.Builder
	sc := markdown.NewScanner(content)
	for sc.Scan() {
		if sc.Heading() > 0 {
			continue
		}
		buf.WriteString(inlineLink.ReplaceAllString(sc.Text(), "$1"))
		buf.WriteByte('\n')
		if utf8.RuneCountInString(buf.String()) >= limit {
			break
		}
	}
	return markdown.PlainText(truncate(buf.String(), limit))
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
