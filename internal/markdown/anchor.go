package markdown

import (
	"regexp"
	"strings"
)

var nonAnchorChars = regexp.MustCompile(`[^a-zA-Z0-9\s]+`)

// HeadingLevel returns the number of leading '#' of an ATX heading line
// (1 to 6), or 0 for any other line.
func HeadingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level < len(trimmed) && trimmed[level] != ' ' && trimmed[level] != '\t' {
		return 0
	}
	return level
}

// HeadingText returns the trimmed text after the '#' run of a heading line.
func HeadingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// HeadingTitle returns the visible heading text, without a trailing attribute block.
func HeadingTitle(line string) string {
	return cutAttributes(HeadingText(line))
}

// AnchorID derives the element id for a heading's text. Everything from the
// last '{' on is ignored, so an annotated heading yields the same id as the
// bare one. Heading id injection and the table of contents both go through
// here, so their anchors match.
func AnchorID(text string) string {
	id := nonAnchorChars.ReplaceAllString(cutAttributes(text), "")
	return strings.ToLower(strings.ReplaceAll(id, " ", "-"))
}

func cutAttributes(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.LastIndex(text, "{"); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	return text
}
