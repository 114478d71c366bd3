package markdown

import "strings"

const (
	// CommentMarker opens an authoring comment that never reaches the output.
	CommentMarker = "$PAGE{"
	// TodoMarker flags unfinished content. Pages containing it are drafts.
	TodoMarker = "$PAGE{TODO"
)

// StripComments removes authoring comments. A line starting with the marker
// is dropped; an inline comment closed by '}' is cut out of its line.
func StripComments(content string) string {
	var b strings.Builder
	sc := NewScanner(content)
	for sc.Scan() {
		line := sc.Text()
		if !sc.InCode() {
			if strings.HasPrefix(strings.TrimSpace(line), CommentMarker) {
				continue
			}
			line = stripInlineComments(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func stripInlineComments(line string) string {
	offset := 0
	for {
		start := strings.Index(line[offset:], CommentMarker)
		if start < 0 {
			return line
		}
		start += offset
		end := strings.IndexByte(line[start:], '}')
		if end < 0 {
			return line
		}
		line = line[:start] + line[start+end+1:]
		offset = start
	}
}

// InjectHeadingIDs appends an explicit {#id} attribute to every heading
// outside code blocks. An existing trailing attribute block is replaced.
func InjectHeadingIDs(content string) string {
	var b strings.Builder
	sc := NewScanner(content)
	for sc.Scan() {
		line := sc.Text()
		if sc.Heading() > 0 {
			if id := AnchorID(HeadingText(line)); id != "" {
				line = withoutTrailingBlock(line) + "{#" + id + "}"
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func withoutTrailingBlock(line string) string {
	line = strings.TrimRight(line, " \t\r")
	if strings.HasSuffix(line, "}") {
		if i := strings.LastIndex(line, "{"); i > 0 {
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

// PrependTitle adds a level one heading with the page title.
func PrependTitle(content, title string) string {
	return "# " + title + "\n" + content
}

// HasTodo reports whether the raw body still contains an unresolved TODO marker.
func HasTodo(body string) bool {
	return strings.Contains(body, TodoMarker)
}
