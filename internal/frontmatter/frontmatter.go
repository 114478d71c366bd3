package frontmatter

import (
	"bytes"

	sberrors "git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// Split separates the metadata block from the markdown body.
//
// The block ends at the first line made only of three or more dashes. A
// document that opens with such a line (the `---` fenced style) has that
// line skipped and is closed by the next dashed line instead. CRLF line
// endings are accepted. A document without a closing line yields a
// missing_frontmatter error.
func Split(content []byte) (metadata []byte, body []byte, err error) {
	start := 0
	pos := 0
	for pos <= len(content) {
		end := bytes.IndexByte(content[pos:], '\n')
		next := len(content) + 1
		line := content[pos:]
		if end >= 0 {
			line = content[pos : pos+end]
			next = pos + end + 1
		}

		if isDelimiter(line) {
			if pos == 0 {
				start = next
			} else {
				bodyStart := min(next, len(content))
				return content[start:pos], content[bodyStart:], nil
			}
		}
		pos = next
	}

	return nil, nil, sberrors.MissingFrontmatter("no metadata delimiter line (---) found").Build()
}

func isDelimiter(line []byte) bool {
	line = bytes.TrimRight(line, "\r")
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	for _, c := range trimmed {
		if c != '-' {
			return false
		}
	}
	return true
}
