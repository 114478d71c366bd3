package markdown

import "strings"

const fenceMarker = "```"

// Scanner walks markdown content line by line and tracks whether the
// current line belongs to a fenced code block. Fence lines themselves
// count as code.
type Scanner struct {
	lines  []string
	pos    int
	inCode bool
	code   bool
}

// NewScanner splits content into lines. A trailing newline does not
// produce an extra empty line.
func NewScanner(content string) *Scanner {
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	return &Scanner{lines: lines, pos: -1}
}

// Scan advances to the next line.
func (s *Scanner) Scan() bool {
	s.pos++
	if s.pos >= len(s.lines) {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(s.lines[s.pos]), fenceMarker) {
		s.inCode = !s.inCode
		s.code = true
		return true
	}
	s.code = s.inCode
	return true
}

// Text returns the current line without its newline.
func (s *Scanner) Text() string {
	return s.lines[s.pos]
}

// InCode reports whether the current line is a fence line or lies inside a fenced block.
func (s *Scanner) InCode() bool {
	return s.code
}

// Heading reports the ATX heading level of the current line, or 0 when the
// line is not a heading or is code.
func (s *Scanner) Heading() int {
	if s.code {
		return 0
	}
	return HeadingLevel(s.Text())
}
