package page

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// tocBaseDepth is the heading level rendered without nesting. Level one
// headings are the page title and sit above the table of contents.
const tocBaseDepth = 2

// TableOfContents builds a nested HTML list linking every heading outside
// fenced code. Returns "" when there are no headings.
func TableOfContents(content string) string {
	var toc strings.Builder
	depth := tocBaseDepth
	first := true

	sc := markdown.NewScanner(content)
	for sc.Scan() {
		level := sc.Heading()
		if level == 0 {
			continue
		}

		switch {
		case first:
			for d := depth; d < level; d++ {
				toc.WriteString("<ul>\n")
			}
		case level > depth:
			for d := depth; d < level; d++ {
				toc.WriteString("\n<ul>")
			}
			toc.WriteString("\n")
		case level < depth:
			for d := depth; d > level; d-- {
				toc.WriteString("\n</ul>")
			}
			toc.WriteString("\n")
		default:
			toc.WriteString("</li>\n")
		}
		first = false
		depth = level

		line := sc.Text()
		fmt.Fprintf(&toc, `<li><a href="#%s" class="table_of_contents-indent-%d">%s</a>`,
			markdown.AnchorID(markdown.HeadingText(line)), level, markdown.HeadingTitle(line))
	}
	if first {
		return ""
	}

	for ; depth > tocBaseDepth; depth-- {
		toc.WriteString("</ul>\n")
	}
	return "<ul class=\"table_of_contents\">\n" + toc.String() + "</ul>"
}
