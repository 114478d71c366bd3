package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner_TracksFencedCode(t *testing.T) {
	sc := NewScanner("intro\n```go\n# not a heading\n```\n## Real\n")

	type line struct {
		text    string
		inCode  bool
		heading int
	}
	var got []line
	for sc.Scan() {
		got = append(got, line{sc.Text(), sc.InCode(), sc.Heading()})
	}

	assert.Equal(t, []line{
		{"intro", false, 0},
		{"```go", true, 0},
		{"# not a heading", true, 0},
		{"```", true, 0},
		{"## Real", false, 2},
	}, got)
}

func TestScanner_Empty(t *testing.T) {
	assert.False(t, NewScanner("").Scan())
}

func TestHeadingLevel(t *testing.T) {
	cases := map[string]int{
		"# Title":        1,
		"  ### Indented": 3,
		"######":         6,
		"####### Seven":  0,
		"#hashtag":       0,
		"plain":          0,
		"":               0,
	}
	for in, want := range cases {
		assert.Equal(t, want, HeadingLevel(in), in)
	}
}
