package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	t.Run("full line and inline comments", func(t *testing.T) {
		in := "$PAGE{comment}\n        content\n        some content$PAGE{comment}"
		assert.Equal(t, "        content\n        some content\n", StripComments(in))
	})

	t.Run("several inline comments on one line", func(t *testing.T) {
		assert.Equal(t, "a  b  c\n", StripComments("a $PAGE{x} b $PAGE{y} c"))
	})

	t.Run("unclosed inline comment is kept", func(t *testing.T) {
		assert.Equal(t, "a $PAGE{x\n", StripComments("a $PAGE{x"))
	})

	t.Run("code blocks are copied through", func(t *testing.T) {
		in := "before\n```\n$PAGE{kept}\n```\nafter\n"
		assert.Equal(t, in, StripComments(in))
	})

	t.Run("todo markers are comments too", func(t *testing.T) {
		assert.Equal(t, "Text \n", StripComments("Text $PAGE{TODO: finish}\n$PAGE{TODO}\n"))
	})
}

func TestInjectHeadingIDs(t *testing.T) {
	in := "## Getting Started\ntext\n```\n# comment\n```\n### Install {#custom}\n#hashtag\n"
	want := "## Getting Started{#getting-started}\ntext\n```\n# comment\n```\n### Install{#install}\n#hashtag\n"

	assert.Equal(t, want, InjectHeadingIDs(in))
}

func TestInjectHeadingIDs_Idempotent(t *testing.T) {
	once := InjectHeadingIDs("# Hello World!\n")
	assert.Equal(t, once, InjectHeadingIDs(once))
}

func TestPrependTitle(t *testing.T) {
	assert.Equal(t, "# My Post\nbody\n", PrependTitle("body\n", "My Post"))
}

func TestHasTodo(t *testing.T) {
	assert.True(t, HasTodo("## Introduction\nThis is a test description. $PAGE{TODO: finish this page}"))
	assert.False(t, HasTodo("$PAGE{just a comment}"))
}

func TestAnchorID(t *testing.T) {
	cases := map[string]string{
		"Introduction":          "introduction",
		"Advanced Features!!!!": "advanced-features",
		"  Hello World  ":       "hello-world",
		"Intro {#intro}":        "intro",
		"QA {hello} {id}":       "qa-hello",
		"Über uns":              "ber-uns",
	}
	for in, want := range cases {
		assert.Equal(t, want, AnchorID(in), in)
	}
}

func TestHeadingTitle(t *testing.T) {
	assert.Equal(t, "Getting Started", HeadingTitle("## Getting Started{#getting-started}"))
	assert.Equal(t, "QA {hello}", HeadingTitle("# QA {hello} {id}"))
}
