package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe_SkipsHeadings(t *testing.T) {
	input := "## Introduction{#introduction}\nThis is a test description."
	assert.Equal(t, "This is a test description.", Describe(input, DescriptionLength))
}

func TestDescribe_ShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "Line one\nLine two", Describe("Line one\nLine two\n", DescriptionLength))
}

func TestDescribe_LinksBecomeText(t *testing.T) {
	assert.Equal(t, "Read the docs now.", Describe("Read [the docs](https://example.com) now.", DescriptionLength))
	assert.Equal(t, "A b c", Describe("A **b** `c`", DescriptionLength))
}

func TestDescribe_TruncatesAtWordBoundary(t *testing.T) {
	input := strings.Repeat("lorem ipsum ", 20)

	got := Describe(input, DescriptionLength)

	assert.Equal(t, strings.Repeat("lorem ipsum ", 12)+"lorem...", got)
	assert.LessOrEqual(t, len(got), DescriptionLength+3)
}

func TestDescribe_StopsReadingOnceBudgetIsMet(t *testing.T) {
	first := strings.Repeat("a", 160)
	got := Describe(first+"\nsecond line\n", DescriptionLength)

	assert.NotContains(t, got, "second")
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)
}
