package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sberrors "git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

func TestParse_KnownAndCustomFields(t *testing.T) {
	input := []byte(`title: Test Post
publish_date: 2024-01-01
keywords: go, web
show_table_of_contents: true
add_title: true
cover_image: post/cover.jpg
template_file: custom.html
author_twitter: "@testauthor"
project_repo: https://github.com/test/repo
reading_level: 3
----
# Test Content
`)

	meta, body, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, "Test Post", meta.Title)
	assert.Equal(t, "2024-01-01", meta.PublishDate)
	assert.Equal(t, "go, web", meta.Keywords)
	assert.True(t, meta.ShowTableOfContents)
	assert.True(t, meta.AddTitle)
	assert.False(t, meta.IsDraft)
	assert.Nil(t, meta.Description)
	assert.Equal(t, "post/cover.jpg", meta.CoverImage)
	assert.Equal(t, "custom.html", meta.TemplateFile)
	assert.Equal(t, map[string]string{
		"author_twitter": "@testauthor",
		"project_repo":   "https://github.com/test/repo",
		"reading_level":  "3",
	}, meta.Custom)
	assert.Equal(t, "# Test Content\n", body)
}

func TestParse_ExplicitDescription(t *testing.T) {
	meta, _, err := Parse([]byte("title: T\ndescription: Short summary\n---\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "Short summary", meta.DescriptionOr("computed"))

	meta, _, err = Parse([]byte("title: T\n---\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "computed", meta.DescriptionOr("computed"))
}

func TestParse_NonScalarCustomField(t *testing.T) {
	meta, _, err := Parse([]byte("title: T\ntags: [a, b]\n---\n"))
	require.NoError(t, err)
	assert.Equal(t, "[a, b]", meta.Custom["tags"])
}

func TestParse_MalformedMetadata(t *testing.T) {
	cases := map[string]string{
		"invalid yaml":    "title: [unclosed\n---\nbody",
		"missing title":   "publish_date: 2024-01-01\n---\nbody",
		"blank title":     "title: \"  \"\n---\nbody",
		"wrong type":      "title: T\nis_draft: maybe\n---\nbody",
		"scalar document": "just text\n---\nbody",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse([]byte(input))
			require.Error(t, err)
			assert.True(t, sberrors.HasCategory(err, sberrors.CategoryMalformedMetadata))
		})
	}
}

func TestParse_MissingFrontmatter(t *testing.T) {
	_, _, err := Parse([]byte("# Just markdown\n"))
	require.Error(t, err)
	assert.True(t, sberrors.HasCategory(err, sberrors.CategoryMissingFrontmatter))
}
