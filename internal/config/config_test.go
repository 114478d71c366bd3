package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, "template: main\ntitle: Site\nurl: https://example.com/\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, DraftsBuild, cfg.Drafts)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, "index.html", cfg.Blog.BaseTemplate)
	assert.Equal(t, "index.html", cfg.Blog.IndexName)
	assert.True(t, cfg.Blog.SinglePages())
	assert.Zero(t, cfg.Blog.MaxEntriesPerPage)
	assert.False(t, cfg.EnableTemplateEngine)
	assert.Equal(t, dir, cfg.ProjectPath)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
template: main
title: Test
url: http://test.com
description: Test blog description
language: de-DE
default_cover_image: cover.jpg
enable_template_engine: true
drafts: Dev
blog:
  base_template: blog.html
  index_name: blog.html
  destination: blog
  generate_single_pages: false
  title: My Blog
  default_cover_image: blog-cover.jpg
  max_entries_per_page: 5
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "de-de", cfg.Language)
	assert.Equal(t, DraftsDev, cfg.Drafts)
	assert.True(t, cfg.EnableTemplateEngine)
	assert.False(t, cfg.Blog.SinglePages())
	assert.Equal(t, 5, cfg.Blog.MaxEntriesPerPage)
	assert.Equal(t, "My Blog", cfg.BlogTitle())
	assert.Equal(t, "blog-cover.jpg", cfg.BlogCover())
	assert.Equal(t, filepath.Join(dir, "output", "blog"), cfg.BlogOutputDir())
	assert.Equal(t, filepath.Join(dir, "templates", "main"), cfg.TemplateDir())
}

func TestLoad_ExpandsEnvFromDotEnv(t *testing.T) {
	dir := writeConfig(t, "template: main\ntitle: ${SITEBUILDER_TEST_TITLE}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITEBUILDER_TEST_TITLE=From Env\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SITEBUILDER_TEST_TITLE") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Title)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing project", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "title: [oops\n"))
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
	t.Run("unknown draft policy", func(t *testing.T) {
		_, err := Load(writeConfig(t, "drafts: sometimes\n"))
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
	t.Run("invalid language", func(t *testing.T) {
		_, err := Load(writeConfig(t, "language: not a language\n"))
		assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	})
	t.Run("negative page size", func(t *testing.T) {
		_, err := Load(writeConfig(t, "blog:\n  max_entries_per_page: -1\n"))
		assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	})
}

func TestTemplateDir(t *testing.T) {
	abs := t.TempDir()
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{ProjectPath: "/p", Template: "main"}, filepath.Join("/p", "templates", "main")},
		{"relative base", Config{ProjectPath: "/p", TemplateBasePath: "themes", Template: "main"}, filepath.Join("/p", "themes", "main")},
		{"absolute base", Config{ProjectPath: "/p", TemplateBasePath: abs, Template: "main"}, filepath.Join(abs, "main")},
		{"base without template", Config{ProjectPath: "/p", TemplateBasePath: "themes"}, filepath.Join("/p", "themes")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.TemplateDir())
		})
	}
}

func TestValidateProject(t *testing.T) {
	dir := writeConfig(t, "template: main\n")
	cfg, err := Load(dir)
	require.NoError(t, err)

	err = cfg.ValidateProject()
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates", "main"), 0o750))
	assert.NoError(t, cfg.ValidateProject())
}

func TestDraftPolicy(t *testing.T) {
	for raw, want := range map[string]DraftPolicy{"": DraftsBuild, "BUILD": DraftsBuild, " dev ": DraftsDev, "hide": DraftsHide} {
		got, err := ParseDraftPolicy(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.True(t, DraftsBuild.Writes())
	assert.False(t, DraftsBuild.Lists())
	assert.True(t, DraftsDev.Writes())
	assert.True(t, DraftsDev.Lists())
	assert.False(t, DraftsHide.Writes())
	assert.False(t, DraftsHide.Lists())
}
