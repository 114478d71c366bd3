package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

var fixedNow = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

const pageTemplate = `<html><title>$PAGE['title']</title>
<body><!-- start_content --><!-- end_content --></body></html>`

const listTemplate = `<html><title>$PAGE['title']</title>
<body><!-- start_content --><!-- end_content -->$PAGE['pagination']</body></html>`

type project struct {
	t    *testing.T
	root string
}

func newProject(t *testing.T, configYAML string) *project {
	t.Helper()
	p := &project{t: t, root: t.TempDir()}
	p.write("config.yml", configYAML)
	p.write("templates/main/index.html", listTemplate)
	p.write("templates/main/blog.html", pageTemplate)
	p.write("templates/main/res/style.css", "body{}")
	p.write("content/about.md", "title: About\npublish_date: 2024-01-01\n---\nAbout us.\n")
	return p
}

func (p *project) write(rel, content string) {
	p.t.Helper()
	path := filepath.Join(p.root, filepath.FromSlash(rel))
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0o644))
}

func (p *project) read(rel string) string {
	p.t.Helper()
	data, err := os.ReadFile(filepath.Join(p.root, "output", filepath.FromSlash(rel)))
	require.NoError(p.t, err)
	return string(data)
}

func (p *project) build(opts ...Option) (*Report, error) {
	p.t.Helper()
	cfg, err := config.Load(p.root)
	require.NoError(p.t, err)
	opts = append([]Option{WithClock(fixedNow), WithHistory(nil)}, opts...)
	return NewBuilder(cfg, opts...).Build()
}

const baseConfig = `template: main
title: My Site
url: https://example.com/
description: Things I write
`

func TestBuildMarkerSite(t *testing.T) {
	p := newProject(t, baseConfig+"blog:\n  destination: blog\n")
	p.write("content/blog/first.md", "title: First\npublish_date: 2024-01-10\n---\n## Part one\nHello.\n")
	p.write("content/blog/second.md", "title: Second\npublish_date: 2024-02-10\n---\nWorld.\n")
	p.write("content/images/logo.svg", "<svg/>")

	report, err := p.build()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pages)
	assert.Equal(t, 2, report.Entries)
	assert.Equal(t, 2, report.Listed)
	assert.True(t, report.Feed)

	assert.Contains(t, p.read("about.html"), "<title>About</title>")
	assert.Contains(t, p.read("about.html"), "<p>About us.</p>")
	assert.Contains(t, p.read("blog/first.html"), `<h2 id="part-one">Part one</h2>`)
	assert.Equal(t, "body{}", p.read("res/style.css"))
	assert.Equal(t, "<svg/>", p.read("images/logo.svg"))

	index := p.read("blog/index.html")
	assert.Contains(t, index, "<title>My Site</title>")
	assert.Less(t, strings.Index(index, "second.html"), strings.Index(index, "first.html"))

	rss := p.read("rss.xml")
	assert.Contains(t, rss, "<link>https://example.com/blog/second.html</link>")
	assert.Contains(t, rss, "<language>en-us</language>")
	assert.Contains(t, rss, "<pubDate>Sat, 10 Feb 2024 00:00:00 UTC</pubDate>")
}

func TestBuildWithoutBlog(t *testing.T) {
	p := newProject(t, baseConfig)

	report, err := p.build()
	require.NoError(t, err)
	assert.False(t, report.Feed)
	assert.NoFileExists(t, filepath.Join(p.root, "output", "rss.xml"))
}

func TestBuildEngineSite(t *testing.T) {
	p := newProject(t, baseConfig+"enable_template_engine: true\nblog:\n  destination: blog\n  title: Journal\n  max_entries_per_page: 1\n")
	p.write("templates/main/blog.html.jinja", `<h1>{{ page.title }}</h1>{{ content }}<p>{{ page.mood }}</p><footer>{{ site.current_year }}</footer>`)
	p.write("templates/main/index.html.jinja",
		`{% for a in articles %}<a href="{{ a.file_name }}">{{ a.title }}</a>{% endfor %}{% if pagination %}{{ pagination.current_page }}/{{ pagination.total_pages }}{% endif %}`)
	p.write("content/blog/a.md", "title: A\npublish_date: 2024-01-01\nmood: happy\n---\nText.\n")
	p.write("content/blog/b.md", "title: B\npublish_date: 2024-01-02\n---\nText.\n")

	_, err := p.build()
	require.NoError(t, err)

	assert.Equal(t, "<h1>A</h1><p>Text.</p>\n<p>happy</p><footer>2024</footer>", p.read("blog/a.html"))
	assert.Equal(t, `<a href="b.html">B</a>1/2`, p.read("blog/index.html"))
	assert.Equal(t, `<a href="a.html">A</a>2/2`, p.read("blog/index-page-2.html"))
	assert.FileExists(t, filepath.Join(p.root, "output", "about.html"))
}

func TestDraftPolicyOverride(t *testing.T) {
	p := newProject(t, baseConfig+"drafts: dev\n")
	p.write("content/blog/wip.md", "title: Wip\npublish_date: 2024-01-01\n---\n$PAGE{TODO write it}\n")

	report, err := p.build(WithDraftPolicy(config.DraftsHide))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Entries)
	assert.NoFileExists(t, filepath.Join(p.root, "output", "wip.html"))
	assert.NotContains(t, p.read("rss.xml"), "Wip")
}

func TestBuildFailsOnBrokenPage(t *testing.T) {
	p := newProject(t, baseConfig)
	p.write("content/broken.md", "title: Broken\npublish_date: 01/02/2024\n---\n")

	_, err := p.build()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryInvalidDate))
	assert.Contains(t, err.Error(), "broken.md")
}

func TestBuildFailsWithoutMarkers(t *testing.T) {
	p := newProject(t, baseConfig)
	p.write("templates/main/index.html", "<html>no markers</html>")

	_, err := p.build()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryMissingTemplateMarker))
}

func TestBuildFailsWithoutTemplateDir(t *testing.T) {
	p := newProject(t, "template: other\ntitle: x\n")

	_, err := p.build()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLastModifiedFromGit(t *testing.T) {
	p := newProject(t, baseConfig)
	p.write("content/blog/post.md", "title: Post\npublish_date: 2024-01-01\n---\nBody\n")
	p.write("templates/main/blog.html", "<time>$PAGE['last_modified_date']</time><!-- start_content --><!-- end_content -->")

	repo, err := gogit.PlainInit(p.root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("content/blog/post.md")
	require.NoError(t, err)
	sig := &object.Signature{Name: "Tester", Email: "t@example.com", When: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	_, err = wt.Commit("add post", &gogit.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	cfg, err := config.Load(p.root)
	require.NoError(t, err)
	report, err := NewBuilder(cfg, WithClock(fixedNow)).Build()
	require.NoError(t, err)
	assert.Len(t, report.Commit, 8)

	assert.Contains(t, p.read("post.html"), "<time>2024-03-15</time>")
}
