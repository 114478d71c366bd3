package blog

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

const (
	indexTemplate = "<h1>$PAGE['title']</h1>\n<!-- start_content -->\n<a href=\"$PAGE['file_name']\">$PAGE['title']</a>\n<!-- end_content -->\n$PAGE['pagination']"
	entryTemplate = "<title>$PAGE['title']</title>\n<!-- start_content --><!-- end_content -->"
)

type fixture struct {
	t   *testing.T
	cfg *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Template:    "main",
		Title:       "Site",
		URL:         "https://example.com",
		Drafts:      config.DraftsBuild,
		ProjectPath: root,
		Blog:        config.BlogConfig{BaseTemplate: "index.html", IndexName: "index.html"},
	}
	f := &fixture{t: t, cfg: cfg}
	f.write(filepath.Join("templates", "main", "index.html"), indexTemplate)
	f.write(filepath.Join("templates", "main", "blog.html"), entryTemplate)
	require.NoError(t, os.MkdirAll(cfg.BlogDir(), 0o755))
	return f
}

func (f *fixture) write(rel, content string) {
	f.t.Helper()
	path := filepath.Join(f.cfg.ProjectPath, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0o644))
}

func (f *fixture) entry(name, title, date string, extra string) {
	f.t.Helper()
	f.write(filepath.Join("content", "blog", name+".md"),
		fmt.Sprintf("title: %s\npublish_date: %s\n%s---\nBody of %s.\n", title, date, extra, title))
}

func (f *fixture) assembler(policy config.DraftPolicy) *Assembler {
	now := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	compiler := compile.New(page.NewEnricher(nil, nil, page.WithClock(now)), nil)
	site := render.SiteContext{Title: f.cfg.Title, URL: f.cfg.URL}
	renderer, err := render.New(false, render.Options{Site: site, IndexTitle: f.cfg.BlogTitle()})
	require.NoError(f.t, err)
	loader := render.NewLoader(f.cfg.TemplateDir(), false)
	return NewAssembler(f.cfg, policy, compiler, renderer, loader)
}

func (f *fixture) output(name string) string {
	f.t.Helper()
	data, err := os.ReadFile(filepath.Join(f.cfg.BlogOutputDir(), name))
	require.NoError(f.t, err)
	return string(data)
}

func titles(pages []page.Metadata) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Title)
	}
	return out
}
