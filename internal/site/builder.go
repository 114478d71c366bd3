// Package site drives a complete build: top-level pages, static assets, the
// blog section and the feed.
package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/blog"
	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/feed"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/fsutil"
	"git.home.luguber.info/inful/sitebuilder/internal/git"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// PageTemplate renders top-level pages without a template_file override.
const PageTemplate = "index.html"

// Report summarizes a finished build.
type Report struct {
	OutputDir  string
	Pages      int
	Entries    int
	Listed     int
	Drafts     int
	IndexPages int
	Feed       bool
	Commit     string
	Duration   time.Duration
}

// Builder builds one project.
type Builder struct {
	cfg      *config.Config
	policy   config.DraftPolicy
	logger   *slog.Logger
	recorder metrics.Recorder
	history  page.History
	now      func() time.Time

	customHistory bool
}

// Option configures a Builder.
type Option func(*Builder)

func WithLogger(l *slog.Logger) Option { return func(b *Builder) { b.logger = l } }

func WithRecorder(r metrics.Recorder) Option { return func(b *Builder) { b.recorder = r } }

// WithDraftPolicy overrides the draft policy from the configuration.
func WithDraftPolicy(p config.DraftPolicy) Option { return func(b *Builder) { b.policy = p } }

// WithHistory replaces the git history lookup. A nil history disables it.
func WithHistory(h page.History) Option {
	return func(b *Builder) {
		b.history = h
		b.customHistory = true
	}
}

func WithClock(now func() time.Time) Option { return func(b *Builder) { b.now = now } }

// NewBuilder creates a builder for cfg.
func NewBuilder(cfg *config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg:      cfg,
		policy:   cfg.Drafts,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if !b.customHistory {
		b.history = git.NewHistory(b.logger)
	}
	if b.policy == "" {
		b.policy = config.DraftsBuild
	}
	return b
}

// Build writes the whole site to the project's output directory.
func (b *Builder) Build() (*Report, error) {
	start := b.now()
	report, err := b.build()
	b.recorder.ObserveBuildDuration(time.Since(start))
	if err != nil {
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, err
	}
	b.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	report.Duration = time.Since(start)
	return report, nil
}

func (b *Builder) build() (*Report, error) {
	cfg := b.cfg
	if err := cfg.ValidateProject(); err != nil {
		return nil, err
	}

	report := &Report{OutputDir: cfg.OutputDir(), Commit: git.HeadCommit(cfg.ProjectPath)}
	b.logger.Info("Building site",
		logfields.Path(cfg.ProjectPath),
		logfields.DraftPolicy(string(b.policy)),
		logfields.RenderMode(renderMode(cfg.EnableTemplateEngine)),
		slog.String("commit", report.Commit))

	if err := os.MkdirAll(cfg.OutputDir(), 0o755); err != nil {
		return nil, errors.WrapError(err, errors.CategoryIO, "create output directory").Fatal().WithPath(cfg.OutputDir()).Build()
	}

	site := render.NewSiteContext(cfg.Title, cfg.URL, cfg.Description, b.now())
	renderer, err := render.New(cfg.EnableTemplateEngine, render.Options{
		Site:        site,
		IndexTitle:  cfg.BlogTitle(),
		TemplateDir: cfg.TemplateDir(),
	})
	if err != nil {
		return nil, err
	}
	loader := render.NewLoader(cfg.TemplateDir(), cfg.EnableTemplateEngine)
	compiler := compile.New(
		page.NewEnricher(b.history, b.logger, page.WithClock(b.now)),
		markdown.NewRenderer(),
	)

	if err := b.stage("assets", func() error { return b.copyTemplateAssets() }); err != nil {
		return nil, err
	}
	if err := b.stage("pages", func() error {
		n, err := b.buildPages(compiler, renderer, loader)
		report.Pages = n
		return err
	}); err != nil {
		return nil, err
	}

	assembler := blog.NewAssembler(cfg, b.policy, compiler, renderer, loader,
		blog.WithLogger(b.logger), blog.WithRecorder(b.recorder))
	if !assembler.Exists() {
		b.logger.Info("No blog found, skipping blog and feed")
		return report, nil
	}
	res, err := assembler.Assemble()
	if err != nil {
		return nil, err
	}
	report.Entries = len(res.Entries)
	report.Listed = len(res.Listed)
	report.Drafts = res.Drafts
	report.IndexPages = len(res.IndexFiles)

	if err := b.stage("feed", func() error {
		rss := feed.Generate(feed.Site{
			Title:       cfg.Title,
			URL:         cfg.URL,
			Description: cfg.Description,
			Language:    cfg.Language,
			Destination: cfg.Blog.Destination,
		}, res.Entries, b.logger)
		return feed.Write(cfg.OutputDir(), rss)
	}); err != nil {
		return nil, err
	}
	b.recorder.IncOutput(metrics.OutputFeed)
	report.Feed = true
	return report, nil
}

func (b *Builder) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	b.recorder.ObserveStageDuration(name, time.Since(start))
	if err != nil {
		b.recorder.IncStageResult(name, metrics.ResultFatal)
		b.logger.Error("Stage failed", logfields.Stage(name), logfields.Error(err))
		return err
	}
	b.recorder.IncStageResult(name, metrics.ResultSuccess)
	b.logger.Debug("Stage finished", logfields.Stage(name), logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

func renderMode(engine bool) string {
	if engine {
		return "engine"
	}
	return "marker"
}

// copyTemplateAssets copies every subdirectory of the template directory
// (stylesheets, images, scripts) into the output root.
func (b *Builder) copyTemplateAssets() error {
	dir := b.cfg.TemplateDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.WrapError(err, errors.CategoryIO, "read template directory").Fatal().WithPath(dir).Build()
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		src := filepath.Join(dir, entry.Name())
		if err := fsutil.CopyDir(src, filepath.Join(b.cfg.OutputDir(), entry.Name())); err != nil {
			return errors.WrapError(err, errors.CategoryIO, "copy template assets").Fatal().WithPath(src).Build()
		}
		b.logger.Debug("Copied template assets", logfields.Path(src))
	}
	return nil
}
