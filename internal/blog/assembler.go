package blog

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/fsutil"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// DefaultEntryTemplate renders blog entries without a template_file override.
const DefaultEntryTemplate = "blog.html"

// Result summarizes an assembled blog.
type Result struct {
	// Entries holds every entry that survived the draft policy, newest first.
	Entries []page.Metadata
	// Listed holds the entries shown on index pages, newest first.
	Listed []page.Metadata
	// IndexFiles are the written index pages, relative to the blog output directory.
	IndexFiles []string
	Written    int
	Drafts     int
}

// Assembler builds the blog section of a site.
type Assembler struct {
	cfg      *config.Config
	policy   config.DraftPolicy
	compiler *compile.Compiler
	renderer render.Renderer
	loader   *render.Loader
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(a *Assembler) { a.recorder = r }
}

// NewAssembler creates an assembler for the project described by cfg.
func NewAssembler(cfg *config.Config, policy config.DraftPolicy, compiler *compile.Compiler, renderer render.Renderer, loader *render.Loader, opts ...Option) *Assembler {
	a := &Assembler{
		cfg:      cfg,
		policy:   policy,
		compiler: compiler,
		renderer: renderer,
		loader:   loader,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Exists reports whether the project has a blog at all.
func (a *Assembler) Exists() bool {
	if info, err := os.Stat(a.cfg.BlogDir()); err == nil && info.IsDir() {
		return true
	}
	_, err := os.Stat(a.cfg.BlogManifest())
	return err == nil
}

// Assemble compiles and writes every blog entry and index page. The first
// failing entry aborts the run.
func (a *Assembler) Assemble() (*Result, error) {
	start := time.Now()
	res, err := a.assemble()
	a.recorder.ObserveStageDuration("blog", time.Since(start))
	if err != nil {
		a.recorder.IncStageResult("blog", metrics.ResultFatal)
		return nil, err
	}
	a.recorder.IncStageResult("blog", metrics.ResultSuccess)
	a.recorder.SetListedEntries(len(res.Listed))
	return res, nil
}

func (a *Assembler) assemble() (*Result, error) {
	outDir := a.cfg.BlogOutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, ioError(err, outDir, "create blog output directory")
	}

	res := &Result{}
	if err := a.collectManifest(res); err != nil {
		return nil, err
	}
	if err := a.collectEntries(res, outDir); err != nil {
		return nil, err
	}

	page.SortByPublishDate(res.Entries)
	for _, m := range res.Entries {
		if m.Listable() && (!m.IsDraft || a.policy.Lists()) {
			res.Listed = append(res.Listed, m)
		}
	}

	if err := a.writeIndexes(res, outDir); err != nil {
		return nil, err
	}

	a.logger.Info("Blog assembled",
		logfields.Count(len(res.Entries)),
		slog.Int("listed", len(res.Listed)),
		slog.Int("drafts", res.Drafts),
		slog.Int("index_pages", len(res.IndexFiles)))
	return res, nil
}

// keep applies the draft policy to an entry and reports whether it stays.
func (a *Assembler) keep(meta page.Metadata, source string) bool {
	if !meta.IsDraft {
		return true
	}
	a.recorder.IncDraft(string(a.policy))
	if !a.policy.Writes() {
		a.logger.Debug("Hiding draft", logfields.Path(source), logfields.DraftPolicy(string(a.policy)))
		return false
	}
	return true
}

func (a *Assembler) collectManifest(res *Result) error {
	docs, err := LoadManifest(a.cfg.BlogManifest())
	if err != nil {
		return err
	}
	for _, doc := range docs {
		meta, _, err := a.compiler.Metadata(doc, a.cfg.BlogCover())
		if err != nil {
			return err
		}
		if !a.keep(meta, doc.SourcePath) {
			continue
		}
		if meta.IsDraft {
			res.Drafts++
		}
		res.Entries = append(res.Entries, meta)
	}
	return nil
}

func (a *Assembler) collectEntries(res *Result, outDir string) error {
	dir := a.cfg.BlogDir()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return ioError(err, dir, "read blog directory")
	}

	var defaultTpl *render.Template
	for _, entry := range entries {
		src := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			dst := filepath.Join(outDir, entry.Name())
			a.logger.Debug("Copying blog assets", logfields.Path(src))
			if err := fsutil.CopyDir(src, dst); err != nil {
				return ioError(err, src, "copy blog assets")
			}
			continue
		}
		if filepath.Ext(entry.Name()) != ".md" {
			a.logger.Warn("Skipping non-markdown file in blog directory", logfields.Path(src))
			continue
		}

		doc, err := compile.ReadDocument(src)
		if err != nil {
			return err
		}

		var tpl render.Template
		if doc.Meta.TemplateFile != "" {
			tpl, err = a.loader.Load(doc.Meta.TemplateFile)
			if err != nil {
				return errors.WrapError(err, errors.CategoryTemplateNotFound, "template_file could not be loaded").
					Fatal().
					WithPath(src).
					WithContext(errors.ContextTemplate, doc.Meta.TemplateFile).
					Build()
			}
		} else {
			if defaultTpl == nil {
				t, err := a.loader.Load(DefaultEntryTemplate)
				if err != nil {
					return err
				}
				defaultTpl = &t
			}
			tpl = *defaultTpl
		}

		compiled, err := a.compiler.Compile(doc, a.cfg.BlogCover())
		if err != nil {
			return err
		}
		if !a.keep(compiled.Meta, src) {
			continue
		}
		if compiled.Meta.IsDraft {
			res.Drafts++
		}

		if a.cfg.Blog.SinglePages() {
			html, err := compile.Render(a.renderer, tpl, compiled)
			if err != nil {
				return err
			}
			dst := filepath.Join(outDir, compiled.Meta.FileName)
			if err := fsutil.WriteFile(dst, []byte(html)); err != nil {
				return ioError(err, dst, "write blog entry")
			}
			a.logger.Debug("Wrote blog entry", logfields.Path(src), logfields.File(dst), logfields.Template(tpl.Name))
			a.recorder.IncOutput(metrics.OutputEntry)
			res.Written++
		}
		res.Entries = append(res.Entries, compiled.Meta)
	}
	return nil
}

func (a *Assembler) writeIndexes(res *Result, outDir string) error {
	tpl, err := a.loader.Load(a.cfg.Blog.BaseTemplate)
	if err != nil {
		return err
	}

	for _, p := range Paginate(res.Listed, a.cfg.Blog.MaxEntriesPerPage, a.cfg.Blog.IndexName) {
		html, err := a.renderer.RenderIndex(tpl, p.Entries, p.Pagination)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, p.FileName)
		if err := fsutil.WriteFile(dst, []byte(html)); err != nil {
			return ioError(err, dst, "write blog index")
		}
		a.recorder.IncOutput(metrics.OutputIndex)
		res.IndexFiles = append(res.IndexFiles, p.FileName)
	}
	return nil
}

func ioError(err error, path, message string) error {
	return errors.WrapError(err, errors.CategoryIO, message).
		Fatal().
		WithPath(path).
		Build()
}
