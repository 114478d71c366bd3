package lint

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/config"
)

// FileKind tells rules what a file is used for.
type FileKind int

const (
	KindPage FileKind = iota
	KindTemplate
	KindManifest
)

// File is one file under inspection. Pages are parsed once up front; Doc
// is nil when parsing failed and ParseErr holds the reason.
type File struct {
	Path     string
	Kind     FileKind
	Data     []byte
	Doc      *compile.Document
	ParseErr error
	// Engine is set when the project renders with the templating engine.
	Engine bool
}

// Linter checks a project's sources without writing any output.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// Option configures a Linter.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used to detect future publish dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewLinter creates a new linter with the given configuration.
func NewLinter(cfg *Config, opts ...Option) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Linter{
		cfg: cfg,
		rules: []Rule{
			&FrontmatterRule{},
			&PublishDateRule{now: o.now},
			&TodoMarkerRule{},
			&FingerprintRule{},
			&DuplicateAnchorRule{},
			&BrokenLinkRule{},
			&TemplateMarkerRule{},
			&ManifestRule{},
		},
	}
}

// LintProject lints the pages, blog entries, manifest and templates of a project.
func (l *Linter) LintProject(project *config.Config) (*Result, error) {
	result := &Result{Issues: []Issue{}}

	var files []*File
	for _, dir := range []string{project.ContentDir(), project.BlogDir()} {
		found, err := collect(dir, IsDocFile, KindPage)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	templates, err := collect(project.TemplateDir(), IsTemplateFile, KindTemplate)
	if err != nil {
		return nil, err
	}
	files = append(files, templates...)
	if data, err := os.ReadFile(project.BlogManifest()); err == nil {
		files = append(files, &File{Path: project.BlogManifest(), Kind: KindManifest, Data: data})
	}

	for _, f := range files {
		f.Engine = project.EnableTemplateEngine
		if f.Kind == KindPage {
			doc, err := compile.ParseDocument(f.Path, f.Data)
			if err != nil {
				f.ParseErr = err
			} else {
				f.Doc = &doc
			}
		}
		result.FilesTotal++
		if err := l.lintFile(f, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// collect reads the matching files directly inside dir. A missing
// directory has no files.
func collect(dir string, match func(string) bool, kind FileKind) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// #nosec G304 -- path comes from the project directory listing.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, &File{Path: path, Kind: kind, Data: data})
	}
	return files, nil
}

// lintFile applies all applicable rules to a single file.
func (l *Linter) lintFile(file *File, result *Result) error {
	for _, rule := range l.rules {
		if !rule.AppliesTo(file) {
			continue
		}

		issues, err := rule.Check(file)
		if err != nil {
			return err
		}

		for _, issue := range issues {
			if l.cfg.Quiet && issue.Severity != SeverityError {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}
	return nil
}

// Rules returns the names of the active rules.
func (l *Linter) Rules() []string {
	names := make([]string, 0, len(l.rules))
	for _, r := range l.rules {
		names = append(names, r.Name())
	}
	slices.Sort(names)
	return names
}
