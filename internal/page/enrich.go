package page

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/frontmatter"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// DateLayout is the canonical calendar date format of publish dates.
const DateLayout = "2006-01-02"

// DraftPrefix decorates the titles of draft pages.
const DraftPrefix = "[DRAFT] "

// History looks up the last commit date of a file. ok is false when no
// history is available at all.
type History interface {
	LastModified(path string) (date string, ok bool)
}

// Input is everything known about a page before enrichment.
type Input struct {
	Raw frontmatter.RawPageMetadata
	// Frontmatter is the raw metadata block, used for the fingerprint.
	Frontmatter []byte
	// Body is the content as written, before comments are removed.
	Body string
	// Content is the transformed markdown: comments removed, heading ids added.
	Content      string
	SourcePath   string
	DefaultCover string
}

// Enricher derives page metadata from parsed frontmatter and content.
type Enricher struct {
	history History
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithClock replaces the clock used to detect future publish dates.
func WithClock(now func() time.Time) Option {
	return func(e *Enricher) { e.now = now }
}

// NewEnricher creates an enricher. A nil history disables last-modified lookups.
func NewEnricher(history History, logger *slog.Logger, opts ...Option) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Enricher{history: history, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich computes the page metadata. A publish date that is not a valid
// YYYY-MM-DD calendar date fails with an invalid_date error.
func (e *Enricher) Enrich(in Input) (Metadata, error) {
	raw := in.Raw
	fileName := OutputName(in.SourcePath)

	if raw.PublishDate != "" {
		if _, err := time.Parse(DateLayout, raw.PublishDate); err != nil {
			return Metadata{}, errors.WrapError(err, errors.CategoryInvalidDate, "publish date is not YYYY-MM-DD").
				Fatal().
				WithPath(in.SourcePath).
				WithContext(errors.ContextField, "publish_date").
				Build()
		}
	}

	draft := raw.IsDraft
	if !draft && markdown.HasTodo(in.Body) {
		e.logger.Warn("Page has unresolved TODOs, treating it as a draft", logfields.Path(in.SourcePath))
		draft = true
	}
	if !draft && raw.PublishDate > e.now().Format(DateLayout) {
		e.logger.Info("Page is scheduled for a future date, treating it as a draft",
			logfields.Path(in.SourcePath), logfields.Date(raw.PublishDate))
		draft = true
	}

	title := raw.Title
	if draft && !strings.HasPrefix(title, DraftPrefix) {
		title = DraftPrefix + title
	}

	toc := ""
	if raw.ShowTableOfContents {
		toc = TableOfContents(in.Content)
	}

	fingerprint, err := Fingerprint(in.Frontmatter, in.Body)
	if err != nil {
		return Metadata{}, errors.WrapError(err, errors.CategoryMalformedMetadata, "cannot fingerprint frontmatter").
			Fatal().
			WithPath(in.SourcePath).
			Build()
	}

	return Metadata{
		Title:           title,
		PublishDate:     raw.PublishDate,
		Keywords:        raw.Keywords,
		ReadingTime:     strconv.Itoa(ReadingTime(in.Content)),
		Description:     raw.DescriptionOr(Describe(in.Content, DescriptionLength)),
		FileName:        fileName,
		TableOfContents: toc,
		LastModified:    e.lastModified(in.SourcePath, raw.PublishDate),
		CoverImage:      ResolveCover(raw.CoverImage, fileName, in.DefaultCover),
		IsDraft:         draft,
		AddTitle:        raw.AddTitle,
		URL:             raw.URL,
		TemplateFile:    raw.TemplateFile,
		Fingerprint:     fingerprint,
		Custom:          raw.Custom,
	}, nil
}

// lastModified reconciles the history date with the publish date. It never
// reports a date earlier than the publish date.
func (e *Enricher) lastModified(path, publish string) string {
	if e.history == nil {
		return publish
	}
	derived, ok := e.history.LastModified(path)
	switch {
	case !ok || derived == "":
		return publish
	case publish == "":
		return derived
	case derived < publish:
		return publish
	default:
		return derived
	}
}
