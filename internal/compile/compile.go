// Package compile runs one markdown document through the content pipeline:
// frontmatter parsing, comment removal, heading ids, metadata enrichment and
// markdown rendering.
package compile

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/frontmatter"
	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// Document is a parsed source document.
type Document struct {
	SourcePath  string
	Meta        frontmatter.RawPageMetadata
	Frontmatter []byte
	Body        string
}

// Page is a compiled document: its metadata and its body as HTML.
type Page struct {
	Meta page.Metadata
	HTML string
}

// ReadDocument reads and parses the document at path.
func ReadDocument(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.WrapError(err, errors.CategoryIO, "read source").
			Fatal().
			WithPath(path).
			Build()
	}
	return ParseDocument(path, raw)
}

// ParseDocument parses raw as the document at path.
func ParseDocument(path string, raw []byte) (Document, error) {
	block, body, err := frontmatter.Split(raw)
	if err != nil {
		return Document{}, withPath(err, path)
	}
	meta, err := frontmatter.ParseMetadata(block)
	if err != nil {
		return Document{}, withPath(err, path)
	}
	return Document{SourcePath: path, Meta: meta, Frontmatter: block, Body: string(body)}, nil
}

// withPath attaches the source path to classified errors that lack one.
func withPath(err error, path string) error {
	if ce, ok := errors.AsClassified(err); ok {
		if ce.Path() == "" {
			return ce.WithContext(errors.ContextPath, path)
		}
		return ce
	}
	return fmt.Errorf("%s: %w", path, err)
}

// Compiler turns documents into pages.
type Compiler struct {
	enricher *page.Enricher
	markdown *markdown.Renderer
}

// New creates a compiler.
func New(enricher *page.Enricher, md *markdown.Renderer) *Compiler {
	if md == nil {
		md = markdown.NewRenderer()
	}
	return &Compiler{enricher: enricher, markdown: md}
}

// Metadata enriches a document without rendering its body.
func (c *Compiler) Metadata(doc Document, defaultCover string) (page.Metadata, string, error) {
	content := markdown.InjectHeadingIDs(markdown.StripComments(doc.Body))
	meta, err := c.enricher.Enrich(page.Input{
		Raw:          doc.Meta,
		Frontmatter:  doc.Frontmatter,
		Body:         doc.Body,
		Content:      content,
		SourcePath:   doc.SourcePath,
		DefaultCover: defaultCover,
	})
	if err != nil {
		return page.Metadata{}, "", withPath(err, doc.SourcePath)
	}
	return meta, content, nil
}

// Compile runs the full content pipeline for doc.
func (c *Compiler) Compile(doc Document, defaultCover string) (Page, error) {
	meta, content, err := c.Metadata(doc, defaultCover)
	if err != nil {
		return Page{}, err
	}
	if meta.AddTitle {
		content = markdown.PrependTitle(content, meta.Title)
	}
	html, err := c.markdown.Render(content)
	if err != nil {
		return Page{}, withPath(err, doc.SourcePath)
	}
	return Page{Meta: meta, HTML: html}, nil
}

// Render places a compiled page into tpl.
func Render(r render.Renderer, tpl render.Template, p Page) (string, error) {
	out, err := r.RenderPage(tpl, p.Meta, p.HTML)
	if err != nil {
		return "", withPath(err, p.Meta.FileName)
	}
	return out, nil
}
