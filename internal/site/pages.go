package site

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/fsutil"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/metrics"
	"git.home.luguber.info/inful/sitebuilder/internal/render"
)

// buildPages compiles every markdown file directly under content/ into the
// output root and copies the other content directories except the blog.
func (b *Builder) buildPages(compiler *compile.Compiler, renderer render.Renderer, loader *render.Loader) (int, error) {
	dir := b.cfg.ContentDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.WrapError(err, errors.CategoryIO, "read content directory").Fatal().WithPath(dir).Build()
	}

	written := 0
	for _, entry := range entries {
		src := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if src == b.cfg.BlogDir() {
				continue
			}
			if err := fsutil.CopyDir(src, filepath.Join(b.cfg.OutputDir(), entry.Name())); err != nil {
				return written, errors.WrapError(err, errors.CategoryIO, "copy content directory").Fatal().WithPath(src).Build()
			}
			continue
		}
		if filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		ok, err := b.buildPage(src, compiler, renderer, loader)
		if err != nil {
			return written, err
		}
		if ok {
			written++
		}
	}
	return written, nil
}

func (b *Builder) buildPage(src string, compiler *compile.Compiler, renderer render.Renderer, loader *render.Loader) (bool, error) {
	doc, err := compile.ReadDocument(src)
	if err != nil {
		return false, err
	}

	name := PageTemplate
	if doc.Meta.TemplateFile != "" {
		name = doc.Meta.TemplateFile
	}
	tpl, err := loader.Load(name)
	if err != nil {
		return false, errors.WrapError(err, errors.CategoryTemplateNotFound, "page template could not be loaded").
			Fatal().
			WithPath(src).
			WithContext(errors.ContextTemplate, name).
			Build()
	}

	p, err := compiler.Compile(doc, b.cfg.DefaultCoverImage)
	if err != nil {
		return false, err
	}
	if p.Meta.IsDraft {
		b.recorder.IncDraft(string(b.policy))
		if !b.policy.Writes() {
			b.logger.Debug("Hiding draft page", logfields.Path(src))
			return false, nil
		}
	}

	html, err := compile.Render(renderer, tpl, p)
	if err != nil {
		return false, err
	}
	dst := filepath.Join(b.cfg.OutputDir(), p.Meta.FileName)
	if err := fsutil.WriteFile(dst, []byte(html)); err != nil {
		return false, errors.WrapError(err, errors.CategoryIO, "write page").Fatal().WithPath(dst).Build()
	}
	b.recorder.IncOutput(metrics.OutputPage)
	b.logger.Info("Compiled page", logfields.Path(src), logfields.Page(p.Meta.FileName), logfields.Template(tpl.Name))
	return true, nil
}
