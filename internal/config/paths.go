package config

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// TemplateDir is the directory holding the selected template set.
func (c *Config) TemplateDir() string {
	base := filepath.Join(c.ProjectPath, TemplatesDir)
	if c.TemplateBasePath != "" {
		base = c.TemplateBasePath
		if !filepath.IsAbs(base) {
			base = filepath.Join(c.ProjectPath, base)
		}
	}
	if c.Template == "" {
		return base
	}
	return filepath.Join(base, c.Template)
}

// ContentDir is the directory holding markdown sources.
func (c *Config) ContentDir() string {
	return filepath.Join(c.ProjectPath, ContentDir)
}

// OutputDir is the directory the site is written to.
func (c *Config) OutputDir() string {
	return filepath.Join(c.ProjectPath, OutputDir)
}

// BlogDir is the directory holding blog entry sources.
func (c *Config) BlogDir() string {
	return filepath.Join(c.ContentDir(), "blog")
}

// BlogManifest is the optional YAML list of blog entries.
func (c *Config) BlogManifest() string {
	return filepath.Join(c.ContentDir(), "blog.yml")
}

// BlogOutputDir is where blog entries and index pages are written.
func (c *Config) BlogOutputDir() string {
	return filepath.Join(c.OutputDir(), c.Blog.Destination)
}

// BlogCover is the default cover image for blog entries.
func (c *Config) BlogCover() string {
	if c.Blog.DefaultCoverImage != "" {
		return c.Blog.DefaultCoverImage
	}
	return c.DefaultCoverImage
}

// BlogTitle is the heading of blog index pages.
func (c *Config) BlogTitle() string {
	if c.Blog.Title != "" {
		return c.Blog.Title
	}
	return c.Title
}

// ValidateProject checks that the content and template directories exist.
func (c *Config) ValidateProject() error {
	for _, dir := range []string{c.ContentDir(), c.TemplateDir()} {
		info, err := os.Stat(dir)
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "required project directory is missing").
				Fatal().
				WithPath(dir).
				Build()
		}
		if !info.IsDir() {
			return errors.ConfigError("expected a directory").WithPath(dir).Build()
		}
	}
	return nil
}
