package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// Project layout names.
const (
	FileName     = "config.yml"
	ContentDir   = "content"
	TemplatesDir = "templates"
	OutputDir    = "output"
)

// Config is the site configuration read from config.yml.
type Config struct {
	Template             string      `yaml:"template"`
	TemplateBasePath     string      `yaml:"template_base_path,omitempty"` // absolute or project relative
	Title                string      `yaml:"title"`
	URL                  string      `yaml:"url"`
	Description          string      `yaml:"description"`
	Language             string      `yaml:"language,omitempty"`
	DefaultCoverImage    string      `yaml:"default_cover_image,omitempty"`
	EnableTemplateEngine bool        `yaml:"enable_template_engine,omitempty"`
	Drafts               DraftPolicy `yaml:"drafts,omitempty"`
	Blog                 BlogConfig  `yaml:"blog"`

	// ProjectPath is the directory config.yml was loaded from.
	ProjectPath string `yaml:"-"`
}

// BlogConfig controls the blog index and its entries.
type BlogConfig struct {
	BaseTemplate        string `yaml:"base_template"`
	IndexName           string `yaml:"index_name"`
	Destination         string `yaml:"destination"` // relative to the output directory
	GenerateSinglePages *bool  `yaml:"generate_single_pages,omitempty"`
	Title               string `yaml:"title,omitempty"`
	DefaultCoverImage   string `yaml:"default_cover_image,omitempty"`
	MaxEntriesPerPage   int    `yaml:"max_entries_per_page,omitempty"`
}

// SinglePages reports whether blog entries are written as individual pages.
func (b BlogConfig) SinglePages() bool {
	return b.GenerateSinglePages == nil || *b.GenerateSinglePages
}

// Load reads config.yml from projectPath. .env files in the project are
// loaded first so ${VAR} references in the configuration can use them.
func Load(projectPath string) (*Config, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "project path does not exist").
			Fatal().
			WithPath(projectPath).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.ConfigError("project path is not a directory containing " + FileName).
			WithPath(projectPath).
			Build()
	}

	loadEnvFiles(projectPath)

	configPath := filepath.Join(projectPath, FileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "cannot read configuration").
			Fatal().
			WithPath(configPath).
			Build()
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "invalid configuration").
			Fatal().
			WithPath(configPath).
			Build()
	}
	cfg.ProjectPath = projectPath

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if cfg.Drafts == "" {
		cfg.Drafts = DraftsBuild
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Blog.BaseTemplate == "" {
		cfg.Blog.BaseTemplate = "index.html"
	}
	if cfg.Blog.IndexName == "" {
		cfg.Blog.IndexName = "index.html"
	}
}

func validate(cfg *Config) error {
	policy, err := ParseDraftPolicy(string(cfg.Drafts))
	if err != nil {
		return err
	}
	cfg.Drafts = policy

	lang, err := normalizeLanguage(cfg.Language)
	if err != nil {
		return err
	}
	cfg.Language = lang

	if cfg.Blog.MaxEntriesPerPage < 0 {
		return errors.ValidationError("blog.max_entries_per_page must not be negative").
			WithContext(errors.ContextField, "blog.max_entries_per_page").
			Build()
	}
	if filepath.IsAbs(cfg.Blog.Destination) {
		return errors.ValidationError("blog.destination must be relative to the output directory").
			WithContext(errors.ContextField, "blog.destination").
			Build()
	}
	return nil
}
