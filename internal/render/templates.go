package render

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// EngineSuffix marks a template written for the templating engine.
const EngineSuffix = ".jinja"

// Template is a loaded template file.
type Template struct {
	// Name is the name the template was requested by, e.g. "blog.html".
	Name string
	// Path is the file the source was read from.
	Path   string
	Source string
	// Engine is set when the template was loaded from a .jinja sibling.
	Engine bool
}

// Loader reads templates from one template directory.
type Loader struct {
	dir    string
	engine bool
}

// NewLoader returns a loader for dir. With engine set, "X.html.jinja" is
// preferred over "X.html".
func NewLoader(dir string, engine bool) *Loader {
	return &Loader{dir: dir, engine: engine}
}

// Dir returns the template directory.
func (l *Loader) Dir() string { return l.dir }

// Load reads the named template.
func (l *Loader) Load(name string) (Template, error) {
	if !filepath.IsLocal(name) {
		return Template{}, errors.TemplateNotFound("template name must stay inside the template directory").
			WithContext(errors.ContextTemplate, name).
			Build()
	}

	if l.engine {
		path := filepath.Join(l.dir, name+EngineSuffix)
		if src, err := os.ReadFile(path); err == nil {
			return Template{Name: name, Path: path, Source: string(src), Engine: true}, nil
		}
	}

	path := filepath.Join(l.dir, name)
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Template{}, errors.WrapError(err, errors.CategoryTemplateNotFound, "template not found").
				Fatal().
				WithPath(path).
				WithContext(errors.ContextTemplate, name).
				Build()
		}
		return Template{}, errors.WrapError(err, errors.CategoryIO, "read template").
			Fatal().
			WithPath(path).
			WithContext(errors.ContextTemplate, name).
			Build()
	}
	return Template{Name: name, Path: path, Source: string(src)}, nil
}
