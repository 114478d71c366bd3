package blog

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitebuilder/internal/compile"
	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/frontmatter"
)

type manifestFile struct {
	Entries []yaml.Node `yaml:"entries"`
}

// LoadManifest reads the blog manifest at path. Each entry becomes a
// document without content whose source path is the manifest itself.
// A missing manifest yields no documents.
func LoadManifest(path string) ([]compile.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryIO, "read blog manifest").
			Fatal().
			WithPath(path).
			Build()
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapError(err, errors.CategoryMalformedMetadata, "invalid blog manifest").
			Fatal().
			WithPath(path).
			Build()
	}

	docs := make([]compile.Document, 0, len(file.Entries))
	for i := range file.Entries {
		block, err := yaml.Marshal(&file.Entries[i])
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryMalformedMetadata, "invalid blog manifest entry").
				Fatal().
				WithPath(path).
				WithContext("entry", i).
				Build()
		}
		meta, err := frontmatter.ParseMetadata(block)
		if err != nil {
			if ce, ok := errors.AsClassified(err); ok {
				return nil, ce.WithContext(errors.ContextPath, path).WithContext("entry", i)
			}
			return nil, err
		}
		docs = append(docs, compile.Document{SourcePath: path, Meta: meta, Frontmatter: block})
	}
	return docs, nil
}
