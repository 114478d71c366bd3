package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	sberrors "git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
)

// RawPageMetadata is the literal frontmatter of a source document.
type RawPageMetadata struct {
	Title               string  `yaml:"title"`
	PublishDate         string  `yaml:"publish_date"`
	IsDraft             bool    `yaml:"is_draft"`
	Keywords            string  `yaml:"keywords"`
	ShowTableOfContents bool    `yaml:"show_table_of_contents"`
	AddTitle            bool    `yaml:"add_title"`
	Description         *string `yaml:"description"`
	CoverImage          string  `yaml:"cover_image"`
	TemplateFile        string  `yaml:"template_file"`
	URL                 string  `yaml:"url"`

	// Custom holds every top-level key not listed above, rendered to a string.
	Custom map[string]string `yaml:"-"`
}

// knownKeys are the frontmatter keys decoded into RawPageMetadata fields.
var knownKeys = map[string]struct{}{
	"title":                  {},
	"publish_date":           {},
	"is_draft":               {},
	"keywords":               {},
	"show_table_of_contents": {},
	"add_title":              {},
	"description":            {},
	"cover_image":            {},
	"template_file":          {},
	"url":                    {},
}

// UnmarshalYAML decodes the known fields and collects the rest into Custom.
func (m *RawPageMetadata) UnmarshalYAML(node *yaml.Node) error {
	type plain RawPageMetadata
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*m = RawPageMetadata(decoded)

	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if _, known := knownKeys[key]; known {
			continue
		}
		value, err := nodeString(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("custom field %q: %w", key, err)
		}
		if m.Custom == nil {
			m.Custom = make(map[string]string)
		}
		m.Custom[key] = value
	}
	return nil
}

func nodeString(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// DescriptionOr returns the explicit description, or fallback when none was given.
func (m RawPageMetadata) DescriptionOr(fallback string) string {
	if m.Description != nil {
		return *m.Description
	}
	return fallback
}

// ParseMetadata decodes a metadata block. A block that is not valid YAML or
// lacks a title yields a malformed_metadata error carrying the parser diagnostic.
func ParseMetadata(block []byte) (RawPageMetadata, error) {
	var meta RawPageMetadata
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return RawPageMetadata{}, sberrors.WrapError(err, sberrors.CategoryMalformedMetadata, "invalid frontmatter").
			Fatal().
			Build()
	}
	if strings.TrimSpace(meta.Title) == "" {
		return RawPageMetadata{}, sberrors.MalformedMetadata("frontmatter has no title").
			WithContext(sberrors.ContextField, "title").
			Build()
	}
	return meta, nil
}

// Parse splits a raw document and decodes its metadata block.
func Parse(content []byte) (RawPageMetadata, string, error) {
	block, body, err := Split(content)
	if err != nil {
		return RawPageMetadata{}, "", err
	}
	meta, err := ParseMetadata(block)
	if err != nil {
		return RawPageMetadata{}, "", err
	}
	return meta, string(body), nil
}
