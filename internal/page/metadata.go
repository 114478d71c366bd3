package page

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// ErrorPageName is the output name of the site's error page. It is never listed.
const ErrorPageName = "error.html"

// Metadata is the enriched, render-ready description of one page.
type Metadata struct {
	Title           string
	PublishDate     string
	Keywords        string
	ReadingTime     string
	Description     string
	FileName        string
	TableOfContents string
	LastModified    string
	CoverImage      string
	IsDraft         bool
	AddTitle        bool
	URL             string
	TemplateFile    string
	Fingerprint     string
	Custom          map[string]string
}

// Compare orders pages by publish date, newest first.
func (m Metadata) Compare(other Metadata) int {
	return strings.Compare(other.PublishDate, m.PublishDate)
}

// Less reports whether m sorts before other.
func (m Metadata) Less(other Metadata) bool {
	return m.Compare(other) < 0
}

// Equal compares publish dates only. It exists for sorting and says nothing
// about page identity.
func (m Metadata) Equal(other Metadata) bool {
	return m.PublishDate == other.PublishDate
}

// SortByPublishDate sorts pages newest first. Pages sharing a date keep their order.
func SortByPublishDate(pages []Metadata) {
	slices.SortStableFunc(pages, Metadata.Compare)
}

// Listable reports whether the page may appear in index listings and feeds.
func (m Metadata) Listable() bool {
	return m.FileName != ErrorPageName
}

// Variables returns the template fields of the page. Custom fields share
// the namespace; a custom key never shadows a built-in one.
func (m Metadata) Variables() map[string]string {
	vars := make(map[string]string, len(m.Custom)+11)
	maps.Copy(vars, m.Custom)
	maps.Copy(vars, map[string]string{
		"title":              strings.TrimSpace(m.Title),
		"publish_date":       m.PublishDate,
		"last_modified_date": m.LastModified,
		"read_time_minutes":  m.ReadingTime,
		"keywords":           strings.TrimSpace(m.Keywords),
		"description":        strings.TrimSpace(m.Description),
		"file_name":          m.FileName,
		"table_of_contents":  m.TableOfContents,
		"cover_image":        m.CoverImage,
		"url":                m.URL,
		"fingerprint":        m.Fingerprint,
	})
	return vars
}

// OutputName maps a source path to its output file name: the base name with
// the extension replaced by .html.
func OutputName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
