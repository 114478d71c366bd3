// Package feed derives the RSS 2.0 feed of a site from its blog entries.
package feed

import (
	"bytes"
	"encoding/xml"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/sitebuilder/internal/fsutil"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
	"git.home.luguber.info/inful/sitebuilder/internal/page"
)

// FileName is the feed's name inside the output directory.
const FileName = "rss.xml"

// PubDateLayout formats item dates. Publish dates carry no time of day.
const PubDateLayout = "Mon, 02 Jan 2006 00:00:00 UTC"

type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Language    string `xml:"language,omitempty"`
	Items       []Item `xml:"item"`
}

type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        GUID   `xml:"guid"`
}

type GUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// Site describes the feed channel.
type Site struct {
	Title       string
	URL         string
	Description string
	Language    string
	// Destination is the blog's directory below the site root, "" for the root.
	Destination string
}

// Generate builds the feed for entries. Drafts and the error page are left
// out; the entries keep their order.
func Generate(site Site, entries []page.Metadata, logger *slog.Logger) RSS {
	if logger == nil {
		logger = slog.Default()
	}
	items := make([]Item, 0, len(entries))
	for _, m := range entries {
		if m.IsDraft || !m.Listable() {
			continue
		}
		link := m.URL
		if link == "" {
			link = site.URL + "/" + path.Join(filepath.ToSlash(site.Destination), m.FileName)
		}
		items = append(items, Item{
			Title:       m.Title,
			Link:        link,
			Description: m.Description,
			PubDate:     pubDate(m.PublishDate, logger),
			GUID:        GUID{Value: ItemID(link)},
		})
	}
	return RSS{
		Version: "2.0",
		Channel: Channel{
			Title:       site.Title,
			Link:        site.URL,
			Description: site.Description,
			Language:    site.Language,
			Items:       items,
		},
	}
}

// ItemID derives a stable item identifier from the item link.
func ItemID(link string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).URN()
}

func pubDate(date string, logger *slog.Logger) string {
	t, err := time.Parse(page.DateLayout, date)
	if err != nil {
		logger.Warn("Cannot parse publish date, using it verbatim", logfields.Date(date), logfields.Error(err))
		return date
	}
	return t.Format(PubDateLayout)
}

// Marshal serializes the feed with an XML declaration.
func (r RSS) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// Write stores the feed as rss.xml in outputDir.
func Write(outputDir string, r RSS) error {
	dst := filepath.Join(outputDir, FileName)
	data, err := r.Marshal()
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "encode feed").Fatal().WithPath(dst).Build()
	}
	if err := fsutil.WriteFile(dst, data); err != nil {
		return errors.WrapError(err, errors.CategoryIO, "write feed").Fatal().WithPath(dst).Build()
	}
	return nil
}
