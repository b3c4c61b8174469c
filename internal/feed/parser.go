// Package feed fetches podcast RSS documents and normalizes their items
// into Episode records.
package feed

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Parser converts raw RSS markup into Episode records
type Parser struct {
	inner *gofeed.Parser
}

// NewParser creates a new feed parser
func NewParser() *Parser {
	return &Parser{inner: gofeed.NewParser()}
}

// Parse reads an RSS document and returns its episodes in document order.
// Items without an enclosure are kept with an empty AudioURL; the caller
// decides whether that is worth a warning.
func (p *Parser) Parse(r io.Reader) ([]Episode, error) {
	parsed, err := p.inner.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	episodes := make([]Episode, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		episodes = append(episodes, normalizeItem(item))
	}
	return episodes, nil
}

func normalizeItem(item *gofeed.Item) Episode {
	ep := Episode{
		Title:       item.Title,
		GUID:        item.GUID,
		PubDate:     item.Published,
		Description: item.Description,
		Link:        item.Link,
	}

	if itunes := item.ITunesExt; itunes != nil {
		ep.Duration = itunes.Duration
		ep.ImageURL = itunes.Image
		ep.Season = parseOptionalInt(itunes.Season)
		ep.Episode = parseOptionalInt(itunes.Episode)
	}

	// Fall back to the item-level image when the iTunes one is absent.
	if ep.ImageURL == "" && item.Image != nil {
		ep.ImageURL = item.Image.URL
	}

	if len(item.Enclosures) > 0 {
		ep.AudioURL = item.Enclosures[0].URL
	}

	return ep
}

// parseOptionalInt returns nil unless s holds a non-negative integer.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
