package feed

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedHeader = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
<title>Test Podcast</title>
<link>https://example.com</link>
<description>A test feed</description>
`

const feedFooter = `</channel>
</rss>`

func itemXML(n int) string {
	return fmt.Sprintf(`<item>
<title>Episode %d</title>
<guid isPermaLink="false">guid-%d</guid>
<pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
<link>https://example.com/ep%d</link>
<description>Show notes for %d</description>
<itunes:duration>00:45:0%d</itunes:duration>
<itunes:image href="https://example.com/art%d.png"/>
<itunes:season>2</itunes:season>
<itunes:episode>%d</itunes:episode>
<enclosure url="https://example.com/audio%d.mp3" length="1024" type="audio/mpeg"/>
</item>
`, n, n, n, n, n, n, n, n)
}

func TestParse_SingleItem(t *testing.T) {
	parser := NewParser()

	episodes, err := parser.Parse(strings.NewReader(feedHeader + itemXML(1) + feedFooter))
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	ep := episodes[0]
	assert.Equal(t, "Episode 1", ep.Title)
	assert.Equal(t, "guid-1", ep.GUID)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 +0000", ep.PubDate)
	assert.Equal(t, "00:45:01", ep.Duration)
	assert.Equal(t, "Show notes for 1", ep.Description)
	assert.Equal(t, "https://example.com/ep1", ep.Link)
	assert.Equal(t, "https://example.com/art1.png", ep.ImageURL)
	assert.Equal(t, "https://example.com/audio1.mp3", ep.AudioURL)

	require.NotNil(t, ep.Season)
	assert.Equal(t, 2, *ep.Season)
	require.NotNil(t, ep.Episode)
	assert.Equal(t, 1, *ep.Episode)
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	parser := NewParser()

	var b strings.Builder
	b.WriteString(feedHeader)
	for i := 1; i <= 5; i++ {
		b.WriteString(itemXML(i))
	}
	b.WriteString(feedFooter)

	episodes, err := parser.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, episodes, 5)

	for i, ep := range episodes {
		assert.Equal(t, fmt.Sprintf("Episode %d", i+1), ep.Title)
	}
}

func TestParse_MissingOptionalFields(t *testing.T) {
	item := `<item>
<title>Bare Episode</title>
<guid>bare-guid</guid>
<enclosure url="https://example.com/bare.mp3" length="1" type="audio/mpeg"/>
</item>
`
	parser := NewParser()

	episodes, err := parser.Parse(strings.NewReader(feedHeader + item + feedFooter))
	require.NoError(t, err)
	require.Len(t, episodes, 1)

	ep := episodes[0]
	assert.Equal(t, "bare-guid", ep.GUID)
	assert.Empty(t, ep.ImageURL)
	assert.Empty(t, ep.Duration)
	assert.Nil(t, ep.Season)
	assert.Nil(t, ep.Episode)
}

func TestParse_MissingEnclosureKeepsEpisode(t *testing.T) {
	item := `<item>
<title>No Audio</title>
<guid>no-audio</guid>
</item>
`
	parser := NewParser()

	episodes, err := parser.Parse(strings.NewReader(feedHeader + item + feedFooter))
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Empty(t, episodes[0].AudioURL)
}

func TestParse_InvalidSeasonOmitted(t *testing.T) {
	item := `<item>
<title>Odd Season</title>
<guid>odd</guid>
<itunes:season>bonus</itunes:season>
<enclosure url="https://example.com/odd.mp3" length="1" type="audio/mpeg"/>
</item>
`
	parser := NewParser()

	episodes, err := parser.Parse(strings.NewReader(feedHeader + item + feedFooter))
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Nil(t, episodes[0].Season)
}

func TestParse_InvalidDocument(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse(strings.NewReader("this is not xml"))
	assert.Error(t, err)
}

func TestEpisodeJSON_OmitsAbsentSeason(t *testing.T) {
	ep := Episode{Title: "T", GUID: "g"}

	data, err := json.Marshal(ep)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "season")
	assert.NotContains(t, string(data), "episode\"")

	season := 3
	ep.Season = &season
	data, err = json.Marshal(ep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"season":3`)
}
