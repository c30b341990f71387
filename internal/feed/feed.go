package feed

import (
	"encoding/xml"
	"fmt"
)

// ItunesNS is the iTunes podcast extension namespace.
const ItunesNS = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// Language is the channel language; every feed this tool emits is tagged
// the same way.
const Language = "en-US"

// Item is one episode entry, in document order.
type Item struct {
	Title       string    `xml:"title"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate,omitempty"`
	Enclosure   Enclosure `xml:"enclosure"`
	GUID        string    `xml:"guid"`
	Duration    string    `xml:"itunes:duration,omitempty"`
}

// Enclosure points at the episode audio.
type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Image is the classic RSS channel image block.
type Image struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

// itunesImage carries the artwork URL in its href attribute.
type itunesImage struct {
	Href string `xml:"href,attr"`
}

// Channel describes one playlist's feed metadata. Fields hold raw text;
// escaping happens exactly once, in Render.
type Channel struct {
	Title       string
	Link        string
	Description string
	// ArtworkURL is optional; when empty the feed carries no artwork
	// elements at all.
	ArtworkURL string
}

type xmlChannel struct {
	Title       string       `xml:"title"`
	Link        string       `xml:"link"`
	Description string       `xml:"description"`
	Language    string       `xml:"language"`
	ItunesImage *itunesImage `xml:"itunes:image"`
	Image       *Image       `xml:"image"`
	Items       []Item       `xml:"item"`
}

type document struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Itunes  string      `xml:"xmlns:itunes,attr"`
	Channel *xmlChannel `xml:"channel"`
}

// Render produces the complete feed document: XML declaration, rss
// envelope with the itunes namespace declared, channel metadata, then the
// items in the order given. Output is deterministic for identical input.
func Render(ch Channel, items []Item) ([]byte, error) {
	xc := &xmlChannel{
		Title:       ch.Title,
		Link:        ch.Link,
		Description: ch.Description,
		Language:    Language,
		Items:       items,
	}
	if ch.ArtworkURL != "" {
		xc.ItunesImage = &itunesImage{Href: ch.ArtworkURL}
		xc.Image = &Image{URL: ch.ArtworkURL, Title: ch.Title, Link: ch.Link}
	}

	doc := document{Version: "2.0", Itunes: ItunesNS, Channel: xc}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// ChannelDescription builds the fixed description for a playlist channel.
func ChannelDescription(playlistName string) string {
	return fmt.Sprintf("Auto-generated podcast from YouTube playlist %s", playlistName)
}

// Filename returns the output filename for a playlist slug.
func Filename(slug string) string {
	return "feed-" + slug + ".xml"
}
