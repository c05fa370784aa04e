package rss

import (
	"fmt"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssDoc(items string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>Test feed</title>
<link>https://example.com</link>
<description>test</description>
%s
</channel>
</rss>`, items))
}

func TestImageHint_ItemImage(t *testing.T) {
	item := &gofeed.Item{
		Image:       &gofeed.Image{URL: "https://img.example.com/item.jpg"},
		Description: `<img src="https://img.example.com/body.jpg">`,
		Enclosures:  []*gofeed.Enclosure{{URL: "https://img.example.com/enc.jpg", Type: "image/jpeg"}},
	}

	got, ok := ImageHint(item)
	assert.True(t, ok)
	assert.Equal(t, "https://img.example.com/enc.jpg", got)

	item.Enclosures = nil
	got, ok = ImageHint(item)
	assert.True(t, ok)
	assert.Equal(t, "https://img.example.com/item.jpg", got)

	item.Image = &gofeed.Image{URL: "/relative.jpg"}
	got, ok = ImageHint(item)
	assert.True(t, ok)
	assert.Equal(t, "https://img.example.com/body.jpg", got)
}

func TestImageHint_ProbeOrder(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
		ok   bool
	}{
		{
			name: "media content wins",
			item: `<item><title>a</title><link>https://example.com/a</link>
<media:content url="https://img.example.com/content.jpg" medium="image"/>
<media:thumbnail url="https://img.example.com/thumb.jpg"/>
<enclosure url="https://img.example.com/enc.jpg" type="image/jpeg" length="1"/>
</item>`,
			want: "https://img.example.com/content.jpg",
			ok:   true,
		},
		{
			name: "thumbnail before enclosure",
			item: `<item><title>b</title><link>https://example.com/b</link>
<media:thumbnail url="https://img.example.com/thumb.jpg"/>
<enclosure url="https://img.example.com/enc.jpg" type="image/jpeg" length="1"/>
</item>`,
			want: "https://img.example.com/thumb.jpg",
			ok:   true,
		},
		{
			name: "image enclosure",
			item: `<item><title>c</title><link>https://example.com/c</link>
<enclosure url="https://cdn.example.com/ep.mp3" type="audio/mpeg" length="1"/>
<enclosure url="https://img.example.com/enc.png" type="image/png" length="1"/>
</item>`,
			want: "https://img.example.com/enc.png",
			ok:   true,
		},
		{
			name: "first img in description",
			item: `<item><title>d</title><link>https://example.com/d</link>
<description><![CDATA[<p>Intro</p><img src="https://img.example.com/body.jpg"><img src="https://img.example.com/second.jpg">]]></description>
</item>`,
			want: "https://img.example.com/body.jpg",
			ok:   true,
		},
		{
			name: "no image",
			item: `<item><title>e</title><link>https://example.com/e</link><description>plain text</description></item>`,
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseFeed(rssDoc(tt.item), 0)
			require.NoError(t, err)
			require.Len(t, items, 1)

			assert.Equal(t, tt.want, items[0].ImageHint)
		})
	}
}

func TestParseFeed(t *testing.T) {
	doc := rssDoc(`
<item><title>First</title><link>https://example.com/1</link><pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate><category>Go</category></item>
<item><title>No link</title></item>
<item><title>Second</title><link>https://example.com/2</link></item>
<item><title>Third</title><link>https://example.com/3</link></item>`)

	items, err := ParseFeed(doc, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "https://example.com/1", items[0].Link)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, []string{"Go"}, items[0].Categories)
	require.NotNil(t, items[0].PubDate)
	assert.Equal(t, 2006, items[0].PubDate.Year())

	assert.Equal(t, "https://example.com/2", items[1].Link)
	assert.Nil(t, items[1].PubDate)
}

func TestParseFeed_Invalid(t *testing.T) {
	_, err := ParseFeed([]byte("<html><body>not a feed</body></html>"), 0)

	assert.Error(t, err)
}
