package feedparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detect(t *testing.T, xml string) Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(xml))
	require.NoError(t, err)
	return Detect(doc)
}

func TestDetectRSS2(t *testing.T) {
	d := detect(t, `<rss version="2.0"><channel><title>t</title><item><title>a</title></item></channel></rss>`)
	assert.Equal(t, DialectRSS2, d.Dialect)
	assert.Equal(t, "t", d.Channel.ChildText("title"))
	assert.Len(t, d.Entries, 1)
}

func TestDetectAtom(t *testing.T) {
	d := detect(t, `<feed xmlns="http://www.w3.org/2005/Atom"><title>t</title><entry><title>a</title></entry></feed>`)
	assert.Equal(t, DialectAtom, d.Dialect)
	assert.Len(t, d.Entries, 1)
}

func TestDetectRDFVariantA(t *testing.T) {
	// チャンネルとアイテムが兄弟要素になる素のrdfルート
	d := detect(t, `<rdf><channel><title>t</title></channel><item><title>a</title></item><item><title>b</title></item></rdf>`)
	assert.Equal(t, DialectRDFA, d.Dialect)
	assert.Equal(t, "t", d.Channel.ChildText("title"))
	assert.Len(t, d.Entries, 2)
}

func TestDetectRDFVariantB(t *testing.T) {
	d := detect(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/">
		<channel><title>t</title></channel>
		<item><title>a</title></item>
	</rdf:RDF>`)
	assert.Equal(t, DialectRDFB, d.Dialect)
	assert.Equal(t, "t", d.Channel.ChildText("title"))
	assert.Len(t, d.Entries, 1)
}

func TestDetectRDFVariantBPrefixedChannel(t *testing.T) {
	d := detect(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
		<channel:channel><title>t</title></channel:channel>
		<item><title>a</title></item>
	</rdf:RDF>`)
	assert.Equal(t, DialectRDFB, d.Dialect)
	assert.Equal(t, "t", d.Channel.ChildText("title"))
}

func TestDetectRDFVariantBMissingChannel(t *testing.T) {
	d := detect(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><item><title>a</title></item></rdf:RDF>`)
	assert.Equal(t, DialectRDFB, d.Dialect)
	require.NotNil(t, d.Channel)
	assert.Empty(t, d.Channel.ChildText("title"))
	assert.Len(t, d.Entries, 1)
}

func TestDetectUnrecognized(t *testing.T) {
	d := detect(t, `<html><body>not a feed</body></html>`)
	assert.Equal(t, DialectUnrecognized, d.Dialect)
}

func TestDetectRSSWithoutChannelFallsThrough(t *testing.T) {
	// rssルートでもchannelが無ければ一致しない
	d := detect(t, `<rss version="2.0"></rss>`)
	assert.Equal(t, DialectUnrecognized, d.Dialect)
}
