package export

import (
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drikayan/panchanga/recurrence"
)

func TestAtomFeedStructure(t *testing.T) {
	updated := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	occurrences := []recurrence.Occurrence{
		{Date: civil("2025-01-09")},
		{Date: civil("2025-02-07"), Note: "Ekadashi ends at 03:12"},
	}

	doc := Atom("Ekadashi", "urn:panchanga:ekadashi", updated, occurrences)

	feed := doc.FindElement("/feed")
	require.NotNil(t, feed)
	assert.Equal(t, "http://www.w3.org/2005/Atom", feed.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "Ekadashi", feed.FindElement("title").Text())
	assert.Equal(t, "urn:panchanga:ekadashi", feed.FindElement("id").Text())
	assert.Equal(t, "2025-01-01T06:00:00Z", feed.FindElement("updated").Text())

	entries := feed.FindElements("entry")
	require.Len(t, entries, 2)
	assert.Equal(t, "Ekadashi on 2025-01-09", entries[0].FindElement("title").Text())
	assert.Equal(t, "urn:panchanga:ekadashi/2025-02-07", entries[1].FindElement("id").Text())
	assert.Equal(t, "Ekadashi ends at 03:12", entries[1].FindElement("summary").Text())
	assert.Nil(t, entries[0].FindElement("summary"), "entries without a note carry no summary")
}

func TestWriteAtomWellFormed(t *testing.T) {
	doc := Atom("Ekadashi", "urn:panchanga:ekadashi", time.Now(),
		[]recurrence.Occurrence{{Date: civil("2025-01-09")}})

	var buf strings.Builder
	require.NoError(t, WriteAtom(&buf, doc))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromString(out))
	assert.NotNil(t, parsed.FindElement("/feed/entry"))
}
