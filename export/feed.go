package export

import (
	"fmt"
	"io"
	"time"

	"github.com/beevik/etree"

	"github.com/drikayan/panchanga/recurrence"
)

const atomNS = "http://www.w3.org/2005/Atom"

// Atom builds an Atom feed document listing the occurrences. baseURL is
// used as the feed id and the prefix for entry ids; updated stamps the
// feed and its entries.
func Atom(title, baseURL string, updated time.Time, occurrences []recurrence.Occurrence) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", atomNS)
	feed.CreateElement("title").SetText(title)
	feed.CreateElement("id").SetText(baseURL)
	feed.CreateElement("updated").SetText(updated.UTC().Format(time.RFC3339))
	link := feed.CreateElement("link")
	link.CreateAttr("href", baseURL)

	for _, occ := range occurrences {
		date := occ.Date.Format("2006-01-02")

		entry := feed.CreateElement("entry")
		entry.CreateElement("title").SetText(fmt.Sprintf("%s on %s", title, date))
		entry.CreateElement("id").SetText(baseURL + "/" + date)
		entry.CreateElement("updated").SetText(updated.UTC().Format(time.RFC3339))
		if occ.Note != "" {
			entry.CreateElement("summary").SetText(occ.Note)
		}
	}
	return doc
}

// WriteAtom serializes the feed document.
func WriteAtom(w io.Writer, doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
