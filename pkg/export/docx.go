package export

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
)

// Run sizes are half-points: "40" is 20pt.
const (
	sizeTitle   = "40"
	sizeHeading = "28"
	sizeBody    = "22"
	sizeSmall   = "20"
)

// DocxRenderer emits a Document as a Word file. The layout is a flat run of
// paragraphs; Word applies its own default margins and fonts.
type DocxRenderer struct{}

func NewDocxRenderer() *DocxRenderer { return &DocxRenderer{} }

func (r *DocxRenderer) Render(doc *Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(doc.Title).Size(sizeTitle).Bold()
	if len(doc.Contacts) > 0 {
		w.AddParagraph().AddText(strings.Join(doc.Contacts, " | ")).Size(sizeSmall)
	}

	for _, sec := range doc.Sections {
		// Blank paragraph keeps sections visually apart.
		w.AddParagraph()
		w.AddParagraph().AddText(sec.Heading).Size(sizeHeading).Bold()
		for _, e := range sec.Entries {
			if e.Title != "" {
				w.AddParagraph().AddText(e.Title).Size(sizeBody).Bold()
			}
			if e.DateRange != "" {
				w.AddParagraph().AddText(e.DateRange).Size(sizeSmall).Italic()
			}
			if e.Text != "" {
				w.AddParagraph().AddText(e.Text).Size(sizeBody)
			}
			if e.Meta != "" {
				w.AddParagraph().AddText(e.Meta).Size(sizeSmall)
			}
			// go-docx writes no numbering part, so list entries are body
			// paragraphs carrying a literal bullet glyph.
			for _, b := range e.Bullets {
				w.AddParagraph().AddText("• " + b).Size(sizeBody)
			}
			if e.Link != "" {
				w.AddParagraph().AddText(e.Link).Size(sizeSmall)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
