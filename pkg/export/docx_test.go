package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocxRendererProducesZipArchive(t *testing.T) {
	doc := Build(fullAggregate())

	out, err := NewDocxRenderer().Render(doc)
	require.NoError(t, err)
	// A .docx file is a ZIP container.
	assert.True(t, bytes.HasPrefix(out, []byte("PK")), "docx output should be a ZIP archive")
}

func TestDocxRendererEmitsBulletGlyphs(t *testing.T) {
	doc := &Document{
		Title: "Dev",
		Sections: []Section{{Heading: "Experience", Entries: []Entry{{
			Title:   "Engineer",
			Bullets: []string{"Shipped the exporter", "Cut build times"},
		}}}},
	}
	out, err := NewDocxRenderer().Render(doc)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		body = string(data)
	}
	require.NotEmpty(t, body, "word/document.xml missing from archive")
	assert.Contains(t, body, "• Shipped the exporter")
	assert.Contains(t, body, "• Cut build times")
}

func TestDocxRendererHandlesEmptyDocument(t *testing.T) {
	out, err := NewDocxRenderer().Render(&Document{Title: "Empty"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
