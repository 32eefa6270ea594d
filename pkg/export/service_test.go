package export

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	available bool
	shot      []byte
	lastHTML  string
}

func (f *fakeRasterizer) Available() bool { return f.available }

func (f *fakeRasterizer) Screenshot(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	return f.shot, nil
}

func smallScreenshot(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1190, 100))))
	return buf.Bytes()
}

func TestExportDocxFilename(t *testing.T) {
	svc := NewService(NewDocxRenderer(), nil)
	agg := fullAggregate()
	agg.Title = "My Resume! (v2)"

	file, err := svc.ExportDocx(agg)
	require.NoError(t, err)
	assert.Equal(t, "My_Resume_v2.docx", file.Name)
	assert.Equal(t, ContentTypeDocx, file.ContentType)
	assert.NotEmpty(t, file.Data)
}

func TestExportDocxWithoutRenderer(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.ExportDocx(fullAggregate())
	assert.True(t, IsCapabilityError(err))
}

func TestExportPDFWithoutBrowser(t *testing.T) {
	svc := NewService(NewDocxRenderer(), &fakeRasterizer{available: false})
	_, err := svc.ExportPDF(context.Background(), fullAggregate())
	assert.True(t, IsCapabilityError(err))
}

func TestExportPDF(t *testing.T) {
	raster := &fakeRasterizer{available: true, shot: smallScreenshot(t)}
	svc := NewService(NewDocxRenderer(), raster)

	file, err := svc.ExportPDF(context.Background(), fullAggregate())
	require.NoError(t, err)
	assert.Equal(t, "Backend_Engineer.pdf", file.Name)
	assert.Equal(t, ContentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))

	// The rasterizer received the rendered page, not raw data.
	assert.Contains(t, raster.lastHTML, "resume-page")
	assert.Contains(t, raster.lastHTML, "Backend Engineer")
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	doc := &Document{
		Title: "Dev <script>alert(1)</script>",
		Sections: []Section{
			{Heading: "Skills", Entries: []Entry{{Text: "Go & SQL"}}},
		},
	}
	html, err := RenderHTML(doc)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert"))
	assert.Contains(t, html, "Go &amp; SQL")
}
