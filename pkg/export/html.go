package export

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/resume.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html"))

// RenderHTML produces the print-ready page the rasterizer screenshots.
// The page is styled to an A4 pixel width so the PDF slicer can map pixel
// rows back to points.
func RenderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
