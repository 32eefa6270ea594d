package export

import (
	"context"
	"errors"

	"resume-builder/pkg/resume"
)

// Content types for the two export formats.
const (
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypePDF  = "application/pdf"
)

// CapabilityError means the server cannot produce the requested format at
// all, as opposed to a render that was attempted and failed. Handlers turn
// it into a hint for the operator.
type CapabilityError struct {
	Hint string
}

func (e *CapabilityError) Error() string { return "export capability unavailable" }

// IsCapabilityError reports whether err is a capability failure.
func IsCapabilityError(err error) bool {
	var ce *CapabilityError
	return errors.As(err, &ce)
}

// File is a finished export: derived filename, content type and payload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service builds export files from loaded resume aggregates.
type Service struct {
	docx   *DocxRenderer
	raster Rasterizer
}

func NewService(docx *DocxRenderer, raster Rasterizer) *Service {
	return &Service{docx: docx, raster: raster}
}

// ExportDocx renders the aggregate as a Word document.
func (s *Service) ExportDocx(agg resume.Aggregate) (File, error) {
	if s.docx == nil {
		return File{}, &CapabilityError{Hint: "DOCX rendering is not enabled on this server"}
	}
	data, err := s.docx.Render(Build(agg))
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        SanitizeFilename(agg.Title) + ".docx",
		ContentType: ContentTypeDocx,
		Data:        data,
	}, nil
}

// ExportPDF renders the aggregate to HTML, screenshots it with a headless
// browser and slices the image into A4 pages.
func (s *Service) ExportPDF(ctx context.Context, agg resume.Aggregate) (File, error) {
	if s.raster == nil || !s.raster.Available() {
		return File{}, &CapabilityError{Hint: "install Chrome or set CHROME_PATH to enable PDF export"}
	}
	html, err := RenderHTML(Build(agg))
	if err != nil {
		return File{}, err
	}
	shot, err := s.raster.Screenshot(ctx, html)
	if err != nil {
		return File{}, err
	}
	data, err := BuildPDF(shot)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        SanitizeFilename(agg.Title) + ".pdf",
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}
