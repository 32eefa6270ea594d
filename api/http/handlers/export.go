package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/export"
	"resume-builder/pkg/resume"
)

// ExportHandler serves the downloadable renditions of a resume. The
// aggregate is loaded once per request, so both pages of a long render see
// the same snapshot.
type ExportHandler struct {
	resumes resume.UseCase
	exports *export.Service
}

func NewExportHandler(resumes resume.UseCase, exports *export.Service) *ExportHandler {
	return &ExportHandler{resumes: resumes, exports: exports}
}

// Docx streams the resume as a Word document.
// @Summary Export resume as DOCX
// @Tags    export
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} map[string]string
// @Router  /resumes/{id}/export-docx [get]
func (h *ExportHandler) Docx(c *fiber.Ctx) error {
	agg, errResp := h.loadAggregate(c)
	if errResp != nil {
		return errResp
	}
	file, err := h.exports.ExportDocx(agg)
	if err != nil {
		return exportError(c, err, "Failed to generate DOCX")
	}
	return sendFile(c, file)
}

// PDF streams the resume as a paginated PDF.
// @Summary Export resume as PDF
// @Tags    export
// @Produce application/pdf
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} map[string]string
// @Router  /resumes/{id}/export-pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	agg, errResp := h.loadAggregate(c)
	if errResp != nil {
		return errResp
	}
	file, err := h.exports.ExportPDF(c.Context(), agg)
	if err != nil {
		return exportError(c, err, "Failed to generate PDF")
	}
	return sendFile(c, file)
}

// loadAggregate authorizes the caller and loads the snapshot; a non-nil
// second value is the already-written error response.
func (h *ExportHandler) loadAggregate(c *fiber.Ctx) (resume.Aggregate, error) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return resume.Aggregate{}, unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resume.Aggregate{}, presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	agg, err := h.resumes.Get(c.Context(), ownerID, id)
	if err != nil {
		return resume.Aggregate{}, domainError(c, err)
	}
	return agg, nil
}

// exportError distinguishes a missing capability (the operator can fix it)
// from a render that was attempted and failed.
func exportError(c *fiber.Ctx, err error, what string) error {
	var ce *export.CapabilityError
	if errors.As(err, &ce) {
		return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{
			"error": what,
			"hint":  ce.Hint,
		})
	}
	return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{
		"error":   what,
		"message": err.Error(),
	})
}

func sendFile(c *fiber.Ctx, file export.File) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(file.Data)
}
