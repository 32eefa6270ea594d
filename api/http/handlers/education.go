package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type EducationHandler struct {
	uc resume.EducationUseCase
}

func NewEducationHandler(uc resume.EducationUseCase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

type educationRequest struct {
	ResumeID       string   `json:"resume_id" validate:"required,uuid"`
	Degree         string   `json:"degree" validate:"required"`
	FieldOfStudy   string   `json:"field_of_study"`
	School         string   `json:"school" validate:"required"`
	GraduationYear *int     `json:"graduation_year" validate:"omitempty,gte=1900,lte=2100"`
	GradingType    string   `json:"grading_type" validate:"required_with=Grade,omitempty,oneof=percentage cgpa"`
	Grade          *float64 `json:"grade" validate:"omitempty,gte=0,lte=100"`
}

func (r educationRequest) toEntity() resume.Education {
	return resume.Education{
		ResumeID:       uuid.MustParse(r.ResumeID),
		Degree:         r.Degree,
		FieldOfStudy:   r.FieldOfStudy,
		School:         r.School,
		GraduationYear: r.GraduationYear,
		GradingType:    r.GradingType,
		Grade:          r.Grade,
	}
}

// List returns every education entry across the caller's resumes.
// @Summary List educations
// @Tags    educations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Education
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /educations [get]
func (h *EducationHandler) List(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	items, err := h.uc.List(c.Context(), ownerID)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Create adds an education entry to one of the caller's resumes.
// @Summary Create education
// @Tags    educations
// @Accept  json
// @Produce json
// @Param   input body educationRequest true "education payload"
// @Security BearerAuth
// @Success 201 {object} resume.Education
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /educations [post]
func (h *EducationHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.ValidationError(c, fieldErrors(err))
	}
	out, err := h.uc.Create(c.Context(), ownerID, req.toEntity())
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns one education entry.
// @Summary Get education
// @Tags    educations
// @Produce json
// @Param   id path string true "education id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Education
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /educations/{id} [get]
func (h *EducationHandler) Get(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	out, err := h.uc.Get(c.Context(), ownerID, id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Update replaces an education entry's fields.
// @Summary Update education
// @Tags    educations
// @Accept  json
// @Produce json
// @Param   id    path string           true "education id (UUID)"
// @Param   input body educationRequest true "education payload"
// @Security BearerAuth
// @Success 200 {object} resume.Education
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /educations/{id} [put]
func (h *EducationHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.ValidationError(c, fieldErrors(err))
	}
	entity := req.toEntity()
	entity.ID = id
	out, err := h.uc.Update(c.Context(), ownerID, entity)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Delete removes one education entry.
// @Summary Delete education
// @Tags    educations
// @Produce json
// @Param   id path string true "education id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /educations/{id} [delete]
func (h *EducationHandler) Delete(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), ownerID, id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "education deleted"})
}
