package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type ExperienceHandler struct {
	uc resume.ExperienceUseCase
}

func NewExperienceHandler(uc resume.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

type experienceRequest struct {
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
	JobTitle         string `json:"job_title" validate:"required"`
	Company          string `json:"company" validate:"required"`
	StartDate        string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	CurrentlyWorking bool   `json:"currently_working"`
	Description      string `json:"description"`
}

func (r experienceRequest) toEntity() resume.Experience {
	return resume.Experience{
		ResumeID:         uuid.MustParse(r.ResumeID),
		JobTitle:         r.JobTitle,
		Company:          r.Company,
		StartDate:        parseDate(r.StartDate),
		EndDate:          parseOptionalDate(r.EndDate),
		CurrentlyWorking: r.CurrentlyWorking,
		Description:      r.Description,
	}
}

// List returns every experience across the caller's resumes.
// @Summary List experiences
// @Tags    experiences
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Experience
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /experiences [get]
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
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

// Create adds an experience to one of the caller's resumes.
// @Summary Create experience
// @Tags    experiences
// @Accept  json
// @Produce json
// @Param   input body experienceRequest true "experience payload"
// @Security BearerAuth
// @Success 201 {object} resume.Experience
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /experiences [post]
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req experienceRequest
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

// Get returns one experience.
// @Summary Get experience
// @Tags    experiences
// @Produce json
// @Param   id path string true "experience id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Experience
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /experiences/{id} [get]
func (h *ExperienceHandler) Get(c *fiber.Ctx) error {
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

// Update replaces an experience's fields.
// @Summary Update experience
// @Tags    experiences
// @Accept  json
// @Produce json
// @Param   id    path string            true "experience id (UUID)"
// @Param   input body experienceRequest true "experience payload"
// @Security BearerAuth
// @Success 200 {object} resume.Experience
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /experiences/{id} [put]
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req experienceRequest
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

// Delete removes one experience.
// @Summary Delete experience
// @Tags    experiences
// @Produce json
// @Param   id path string true "experience id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "experience deleted"})
}
