package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type SkillHandler struct {
	uc resume.SkillUseCase
}

func NewSkillHandler(uc resume.SkillUseCase) *SkillHandler { return &SkillHandler{uc: uc} }

type skillRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
	Category string `json:"category" validate:"required"`
	Items    string `json:"items" validate:"required"`
}

func (r skillRequest) toEntity() resume.Skill {
	return resume.Skill{
		ResumeID: uuid.MustParse(r.ResumeID),
		Category: r.Category,
		Items:    r.Items,
	}
}

// List returns one resume's skills ordered by their sort key.
// @Summary List skills
// @Tags    skills
// @Produce json
// @Param   resume_id query string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {array} resume.Skill
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /skills [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	resumeID, err := uuid.Parse(c.Query("resume_id"))
	if err != nil {
		return presenter.ValidationError(c, map[string]string{"resume_id": "must be a valid UUID"})
	}
	items, err := h.uc.List(c.Context(), ownerID, resumeID)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Create adds a skill group; its order key is assigned after the last one.
// @Summary Create skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   input body skillRequest true "skill payload"
// @Security BearerAuth
// @Success 201 {object} resume.Skill
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /skills [post]
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req skillRequest
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

// Get returns one skill group.
// @Summary Get skill
// @Tags    skills
// @Produce json
// @Param   id path string true "skill id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Skill
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [get]
func (h *SkillHandler) Get(c *fiber.Ctx) error {
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

// Update replaces a skill group's category and items; the order key is kept.
// @Summary Update skill
// @Tags    skills
// @Accept  json
// @Produce json
// @Param   id    path string       true "skill id (UUID)"
// @Param   input body skillRequest true "skill payload"
// @Security BearerAuth
// @Success 200 {object} resume.Skill
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /skills/{id} [put]
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req skillRequest
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

// Delete removes one skill group.
// @Summary Delete skill
// @Tags    skills
// @Produce json
// @Param   id path string true "skill id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /skills/{id} [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "skill deleted"})
}
