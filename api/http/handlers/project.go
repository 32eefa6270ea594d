package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type ProjectHandler struct {
	uc resume.ProjectUseCase
}

func NewProjectHandler(uc resume.ProjectUseCase) *ProjectHandler { return &ProjectHandler{uc: uc} }

type projectRequest struct {
	ResumeID     string `json:"resume_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Technologies string `json:"technologies"`
	Link         string `json:"link" validate:"omitempty,url"`
}

func (r projectRequest) toEntity() resume.Project {
	return resume.Project{
		ResumeID:     uuid.MustParse(r.ResumeID),
		Name:         r.Name,
		Description:  r.Description,
		Technologies: r.Technologies,
		Link:         r.Link,
	}
}

// List returns every project across the caller's resumes.
// @Summary List projects
// @Tags    projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Project
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
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

// Create adds a project to one of the caller's resumes.
// @Summary Create project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   input body projectRequest true "project payload"
// @Security BearerAuth
// @Success 201 {object} resume.Project
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req projectRequest
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

// Get returns one project.
// @Summary Get project
// @Tags    projects
// @Produce json
// @Param   id path string true "project id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Project
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
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

// Update replaces a project's fields.
// @Summary Update project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   id    path string         true "project id (UUID)"
// @Param   input body projectRequest true "project payload"
// @Security BearerAuth
// @Success 200 {object} resume.Project
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req projectRequest
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

// Delete removes one project.
// @Summary Delete project
// @Tags    projects
// @Produce json
// @Param   id path string true "project id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "project deleted"})
}
