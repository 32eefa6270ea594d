package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type ResumeHandler struct {
	uc resume.UseCase
}

func NewResumeHandler(uc resume.UseCase) *ResumeHandler { return &ResumeHandler{uc: uc} }

type resumeRequest struct {
	Title    string `json:"title" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	GitHub   string `json:"github" validate:"omitempty,url"`
	Summary  string `json:"summary"`
}

func (r resumeRequest) toEntity() resume.Resume {
	return resume.Resume{
		Title:    r.Title,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
		LinkedIn: r.LinkedIn,
		GitHub:   r.GitHub,
		Summary:  r.Summary,
	}
}

// List returns the caller's resumes, newest first.
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Param   limit  query int false "page size (max 100)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	limit, offset := parseLimitOffset(c)
	items, err := h.uc.List(c.Context(), ownerID, limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Create stores a new resume for the caller.
// @Summary Create resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   input body resumeRequest true "resume payload"
// @Security BearerAuth
// @Success 201 {object} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /resumes [post]
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req resumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.ValidationError(c, fieldErrors(err))
	}

	entity := req.toEntity()
	entity.UserID = ownerID
	out, err := h.uc.Create(c.Context(), entity)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// Get returns one resume with all child collections.
// @Summary Get resume aggregate
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Aggregate
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
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

// Update replaces the resume's own fields; children are untouched.
// @Summary Update resume
// @Tags    resumes
// @Accept  json
// @Produce json
// @Param   id    path string        true "resume id (UUID)"
// @Param   input body resumeRequest true "resume payload"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /resumes/{id} [put]
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req resumeRequest
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

// Delete removes the resume and, by cascade, all of its children.
// @Summary Delete resume
// @Tags    resumes
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 204 {string} string ""
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
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
	return c.SendStatus(http.StatusNoContent)
}
