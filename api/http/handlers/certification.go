package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/resume"
)

type CertificationHandler struct {
	uc resume.CertificationUseCase
}

func NewCertificationHandler(uc resume.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

type certificationRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
	Name     string `json:"name" validate:"required"`
	Issuer   string `json:"issuer" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Link     string `json:"link" validate:"omitempty,url"`
}

func (r certificationRequest) toEntity() resume.Certification {
	return resume.Certification{
		ResumeID: uuid.MustParse(r.ResumeID),
		Name:     r.Name,
		Issuer:   r.Issuer,
		Date:     parseDate(r.Date),
		Link:     r.Link,
	}
}

// List returns every certification across the caller's resumes.
// @Summary List certifications
// @Tags    certifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Certification
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /certifications [get]
func (h *CertificationHandler) List(c *fiber.Ctx) error {
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

// Create adds a certification to one of the caller's resumes.
// @Summary Create certification
// @Tags    certifications
// @Accept  json
// @Produce json
// @Param   input body certificationRequest true "certification payload"
// @Security BearerAuth
// @Success 201 {object} resume.Certification
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /certifications [post]
func (h *CertificationHandler) Create(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	var req certificationRequest
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

// Get returns one certification.
// @Summary Get certification
// @Tags    certifications
// @Produce json
// @Param   id path string true "certification id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Certification
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /certifications/{id} [get]
func (h *CertificationHandler) Get(c *fiber.Ctx) error {
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

// Update replaces a certification's fields.
// @Summary Update certification
// @Tags    certifications
// @Accept  json
// @Produce json
// @Param   id    path string               true "certification id (UUID)"
// @Param   input body certificationRequest true "certification payload"
// @Security BearerAuth
// @Success 200 {object} resume.Certification
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ValidationResponse
// @Router  /certifications/{id} [put]
func (h *CertificationHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req certificationRequest
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

// Delete removes one certification.
// @Summary Delete certification
// @Tags    certifications
// @Produce json
// @Param   id path string true "certification id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "certification deleted"})
}
