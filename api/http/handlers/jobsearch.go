package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"resume-builder/api/http/presenter"
	"resume-builder/pkg/jobsearch"
)

type JobHandler struct {
	uc jobsearch.UseCase
}

func NewJobHandler(uc jobsearch.UseCase) *JobHandler { return &JobHandler{uc: uc} }

// Search proxies a job search to the upstream provider.
// @Summary Search jobs
// @Tags    jobs
// @Produce json
// @Param   role     query string false "role keywords"
// @Param   location query string false "location"
// @Param   salary   query int    false "minimum salary"
// @Param   type     query string false "employment type"
// @Param   site     query string false "job site filter (substring)"
// @Param   page     query int    false "page, 1-based"
// @Success 200 {object} map[string][]jobsearch.Job
// @Failure 500 {object} map[string]any
// @Failure 504 {object} map[string]any
// @Router  /job-search [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	q := jobsearch.Query{
		Role:       c.Query("role"),
		Experience: c.Query("experience"),
		Location:   c.Query("location"),
		Salary:     c.QueryInt("salary"),
		Type:       c.Query("type"),
		Site:       c.Query("site"),
		Page:       c.QueryInt("page", 1),
	}
	jobs, err := h.uc.Search(c.Context(), q)
	if err != nil {
		var ue *jobsearch.UpstreamError
		switch {
		case errors.As(err, &ue):
			// Pass the upstream status and body through unchanged.
			return presenter.JSON(c, ue.Status, fiber.Map{
				"error":   "Failed to fetch jobs",
				"details": ue.Details,
			})
		case errors.Is(err, jobsearch.ErrUpstreamTimeout):
			return presenter.JSON(c, http.StatusGatewayTimeout, fiber.Map{
				"error": "Job search timed out, please retry",
			})
		case errors.Is(err, jobsearch.ErrNoAPIKey):
			return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{
				"error": "RAPIDAPI_KEY is not configured",
			})
		default:
			return presenter.JSON(c, http.StatusInternalServerError, fiber.Map{
				"error":   "Failed to fetch jobs",
				"details": err.Error(),
			})
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobs": jobs})
}

// MasterData returns the static reference lists used by search forms.
// @Summary Job master data
// @Tags    jobs
// @Produce json
// @Success 200 {object} jobsearch.MasterData
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /job-master-data [get]
func (h *JobHandler) MasterData(c *fiber.Ctx) error {
	md, err := h.uc.MasterData(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load job master data")
	}
	return presenter.JSON(c, http.StatusOK, md)
}
