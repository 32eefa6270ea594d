package http

import (
	"github.com/gofiber/fiber/v2"

	"resume-builder/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	resumes *handlers.ResumeHandler,
	experiences *handlers.ExperienceHandler,
	projects *handlers.ProjectHandler,
	skills *handlers.SkillHandler,
	educations *handlers.EducationHandler,
	certifications *handlers.CertificationHandler,
	exports *handlers.ExportHandler,
	jobs *handlers.JobHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Job search is public: it serves the landing page before login.
	v1.Get("/job-search", jobs.Search)
	v1.Get("/job-master-data", jobs.MasterData)

	// Everything below requires a Bearer token.
	r := v1.Group("/resumes", authMW)
	r.Get("/", resumes.List)
	r.Post("/", resumes.Create)
	r.Get("/:id", resumes.Get)
	r.Put("/:id", resumes.Update)
	r.Delete("/:id", resumes.Delete)
	r.Get("/:id/export-docx", exports.Docx)
	r.Get("/:id/export-pdf", exports.PDF)

	registerSection(v1.Group("/experiences", authMW), experiences.List, experiences.Create, experiences.Get, experiences.Update, experiences.Delete)
	registerSection(v1.Group("/projects", authMW), projects.List, projects.Create, projects.Get, projects.Update, projects.Delete)
	registerSection(v1.Group("/skills", authMW), skills.List, skills.Create, skills.Get, skills.Update, skills.Delete)
	registerSection(v1.Group("/educations", authMW), educations.List, educations.Create, educations.Get, educations.Update, educations.Delete)
	registerSection(v1.Group("/certifications", authMW), certifications.List, certifications.Create, certifications.Get, certifications.Update, certifications.Delete)
}

// registerSection lays out the uniform CRUD surface shared by all resume
// child collections.
func registerSection(g fiber.Router, list, create, get, update, del fiber.Handler) {
	g.Get("/", list)
	g.Post("/", create)
	g.Get("/:id", get)
	g.Put("/:id", update)
	g.Delete("/:id", del)
}
