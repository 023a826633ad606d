package routes

import (
	"github.com/gofiber/fiber/v2"

	"dental-forms-backend/controllers"
	"dental-forms-backend/middlewares"
)

// Register wires all HTTP routes. Public form APIs come first; the admin
// group is mounted separately after them.
func Register(app *fiber.App) {
	app.Get("/", controllers.Root)
	app.Get("/health", controllers.Health)

	api := app.Group("/api")

	// Contact inquiries
	contact := api.Group("/contact-forms")
	contact.Post("/", controllers.CreateContactForm)
	contact.Get("/", controllers.ListContactForms)
	contact.Get("/stats/overview", controllers.ContactFormStats)
	contact.Get("/:id", controllers.GetContactForm)
	contact.Put("/:id", controllers.UpdateContactForm)
	contact.Delete("/:id", controllers.DeleteContactForm)

	// Job applications (multipart create, CV download)
	apps := api.Group("/application-forms")
	apps.Post("/", controllers.CreateApplicationForm)
	apps.Get("/", controllers.ListApplicationForms)
	apps.Get("/stats/overview", controllers.ApplicationFormStats)
	apps.Get("/:id/download-cv", controllers.DownloadApplicationCv)
	apps.Get("/:id", controllers.GetApplicationForm)
	apps.Put("/:id", controllers.UpdateApplicationForm)
	apps.Delete("/:id", controllers.DeleteApplicationForm)

	// Admin surface (JWT cookie gated)
	adm := app.Group("/admin")
	adm.Post("/login", controllers.AdminLogin)
	adm.Post("/logout", controllers.AdminLogout)

	protected := adm.Group("")
	protected.Use(middlewares.IsAdmin())
	protected.Get("/me", controllers.AdminMe)
	protected.Get("/resources", controllers.AdminListResources)
	protected.Get("/resources/:resource/records", controllers.AdminListRecords)
	protected.Get("/resources/:resource/records/:id", controllers.AdminGetRecord)
	protected.Put("/resources/:resource/records/:id", controllers.AdminUpdateRecord)
	protected.Delete("/resources/:resource/records/:id", controllers.AdminDeleteRecord)
}
