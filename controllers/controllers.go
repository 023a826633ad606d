package controllers

import (
	"dental-forms-backend/admin"
	"dental-forms-backend/models"
	"dental-forms-backend/services"

	"gorm.io/gorm"
)

var (
	contactForms     *services.FormService[models.ContactForm, *models.ContactForm]
	applicationForms *services.FormService[models.ApplicationForm, *models.ApplicationForm]
)

// Sortable fields per collection, mapped to their columns. Anything else
// falls back to created_at.
var contactSortColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"phone":     "phone",
	"position":  "position",
	"city":      "city",
	"province":  "province",
	"country":   "country",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

var applicationSortColumns = map[string]string{
	"firstName":           "first_name",
	"lastName":            "last_name",
	"email":               "email",
	"phone":               "phone",
	"applicationPosition": "application_position",
	"status":              "status",
	"createdAt":           "created_at",
	"updatedAt":           "updated_at",
}

// Init builds both form services, registers the notification hooks
// (persist first, then notify, notify failure non-fatal) and binds the
// admin resources. Called once from main, and from tests with their own DB
// and notifier.
func Init(db *gorm.DB, notifier services.Notifier) {
	contactForms = services.NewFormService[models.ContactForm, *models.ContactForm](
		db, "position", models.ContactStatuses, contactSortColumns)
	applicationForms = services.NewFormService[models.ApplicationForm, *models.ApplicationForm](
		db, "application_position", models.ApplicationStatuses, applicationSortColumns)

	contactForms.OnCreated(notifier.NotifyContactCreated)
	contactForms.OnStatusChanged(func(f *models.ContactForm, oldStatus, newStatus string) {
		notifier.NotifyStatusChanged("contact", f.Id, f.FullName(), oldStatus, newStatus)
	})
	applicationForms.OnCreated(notifier.NotifyApplicationCreated)
	applicationForms.OnStatusChanged(func(f *models.ApplicationForm, oldStatus, newStatus string) {
		notifier.NotifyStatusChanged("application", f.Id, f.FullName(), oldStatus, newStatus)
	})

	admin.Bind(contactForms, applicationForms)
}
