// Package admin exposes the two form collections to the management frontend
// through explicit per-entity resource descriptors instead of reflection.
// Each descriptor carries the field metadata a generic admin renderer needs
// (visibility per view, enum values) plus operations bound to the owning
// form service, so the admin surface shares the exact update/delete
// semantics of the public API.
package admin

import (
	"dental-forms-backend/models"
	"dental-forms-backend/services"
)

// Property describes one field of a resource for rendering purposes.
type Property struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"` // string | textarea | boolean | enum | datetime | file
	AvailableValues []string `json:"availableValues,omitempty"`
}

// Resource is the descriptor plus bound data operations for one collection.
// Only the metadata half is serialized to the frontend.
type Resource struct {
	Name             string     `json:"name"`
	TitleField       string     `json:"titleField"`
	PositionField    string     `json:"positionField"`
	Properties       []Property `json:"properties"`
	ListProperties   []string   `json:"listProperties"`
	FilterProperties []string   `json:"filterProperties"`
	ShowProperties   []string   `json:"showProperties"`
	EditProperties   []string   `json:"editProperties"`

	List   func(q services.ListQuery) (interface{}, services.Pagination, error) `json:"-"`
	Get    func(id string) (interface{}, error)                                 `json:"-"`
	Update func(id string, status, notes *string) (interface{}, error)          `json:"-"`
	Delete func(id string) error                                                `json:"-"`
}

// ValidStatus reports whether value belongs to the resource's status enum.
func (r *Resource) ValidStatus(value string) bool {
	for _, p := range r.Properties {
		if p.Name != "status" {
			continue
		}
		for _, v := range p.AvailableValues {
			if v == value {
				return true
			}
		}
	}
	return false
}

var registry = map[string]*Resource{}

func register(r *Resource) { registry[r.Name] = r }

// Lookup returns the resource registered under name.
func Lookup(name string) (*Resource, bool) {
	r, ok := registry[name]
	return r, ok
}

// All returns every registered resource, contact forms first.
func All() []*Resource {
	out := make([]*Resource, 0, len(registry))
	for _, name := range []string{"contact-forms", "application-forms"} {
		if r, ok := registry[name]; ok {
			out = append(out, r)
		}
	}
	return out
}

type contactService = services.FormService[models.ContactForm, *models.ContactForm]
type applicationService = services.FormService[models.ApplicationForm, *models.ApplicationForm]

// Bind registers both form collections against their services.
func Bind(contacts *contactService, applications *applicationService) {
	register(&Resource{
		Name:          "contact-forms",
		TitleField:    "firstName",
		PositionField: "position",
		Properties: []Property{
			{Name: "id", Type: "string"},
			{Name: "firstName", Type: "string"},
			{Name: "lastName", Type: "string"},
			{Name: "email", Type: "string"},
			{Name: "phone", Type: "string"},
			{Name: "position", Type: "enum", AvailableValues: models.ContactPositions},
			{Name: "status", Type: "enum", AvailableValues: models.ContactStatuses},
			{Name: "city", Type: "string"},
			{Name: "province", Type: "string"},
			{Name: "country", Type: "string"},
			{Name: "message", Type: "textarea"},
			{Name: "contactDays", Type: "string"},
			{Name: "privacyAccepted", Type: "boolean"},
			{Name: "newsletterConsent", Type: "boolean"},
			{Name: "notes", Type: "textarea"},
			{Name: "createdAt", Type: "datetime"},
			{Name: "updatedAt", Type: "datetime"},
		},
		ListProperties:   []string{"firstName", "lastName", "email", "phone", "position", "city", "status", "createdAt"},
		FilterProperties: []string{"firstName", "lastName", "email", "status", "position", "city", "country", "createdAt"},
		ShowProperties: []string{
			"firstName", "lastName", "email", "phone", "position",
			"city", "province", "country", "message", "contactDays",
			"status", "notes", "privacyAccepted", "newsletterConsent",
			"createdAt", "updatedAt",
		},
		EditProperties: []string{"status", "notes"},
		List: func(q services.ListQuery) (interface{}, services.Pagination, error) {
			records, p, err := contacts.List(q)
			return records, p, err
		},
		Get: func(id string) (interface{}, error) { return contacts.Get(id) },
		Update: func(id string, status, notes *string) (interface{}, error) {
			return contacts.UpdateStatusAndNotes(id, status, notes)
		},
		Delete: contacts.Delete,
	})

	register(&Resource{
		Name:          "application-forms",
		TitleField:    "firstName",
		PositionField: "applicationPosition",
		Properties: []Property{
			{Name: "id", Type: "string"},
			{Name: "firstName", Type: "string"},
			{Name: "lastName", Type: "string"},
			{Name: "email", Type: "string"},
			{Name: "phone", Type: "string"},
			{Name: "applicationPosition", Type: "enum", AvailableValues: models.ApplicationPositions},
			{Name: "status", Type: "enum", AvailableValues: models.ApplicationStatuses},
			{Name: "contactHours", Type: "string"},
			{Name: "message", Type: "textarea"},
			{Name: "cvFile", Type: "file"},
			{Name: "privacyAccepted", Type: "boolean"},
			{Name: "notes", Type: "textarea"},
			{Name: "createdAt", Type: "datetime"},
			{Name: "updatedAt", Type: "datetime"},
		},
		ListProperties:   []string{"firstName", "lastName", "email", "phone", "applicationPosition", "status", "createdAt"},
		FilterProperties: []string{"firstName", "lastName", "email", "status", "applicationPosition", "createdAt"},
		ShowProperties: []string{
			"firstName", "lastName", "email", "phone", "applicationPosition",
			"contactHours", "message", "cvFile", "status", "notes",
			"privacyAccepted", "createdAt", "updatedAt",
		},
		EditProperties: []string{"status", "notes"},
		List: func(q services.ListQuery) (interface{}, services.Pagination, error) {
			records, p, err := applications.List(q)
			return records, p, err
		},
		Get: func(id string) (interface{}, error) { return applications.Get(id) },
		Update: func(id string, status, notes *string) (interface{}, error) {
			return applications.UpdateStatusAndNotes(id, status, notes)
		},
		Delete: applications.Delete,
	})
}
