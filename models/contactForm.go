package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position values offered on the public contact form.
var ContactPositions = []string{
	"Clinic Owner",
	"Laboratory Owner / Dental Technician",
	"Self-employed dentist",
	"Buyer",
	"Dealer",
	"Agent",
	"Other",
}

// Workflow states for contact submissions.
var ContactStatuses = []string{"new", "in_progress", "completed", "archived"}

const ContactStatusNew = "new"

type ContactForm struct {
	Id                string    `json:"id" gorm:"primaryKey"`
	FirstName         string    `json:"firstName" gorm:"not null"`
	LastName          string    `json:"lastName" gorm:"not null"`
	Email             string    `json:"email" gorm:"not null"`
	Phone             string    `json:"phone" gorm:"not null"`
	Position          string    `json:"position" gorm:"not null;index"`
	City              string    `json:"city" gorm:"not null"`
	Province          string    `json:"province"`
	Country           string    `json:"country"`
	Message           string    `json:"message"`
	ContactDays       string    `json:"contactDays"`
	PrivacyAccepted   bool      `json:"privacyAccepted" gorm:"not null"`
	NewsletterConsent bool      `json:"newsletterConsent" gorm:"default:false"`
	Status            string    `json:"status" gorm:"not null;default:new;index"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (f *ContactForm) BeforeCreate(tx *gorm.DB) (err error) {
	if f.Id == "" {
		// UUID version 4
		f.Id = uuid.NewString()
	}
	if f.Status == "" {
		f.Status = ContactStatusNew
	}
	// Both timestamps share one instant so updatedAt==createdAt until the
	// first mutation.
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return
}

func (f *ContactForm) GetID() string     { return f.Id }
func (f *ContactForm) GetStatus() string { return f.Status }

// FullName is used in notification summaries.
func (f *ContactForm) FullName() string { return f.FirstName + " " + f.LastName }
