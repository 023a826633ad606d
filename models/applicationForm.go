package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Position values offered on the job application form.
var ApplicationPositions = []string{
	"Implantologists Speakers",
	"Italy/Abroad Agents",
	"Dealer-Distributors Italy/Abroad",
	"Other",
}

// Workflow states for job applications.
var ApplicationStatuses = []string{"new", "reviewed", "shortlisted", "rejected", "hired"}

const ApplicationStatusNew = "new"

// CvFile describes an uploaded CV. Stored as a JSON document column; absent
// entirely when no file was attached at creation.
type CvFile struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
}

type ApplicationForm struct {
	Id                  string                        `json:"id" gorm:"primaryKey"`
	FirstName           string                        `json:"firstName" gorm:"not null"`
	LastName            string                        `json:"lastName" gorm:"not null"`
	Email               string                        `json:"email" gorm:"not null"`
	Phone               string                        `json:"phone" gorm:"not null"`
	ApplicationPosition string                        `json:"applicationPosition" gorm:"not null;index"`
	ContactHours        string                        `json:"contactHours"`
	Message             string                        `json:"message"`
	CvFile              *datatypes.JSONType[CvFile]   `json:"cvFile,omitempty"`
	PrivacyAccepted     bool                          `json:"privacyAccepted" gorm:"not null"`
	Status              string                        `json:"status" gorm:"not null;default:new;index"`
	Notes               string                        `json:"notes"`
	CreatedAt           time.Time                     `json:"createdAt"`
	UpdatedAt           time.Time                     `json:"updatedAt"`
}

func (f *ApplicationForm) BeforeCreate(tx *gorm.DB) (err error) {
	if f.Id == "" {
		f.Id = uuid.NewString()
	}
	if f.Status == "" {
		f.Status = ApplicationStatusNew
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return
}

func (f *ApplicationForm) GetID() string     { return f.Id }
func (f *ApplicationForm) GetStatus() string { return f.Status }

func (f *ApplicationForm) FullName() string { return f.FirstName + " " + f.LastName }

// Cv returns the attached CV metadata, or nil when none was uploaded.
func (f *ApplicationForm) Cv() *CvFile {
	if f.CvFile == nil {
		return nil
	}
	cv := f.CvFile.Data()
	return &cv
}

// AttachCv records CV metadata on a not-yet-persisted application.
func (f *ApplicationForm) AttachCv(cv CvFile) {
	j := datatypes.NewJSONType(cv)
	f.CvFile = &j
}
