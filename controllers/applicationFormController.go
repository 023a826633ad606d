package controllers

import (
	"errors"
	"strings"

	"dental-forms-backend/middlewares"
	"dental-forms-backend/models"
	"dental-forms-backend/services"
	"dental-forms-backend/storage"
	"dental-forms-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ApplicationFormCreateDTO struct {
	FirstName           string `json:"firstName" form:"firstName" validate:"required"`
	LastName            string `json:"lastName" form:"lastName" validate:"required"`
	Email               string `json:"email" form:"email" validate:"required,email"`
	Phone               string `json:"phone" form:"phone" validate:"required"`
	ApplicationPosition string `json:"applicationPosition" form:"applicationPosition" validate:"required,oneof='Implantologists Speakers' 'Italy/Abroad Agents' 'Dealer-Distributors Italy/Abroad' Other"`
	ContactHours        string `json:"contactHours" form:"contactHours"`
	Message             string `json:"message" form:"message"`
	PrivacyAccepted     bool   `json:"privacyAccepted" form:"privacyAccepted" validate:"eq=true"`
}

func (in *ApplicationFormCreateDTO) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.ContactHours = strings.TrimSpace(in.ContactHours)
	in.Message = strings.TrimSpace(in.Message)
}

type ApplicationFormUpdateDTO struct {
	Status *string `json:"status" validate:"omitempty,oneof=new reviewed shortlisted rejected hired"`
	Notes  *string `json:"notes"`
}

// POST /api/application-forms (multipart, optional file field "cv")
func CreateApplicationForm(c *fiber.Ctx) error {
	var in ApplicationFormCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	in.normalize()
	// Field validation first: a rejected submission must leave nothing on
	// disk, so the CV is only stored after the form itself passes.
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	form := models.ApplicationForm{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		ApplicationPosition: in.ApplicationPosition,
		ContactHours:        in.ContactHours,
		Message:             in.Message,
		PrivacyAccepted:     in.PrivacyAccepted,
	}

	if fh, err := c.FormFile("cv"); err == nil && fh != nil {
		cv, err := storage.SaveCv(fh)
		if err != nil {
			if errors.Is(err, storage.ErrFileType) || errors.Is(err, storage.ErrFileSize) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "error storing CV file")
		}
		form.AttachCv(cv)
	}

	if err := applicationForms.Create(&form); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error submitting application")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Application submitted successfully",
		"data": fiber.Map{
			"id":        form.Id,
			"createdAt": form.CreatedAt,
		},
	})
}

// GET /api/application-forms
func ListApplicationForms(c *fiber.Ctx) error {
	records, pagination, err := applicationForms.List(services.ListQuery{
		Page:     utils.ParseIntDefault(c.Query("page"), 1),
		Limit:    utils.ParseIntDefault(c.Query("limit"), 10),
		Status:   c.Query("status"),
		Position: c.Query("applicationPosition"),
		SortBy:   c.Query("sortBy", "createdAt"),
		Order:    c.Query("order", "desc"),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching applications")
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       records,
		"pagination": pagination,
	})
}

// GET /api/application-forms/:id
func GetApplicationForm(c *fiber.Ctx) error {
	form, err := applicationForms.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching application")
	}
	return c.JSON(fiber.Map{"success": true, "data": form})
}

// PUT /api/application-forms/:id
func UpdateApplicationForm(c *fiber.Ctx) error {
	var in ApplicationFormUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	form, err := applicationForms.UpdateStatusAndNotes(c.Params("id"), in.Status, in.Notes)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error updating application")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application updated successfully",
		"data":    form,
	})
}

// DELETE /api/application-forms/:id
func DeleteApplicationForm(c *fiber.Ctx) error {
	if err := applicationForms.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting application")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application deleted successfully",
	})
}

// GET /api/application-forms/stats/overview
func ApplicationFormStats(c *fiber.Ctx) error {
	stats, err := applicationForms.Stats()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching statistics")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// GET /api/application-forms/:id/download-cv
func DownloadApplicationCv(c *fiber.Ctx) error {
	form, err := applicationForms.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching application")
	}

	cv := form.Cv()
	if cv == nil {
		return fiber.NewError(fiber.StatusNotFound, "No CV attached to this application")
	}
	return c.Download(cv.Path, cv.OriginalName)
}
