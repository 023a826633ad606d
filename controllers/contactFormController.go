package controllers

import (
	"errors"
	"strings"

	"dental-forms-backend/middlewares"
	"dental-forms-backend/models"
	"dental-forms-backend/services"
	"dental-forms-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ContactFormCreateDTO struct {
	FirstName         string `json:"firstName" form:"firstName" validate:"required"`
	LastName          string `json:"lastName" form:"lastName" validate:"required"`
	Email             string `json:"email" form:"email" validate:"required,email"`
	Phone             string `json:"phone" form:"phone" validate:"required"`
	Position          string `json:"position" form:"position" validate:"required,oneof='Clinic Owner' 'Laboratory Owner / Dental Technician' 'Self-employed dentist' Buyer Dealer Agent Other"`
	City              string `json:"city" form:"city" validate:"required"`
	Province          string `json:"province" form:"province"`
	Country           string `json:"country" form:"country"`
	Message           string `json:"message" form:"message"`
	ContactDays       string `json:"contactDays" form:"contactDays"`
	PrivacyAccepted   bool   `json:"privacyAccepted" form:"privacyAccepted" validate:"eq=true"`
	NewsletterConsent bool   `json:"newsletterConsent" form:"newsletterConsent"`
}

func (in *ContactFormCreateDTO) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	in.Province = strings.TrimSpace(in.Province)
	in.Country = strings.TrimSpace(in.Country)
	in.Message = strings.TrimSpace(in.Message)
	in.ContactDays = strings.TrimSpace(in.ContactDays)
}

type ContactFormUpdateDTO struct {
	Status *string `json:"status" validate:"omitempty,oneof=new in_progress completed archived"`
	Notes  *string `json:"notes"`
}

// POST /api/contact-forms
func CreateContactForm(c *fiber.Ctx) error {
	var in ContactFormCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	in.normalize()
	if err := middlewares.ValidateStruct(in); err != nil {
		return err
	}

	form := models.ContactForm{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		Position:          in.Position,
		City:              in.City,
		Province:          in.Province,
		Country:           in.Country,
		Message:           in.Message,
		ContactDays:       in.ContactDays,
		PrivacyAccepted:   in.PrivacyAccepted,
		NewsletterConsent: in.NewsletterConsent,
	}
	if err := contactForms.Create(&form); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error submitting contact form")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact form submitted successfully",
		"data": fiber.Map{
			"id":        form.Id,
			"createdAt": form.CreatedAt,
		},
	})
}

// GET /api/contact-forms
func ListContactForms(c *fiber.Ctx) error {
	records, pagination, err := contactForms.List(services.ListQuery{
		Page:     utils.ParseIntDefault(c.Query("page"), 1),
		Limit:    utils.ParseIntDefault(c.Query("limit"), 10),
		Status:   c.Query("status"),
		Position: c.Query("position"),
		SortBy:   c.Query("sortBy", "createdAt"),
		Order:    c.Query("order", "desc"),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching contact forms")
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       records,
		"pagination": pagination,
	})
}

// GET /api/contact-forms/:id
func GetContactForm(c *fiber.Ctx) error {
	form, err := contactForms.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contact form not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching contact form")
	}
	return c.JSON(fiber.Map{"success": true, "data": form})
}

// PUT /api/contact-forms/:id
func UpdateContactForm(c *fiber.Ctx) error {
	var in ContactFormUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	form, err := contactForms.UpdateStatusAndNotes(c.Params("id"), in.Status, in.Notes)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contact form not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error updating contact form")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact form updated successfully",
		"data":    form,
	})
}

// DELETE /api/contact-forms/:id
func DeleteContactForm(c *fiber.Ctx) error {
	if err := contactForms.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contact form not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting contact form")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact form deleted successfully",
	})
}

// GET /api/contact-forms/stats/overview
func ContactFormStats(c *fiber.Ctx) error {
	stats, err := contactForms.Stats()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching statistics")
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
