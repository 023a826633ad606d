package controllers

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"dental-forms-backend/admin"
	"dental-forms-backend/middlewares"
	"dental-forms-backend/services"
	"dental-forms-backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var (
	adminHashOnce sync.Once
	adminHash     []byte
)

// The configured ADMIN_PASSWORD is hashed once so every comparison goes
// through bcrypt rather than raw string equality.
func adminPasswordHash() []byte {
	adminHashOnce.Do(func() {
		if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
			adminHash, _ = bcrypt.GenerateFromPassword([]byte(pw), 12)
		}
	})
	return adminHash
}

// POST /admin/login
func AdminLogin(c *fiber.Ctx) error {
	var in AdminLoginDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	hash := adminPasswordHash()
	if adminEmail == "" || hash == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "admin credentials not configured")
	}

	if !strings.EqualFold(strings.TrimSpace(in.Email), adminEmail) ||
		bcrypt.CompareHashAndPassword(hash, []byte(in.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := middlewares.GenerateAdminJWT(adminEmail)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
		"data":    fiber.Map{"email": adminEmail},
	})
}

// POST /admin/logout
func AdminLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"success": true, "message": "logged out"})
}

// GET /admin/me
func AdminMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"email": c.Locals("adminEmail")},
	})
}

// GET /admin/resources
func AdminListResources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": admin.All()})
}

func lookupResource(c *fiber.Ctx) (*admin.Resource, error) {
	r, ok := admin.Lookup(c.Params("resource"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown resource")
	}
	return r, nil
}

// GET /admin/resources/:resource/records
func AdminListRecords(c *fiber.Ctx) error {
	r, err := lookupResource(c)
	if err != nil {
		return err
	}

	position := c.Query(r.PositionField)
	if position == "" {
		position = c.Query("position")
	}
	records, pagination, err := r.List(services.ListQuery{
		Page:     utils.ParseIntDefault(c.Query("page"), 1),
		Limit:    utils.ParseIntDefault(c.Query("limit"), 10),
		Status:   c.Query("status"),
		Position: position,
		SortBy:   c.Query("sortBy", "createdAt"),
		Order:    c.Query("order", "desc"),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching records")
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       records,
		"pagination": pagination,
	})
}

// GET /admin/resources/:resource/records/:id
func AdminGetRecord(c *fiber.Ctx) error {
	r, err := lookupResource(c)
	if err != nil {
		return err
	}
	record, err := r.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching record")
	}
	return c.JSON(fiber.Map{"success": true, "data": record})
}

type adminUpdateDTO struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// PUT /admin/resources/:resource/records/:id
// Only the resource's editProperties (status, notes) are writable.
func AdminUpdateRecord(c *fiber.Ctx) error {
	r, err := lookupResource(c)
	if err != nil {
		return err
	}

	var in adminUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if in.Status != nil && !r.ValidStatus(*in.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	record, err := r.Update(c.Params("id"), in.Status, in.Notes)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error updating record")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "record updated",
		"data":    record,
	})
}

// DELETE /admin/resources/:resource/records/:id
func AdminDeleteRecord(c *fiber.Ctx) error {
	r, err := lookupResource(c)
	if err != nil {
		return err
	}
	if err := r.Delete(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting record")
	}
	return c.JSON(fiber.Map{"success": true, "message": "record deleted"})
}
