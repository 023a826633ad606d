package controllers

import (
	"dental-forms-backend/database"

	"github.com/gofiber/fiber/v2"
)

// GET /
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Dental Forms API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"contactForms":     "/api/contact-forms",
			"applicationForms": "/api/application-forms",
			"admin":            "/admin",
		},
	})
}

// GET /health
func Health(c *fiber.Ctx) error {
	db := "disconnected"
	if database.Connected() {
		db = "connected"
	}
	return c.JSON(fiber.Map{
		"status":   "OK",
		"database": db,
	})
}
