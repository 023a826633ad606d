package middlewares

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fieldMessage maps a validator tag to the message the public API documents.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Valid email is required"
	case "oneof":
		return "Invalid " + fe.Field()
	case "eq":
		return "Privacy policy must be accepted"
	default:
		return "Invalid " + fe.Field()
	}
}

// ErrorHandler centralizes error responses into the {success:false} envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Validation errors (400 + full list of violated fields)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make([]fiber.Map, 0, len(ve))
		for _, fe := range ve {
			out = append(out, fiber.Map{
				"field": fe.Field(),
				"msg":   fieldMessage(fe),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 2) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{
			"success": false,
			"message": fe.Message,
		})
	}

	// 3) Unknown errors (500, detail hidden outside development)
	log.Printf("internal error: %v", err)
	resp := fiber.Map{
		"success": false,
		"message": "internal server error",
	}
	if os.Getenv("APP_ENV") == "development" {
		resp["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}
