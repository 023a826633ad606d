package middlewares

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/gated", IsAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("adminEmail")})
	})
	return app
}

func TestAdminJWTRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")
	app := authApp()

	token, err := GenerateAdminJWT("admin@example.com")
	require.NoError(t, err)

	req, _ := http.NewRequest(fiber.MethodGet, "/gated", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIsAdminRejectsMissingOrBadCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")
	app := authApp()

	req, _ := http.NewRequest(fiber.MethodGet, "/gated", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req, _ = http.NewRequest(fiber.MethodGet, "/gated", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: "not-a-jwt"})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
