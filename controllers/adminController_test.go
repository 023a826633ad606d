package controllers_test

import (
	"net/http"
	"testing"

	"dental-forms-backend/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminLogin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, _ := doJSON(t, app, fiber.MethodPost, "/admin/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "s3cret",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == middlewares.AdminCookie {
			require.NotEmpty(t, c.Value)
			return c
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/admin/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/admin/login", map[string]interface{}{
		"email":    "intruder@example.com",
		"password": "s3cret",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGateRequiresSession(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/admin/resources", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/admin/resources", nil,
		&http.Cookie{Name: middlewares.AdminCookie, Value: "garbage"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminResourceDescriptors(t *testing.T) {
	app := setupApp(t)
	session := adminLogin(t, app)

	resp, body := doJSON(t, app, fiber.MethodGet, "/admin/resources", nil, session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resources := body["data"].([]interface{})
	require.Len(t, resources, 2)

	contact := resources[0].(map[string]interface{})
	assert.Equal(t, "contact-forms", contact["name"])
	assert.ElementsMatch(t, []interface{}{"status", "notes"}, contact["editProperties"])

	application := resources[1].(map[string]interface{})
	assert.Equal(t, "application-forms", application["name"])
	assert.Equal(t, "applicationPosition", application["positionField"])
}

func TestAdminRecordLifecycle(t *testing.T) {
	app := setupApp(t)
	session := adminLogin(t, app)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/contact-forms", validContact())
	id := body["data"].(map[string]interface{})["id"].(string)

	resp, body := doJSON(t, app, fiber.MethodGet, "/admin/resources/contact-forms/records", nil, session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 1)

	resp, body = doJSON(t, app, fiber.MethodPut, "/admin/resources/contact-forms/records/"+id,
		map[string]interface{}{"status": "in_progress", "notes": "assigned"}, session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	record := body["data"].(map[string]interface{})
	assert.Equal(t, "in_progress", record["status"])
	assert.Equal(t, "assigned", record["notes"])

	// statuses from the other collection are rejected
	resp, _ = doJSON(t, app, fiber.MethodPut, "/admin/resources/contact-forms/records/"+id,
		map[string]interface{}{"status": "shortlisted"}, session)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/admin/resources/contact-forms/records/"+id, nil, session)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, fiber.MethodGet, "/admin/resources/contact-forms/records/"+id, nil, session)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminUnknownResource(t *testing.T) {
	app := setupApp(t)
	session := adminLogin(t, app)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/admin/resources/invoices/records", nil, session)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminMeAndLogout(t *testing.T) {
	app := setupApp(t)
	session := adminLogin(t, app)

	resp, body := doJSON(t, app, fiber.MethodGet, "/admin/me", nil, session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin@example.com", body["data"].(map[string]interface{})["email"])

	resp, _ = doJSON(t, app, fiber.MethodPost, "/admin/logout", nil, session)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == middlewares.AdminCookie {
			assert.Empty(t, c.Value)
		}
	}
}
