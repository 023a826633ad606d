package controllers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cvUpload struct {
	name        string
	contentType string
	content     []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, cv *cvUpload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if cv != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename="%s"`, cv.name))
		h.Set("Content-Type", cv.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(cv.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(fiber.MethodPost, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validApplicationFields() map[string]string {
	return map[string]string{
		"firstName":           "Luca",
		"lastName":            "Bianchi",
		"email":               "luca@example.com",
		"phone":               "+39 02 7654321",
		"applicationPosition": "Italy/Abroad Agents",
		"privacyAccepted":     "true",
	}
}

func pdfContent(size int) []byte {
	content := make([]byte, size)
	copy(content, "%PDF-1.4\n")
	return content
}

func TestCreateApplicationWithCvAndDownload(t *testing.T) {
	app := setupApp(t)

	req := multipartRequest(t, "/api/application-forms", validApplicationFields(), &cvUpload{
		name:        "curriculum.pdf",
		contentType: "application/pdf",
		content:     pdfContent(4 << 20),
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, body := doJSON(t, app, fiber.MethodGet, "/api/application-forms", nil)
	records := body["data"].([]interface{})
	require.Len(t, records, 1)
	record := records[0].(map[string]interface{})
	id := record["id"].(string)
	cv := record["cvFile"].(map[string]interface{})
	assert.Equal(t, "curriculum.pdf", cv["originalName"])

	// download streams under the original file name
	dlReq, err := http.NewRequest(fiber.MethodGet, "/api/application-forms/"+id+"/download-cv", nil)
	require.NoError(t, err)
	dlResp, err := app.Test(dlReq, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, dlResp.StatusCode)
	assert.Contains(t, dlResp.Header.Get("Content-Disposition"), "curriculum.pdf")
	streamed, err := io.ReadAll(dlResp.Body)
	require.NoError(t, err)
	assert.Len(t, streamed, 4<<20)
}

func TestCreateApplicationWithoutCv(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/application-forms", map[string]interface{}{
		"firstName":           "Mara",
		"lastName":            "Verdi",
		"email":               "mara@example.com",
		"phone":               "+39 02 1111111",
		"applicationPosition": "Other",
		"privacyAccepted":     true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := body["data"].(map[string]interface{})["id"].(string)

	_, body = doJSON(t, app, fiber.MethodGet, "/api/application-forms/"+id, nil)
	record := body["data"].(map[string]interface{})
	_, hasCv := record["cvFile"]
	assert.False(t, hasCv, "cvFile must be absent when nothing was uploaded")

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/application-forms/"+id+"/download-cv", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateApplicationRejectsBadCv(t *testing.T) {
	app := setupApp(t)

	req := multipartRequest(t, "/api/application-forms", validApplicationFields(), &cvUpload{
		name:        "payload.exe",
		contentType: "application/pdf",
		content:     pdfContent(128),
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// rejected file also rejects the submission
	_, body := doJSON(t, app, fiber.MethodGet, "/api/application-forms", nil)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(0), pagination["total"])
}

func TestCreateApplicationRejectsOversizeCv(t *testing.T) {
	app := setupApp(t)

	req := multipartRequest(t, "/api/application-forms", validApplicationFields(), &cvUpload{
		name:        "curriculum.pdf",
		contentType: "application/pdf",
		content:     pdfContent(6 << 20),
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateApplicationPrivacyGate(t *testing.T) {
	app := setupApp(t)

	fields := validApplicationFields()
	fields["privacyAccepted"] = "false"
	req := multipartRequest(t, "/api/application-forms", fields, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApplicationStatusWorkflow(t *testing.T) {
	app := setupApp(t)

	_, body := doJSON(t, app, fiber.MethodPost, "/api/application-forms", map[string]interface{}{
		"firstName":           "Luca",
		"lastName":            "Bianchi",
		"email":               "luca@example.com",
		"phone":               "+39 02 7654321",
		"applicationPosition": "Other",
		"privacyAccepted":     true,
	})
	id := body["data"].(map[string]interface{})["id"].(string)

	resp, body := doJSON(t, app, fiber.MethodPut, "/api/application-forms/"+id, map[string]interface{}{
		"status": "shortlisted",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "shortlisted", body["data"].(map[string]interface{})["status"])

	// contact statuses are not valid here
	resp, _ = doJSON(t, app, fiber.MethodPut, "/api/application-forms/"+id, map[string]interface{}{
		"status": "in_progress",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
