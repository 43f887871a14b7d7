package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ttsRoutes "eduequi/routers/ttsRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	ttsRoutes.SetupTTSRoutes(app)
	return app
}

func postTTS(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestTextToSpeechRejectsEmptyText(t *testing.T) {
	app := newTestApp()

	resp := postTTS(t, app, `{"text": "", "lang": "en-US"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "No text provided")
}

func TestTextToSpeechRejectsMissingBody(t *testing.T) {
	app := newTestApp()

	resp := postTTS(t, app, ``)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
