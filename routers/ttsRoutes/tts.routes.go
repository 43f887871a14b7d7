package ttsRoutes

import (
	controllers "eduequi/controllers/tts"

	"github.com/gofiber/fiber/v2"
)

// SetupTTSRoutes registers the text-to-speech passthrough. It lives at the
// root, outside the /api group.
func SetupTTSRoutes(app *fiber.App) {
	app.Post("/tts", controllers.TextToSpeech)
}
