package mediaRoutes

import (
	controllers "eduequi/controllers/media"
	validators "eduequi/validators/media"

	"github.com/gofiber/fiber/v2"
)

// SetupVideoRoutes registers the video endpoints.
func SetupVideoRoutes(app *fiber.App, ctl *controllers.Controller) {
	api := app.Group("/api")

	api.Get("/videos", ctl.ListVideos)
	api.Post("/videos/upload", validators.UploadVideo(), ctl.UploadVideo)
	api.Delete("/videos/:id", ctl.DeleteVideo)
}
