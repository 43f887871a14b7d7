package studentRoutes

import (
	controllers "eduequi/controllers/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes registers the student progress endpoint.
func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/students/progress", controllers.GetStudentProgress)
}
