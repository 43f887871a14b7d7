package courseRoutes

import (
	controllers "eduequi/controllers/course"
	validators "eduequi/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the course, lesson and quiz endpoints.
func SetupCourseRoutes(app *fiber.App, ctl *controllers.Controller) {
	api := app.Group("/api")

	api.Get("/courses", ctl.ListCourses)
	api.Get("/courses/:id", ctl.GetCourse)
	api.Post("/courses", validators.CreateCourse(), ctl.CreateCourse)
	api.Put("/courses/:id", validators.UpdateCourse(), ctl.UpdateCourse)
	api.Delete("/courses/:id", ctl.DeleteCourse)

	api.Get("/lessons", ctl.ListLessons)
	api.Get("/lessons/:id", ctl.GetLesson)
	api.Post("/lessons", validators.CreateLesson(), ctl.CreateLesson)
	api.Put("/lessons/:id", validators.UpdateLesson(), ctl.UpdateLesson)
	api.Delete("/lessons/:id", ctl.DeleteLesson)

	api.Get("/quizzes", ctl.ListQuizzes)
	api.Get("/quizzes/:id", ctl.GetQuiz)
	api.Post("/quizzes", validators.CreateQuiz(), ctl.CreateQuiz)
	api.Put("/quizzes/:id", validators.UpdateQuiz(), ctl.UpdateQuiz)
	api.Delete("/quizzes/:id", ctl.DeleteQuiz)
}
