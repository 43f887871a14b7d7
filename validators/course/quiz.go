package courseValidator

import (
	"strings"

	"eduequi/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateQuizRequest carries the validated body of POST /api/quizzes.
// Question objects are stored as-is; their schema belongs to the frontend.
type CreateQuizRequest struct {
	CourseID  string                   `json:"courseId"`
	LessonID  string                   `json:"lessonId"`
	Title     string                   `json:"title"`
	Questions []map[string]interface{} `json:"questions"`
}

// UpdateQuizRequest carries the partial body of PUT /api/quizzes/:id.
type UpdateQuizRequest struct {
	CourseID  *string                   `json:"courseId"`
	LessonID  *string                   `json:"lessonId"`
	Title     *string                   `json:"title"`
	Questions *[]map[string]interface{} `json:"questions"`
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "courseId is required")
		}
		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "title is required")
		}
		if reqData.Questions == nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "questions is required")
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}
