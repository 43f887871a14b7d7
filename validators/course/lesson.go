package courseValidator

import (
	"strings"

	"eduequi/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateLessonRequest carries the validated body of POST /api/lessons.
type CreateLessonRequest struct {
	CourseID     string `json:"courseId"`
	Title        string `json:"title"`
	TitleTamil   string `json:"titleTamil"`
	Content      string `json:"content"`
	ContentTamil string `json:"contentTamil"`
	Order        int    `json:"order"`
	VideoID      string `json:"videoId"`
	QuizID       string `json:"quizId"`
}

// UpdateLessonRequest carries the partial body of PUT /api/lessons/:id.
type UpdateLessonRequest struct {
	CourseID     *string `json:"courseId"`
	Title        *string `json:"title"`
	TitleTamil   *string `json:"titleTamil"`
	Content      *string `json:"content"`
	ContentTamil *string `json:"contentTamil"`
	Order        *int    `json:"order"`
	VideoID      *string `json:"videoId"`
	QuizID       *string `json:"quizId"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "courseId is required")
		}
		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "title is required")
		}
		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "content is required")
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
