package courseValidator

import (
	"strings"

	"eduequi/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest carries the validated body of POST /api/courses.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	TitleTamil  string `json:"titleTamil"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
}

// UpdateCourseRequest carries the partial body of PUT /api/courses/:id.
// Nil fields were absent from the request and must stay untouched.
type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	TitleTamil  *string `json:"titleTamil"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	Category    *string `json:"category"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "title is required")
		}
		if strings.TrimSpace(reqData.Description) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "description is required")
		}
		if strings.TrimSpace(reqData.Difficulty) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "difficulty is required")
		}
		if strings.TrimSpace(reqData.Category) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "category is required")
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
