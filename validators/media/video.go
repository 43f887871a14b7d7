package mediaValidator

import (
	"mime/multipart"
	"strings"

	"eduequi/middleware"
	"eduequi/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadVideoRequest carries the validated multipart form of
// POST /api/videos/upload.
type UploadVideoRequest struct {
	File        *multipart.FileHeader
	CourseID    string
	LessonID    string
	Title       string
	Description string
}

func UploadVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("video")
		if err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "No video file provided")
		}
		if !utils.AllowedVideoFile(file.Filename) {
			return middleware.JsonError(c, fiber.StatusBadRequest, "File type not allowed. Allowed types: mp4, avi, mov, wmv, flv, webm")
		}

		reqData := &UploadVideoRequest{
			File:        file,
			CourseID:    c.FormValue("courseId"),
			LessonID:    c.FormValue("lessonId"),
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "courseId is required")
		}
		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.JsonError(c, fiber.StatusBadRequest, "title is required")
		}

		c.Locals("validatedUpload", reqData)
		return c.Next()
	}
}
