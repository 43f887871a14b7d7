package controllers

import (
	"time"

	"eduequi/middleware"
	"eduequi/models"
	"eduequi/store"
	courseValidator "eduequi/validators/course"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// ListLessons returns the lessons of a course sorted ascending by order.
// Without a courseId filter the listing is empty rather than global.
func (ctl *Controller) ListLessons(c *fiber.Ctx) error {
	courseID := c.Query("courseId")
	if courseID == "" {
		return c.JSON([]models.Lesson{})
	}

	lessons, err := ctl.Cat.Lessons.List(c.Context(), store.Query{
		Field:  "courseId",
		Value:  courseID,
		SortBy: "order",
	})
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}
	return c.JSON(lessons)
}

// GetLesson returns a lesson with its video and quiz references expanded.
func (ctl *Controller) GetLesson(c *fiber.Ctx) error {
	lesson, err := ctl.Cat.GetLesson(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return c.JSON(lesson)
}

// CreateLesson persists a new lesson from the validated request body.
func (ctl *Controller) CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	now := time.Now().UTC()
	lesson := &models.Lesson{
		CourseID:     reqData.CourseID,
		Title:        reqData.Title,
		TitleTamil:   reqData.TitleTamil,
		Content:      reqData.Content,
		ContentTamil: reqData.ContentTamil,
		Order:        reqData.Order,
		VideoID:      reqData.VideoID,
		QuizID:       reqData.QuizID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := ctl.Cat.Lessons.Insert(c.Context(), lesson)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}
	lesson.ID = id

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// UpdateLesson applies only the fields present in the request body.
func (ctl *Controller) UpdateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	set := bson.M{}
	if reqData.CourseID != nil {
		set["courseId"] = *reqData.CourseID
	}
	if reqData.Title != nil {
		set["title"] = *reqData.Title
	}
	if reqData.TitleTamil != nil {
		set["titleTamil"] = *reqData.TitleTamil
	}
	if reqData.Content != nil {
		set["content"] = *reqData.Content
	}
	if reqData.ContentTamil != nil {
		set["contentTamil"] = *reqData.ContentTamil
	}
	if reqData.Order != nil {
		set["order"] = *reqData.Order
	}
	if reqData.VideoID != nil {
		set["videoId"] = *reqData.VideoID
	}
	if reqData.QuizID != nil {
		set["quizId"] = *reqData.QuizID
	}
	set["updatedAt"] = time.Now().UTC()

	lesson, err := ctl.Cat.Lessons.UpdateByID(c.Context(), c.Params("id"), set)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return c.JSON(lesson)
}

// DeleteLesson removes a single lesson. Videos and quizzes referencing it
// are weak references and stay in place.
func (ctl *Controller) DeleteLesson(c *fiber.Ctx) error {
	if !ctl.Cat.Lessons.DeleteByID(c.Context(), c.Params("id")) {
		return middleware.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return middleware.JsonMessage(c, fiber.StatusOK, "Lesson deleted successfully")
}
