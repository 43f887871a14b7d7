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

// ListQuizzes returns quizzes filtered by courseId, or all quizzes when no
// filter is given.
func (ctl *Controller) ListQuizzes(c *fiber.Ctx) error {
	q := store.Query{}
	if courseID := c.Query("courseId"); courseID != "" {
		q = store.Query{Field: "courseId", Value: courseID}
	}

	quizzes, err := ctl.Cat.Quizzes.List(c.Context(), q)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}
	return c.JSON(quizzes)
}

// GetQuiz returns a single quiz.
func (ctl *Controller) GetQuiz(c *fiber.Ctx) error {
	quiz, err := ctl.Cat.Quizzes.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}
	return c.JSON(quiz)
}

// CreateQuiz persists a new quiz from the validated request body.
func (ctl *Controller) CreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	quiz := &models.Quiz{
		CourseID:  reqData.CourseID,
		LessonID:  reqData.LessonID,
		Title:     reqData.Title,
		Questions: reqData.Questions,
		CreatedAt: time.Now().UTC(),
	}

	id, err := ctl.Cat.Quizzes.Insert(c.Context(), quiz)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}
	quiz.ID = id

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// UpdateQuiz applies only the fields present in the request body. Quizzes
// carry no updatedAt stamp.
func (ctl *Controller) UpdateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuizUpdate").(*courseValidator.UpdateQuizRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	set := bson.M{}
	if reqData.CourseID != nil {
		set["courseId"] = *reqData.CourseID
	}
	if reqData.LessonID != nil {
		set["lessonId"] = *reqData.LessonID
	}
	if reqData.Title != nil {
		set["title"] = *reqData.Title
	}
	if reqData.Questions != nil {
		set["questions"] = *reqData.Questions
	}

	quiz, err := ctl.Cat.Quizzes.UpdateByID(c.Context(), c.Params("id"), set)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}
	return c.JSON(quiz)
}

// DeleteQuiz removes a single quiz. Lessons pointing at it keep their
// quizId; expansion simply stops resolving it.
func (ctl *Controller) DeleteQuiz(c *fiber.Ctx) error {
	if !ctl.Cat.Quizzes.DeleteByID(c.Context(), c.Params("id")) {
		return middleware.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}
	return middleware.JsonMessage(c, fiber.StatusOK, "Quiz deleted successfully")
}
