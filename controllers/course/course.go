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

// ListCourses returns every course without lesson expansion.
func (ctl *Controller) ListCourses(c *fiber.Ctx) error {
	courses, err := ctl.Cat.Courses.List(c.Context(), store.Query{})
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return c.JSON(courses)
}

// GetCourse returns a single course with its lessons embedded.
func (ctl *Controller) GetCourse(c *fiber.Ctx) error {
	course, err := ctl.Cat.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return c.JSON(course)
}

// CreateCourse persists a new course from the validated request body.
func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	now := time.Now().UTC()
	course := &models.Course{
		Title:       reqData.Title,
		TitleTamil:  reqData.TitleTamil,
		Description: reqData.Description,
		Difficulty:  reqData.Difficulty,
		Category:    reqData.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := ctl.Cat.Courses.Insert(c.Context(), course)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	course.ID = id

	return c.Status(fiber.StatusCreated).JSON(course)
}

// UpdateCourse applies only the fields present in the request body.
func (ctl *Controller) UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonError(c, fiber.StatusBadRequest, "Invalid request data")
	}

	set := bson.M{}
	if reqData.Title != nil {
		set["title"] = *reqData.Title
	}
	if reqData.TitleTamil != nil {
		set["titleTamil"] = *reqData.TitleTamil
	}
	if reqData.Description != nil {
		set["description"] = *reqData.Description
	}
	if reqData.Difficulty != nil {
		set["difficulty"] = *reqData.Difficulty
	}
	if reqData.Category != nil {
		set["category"] = *reqData.Category
	}
	set["updatedAt"] = time.Now().UTC()

	course, err := ctl.Cat.Courses.UpdateByID(c.Context(), c.Params("id"), set)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return c.JSON(course)
}

// DeleteCourse removes the course and cascades to its lessons, videos and
// quizzes.
func (ctl *Controller) DeleteCourse(c *fiber.Ctx) error {
	if !ctl.Cat.DeleteCourse(c.Context(), c.Params("id")) {
		return middleware.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return middleware.JsonMessage(c, fiber.StatusOK, "Course deleted successfully")
}
