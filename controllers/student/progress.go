package controllers

import (
	"eduequi/models"

	"github.com/gofiber/fiber/v2"
)

// mockProgress is the static fixture served until real progress aggregation
// lands.
var mockProgress = []models.StudentProgress{
	{
		StudentID:   "student-1",
		StudentName: "Anitha Kumar",
		Courses: []models.CourseProgress{
			{
				CourseID:         "course-1",
				CourseTitle:      "Basic Computer Skills",
				Progress:         75,
				CompletedLessons: 6,
				TotalLessons:     8,
				QuizScores: []models.QuizScore{
					{QuizID: "quiz-1", QuizTitle: "Hardware Basics", Score: 8, MaxScore: 10},
					{QuizID: "quiz-2", QuizTitle: "Using a Keyboard", Score: 9, MaxScore: 10},
				},
			},
			{
				CourseID:         "course-2",
				CourseTitle:      "Introduction to the Internet",
				Progress:         40,
				CompletedLessons: 2,
				TotalLessons:     5,
				QuizScores: []models.QuizScore{
					{QuizID: "quiz-3", QuizTitle: "Browsing Safely", Score: 7, MaxScore: 10},
				},
			},
		},
	},
	{
		StudentID:   "student-2",
		StudentName: "Ravi Chandran",
		Courses: []models.CourseProgress{
			{
				CourseID:         "course-1",
				CourseTitle:      "Basic Computer Skills",
				Progress:         100,
				CompletedLessons: 8,
				TotalLessons:     8,
				QuizScores: []models.QuizScore{
					{QuizID: "quiz-1", QuizTitle: "Hardware Basics", Score: 10, MaxScore: 10},
					{QuizID: "quiz-2", QuizTitle: "Using a Keyboard", Score: 8, MaxScore: 10},
				},
			},
		},
	},
}

// GetStudentProgress serves the static progress fixture.
func GetStudentProgress(c *fiber.Ctx) error {
	return c.JSON(mockProgress)
}
