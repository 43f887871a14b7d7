package models

// StudentProgress is the shape served by the mock progress endpoint.
type StudentProgress struct {
	StudentID   string           `json:"studentId"`
	StudentName string           `json:"studentName"`
	Courses     []CourseProgress `json:"courses"`
}

type CourseProgress struct {
	CourseID         string      `json:"courseId"`
	CourseTitle      string      `json:"courseTitle"`
	Progress         int         `json:"progress"`
	CompletedLessons int         `json:"completedLessons"`
	TotalLessons     int         `json:"totalLessons"`
	QuizScores       []QuizScore `json:"quizScores"`
}

type QuizScore struct {
	QuizID    string `json:"quizId"`
	QuizTitle string `json:"quizTitle"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"maxScore"`
}
