package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eduequi/catalog"
	controllers "eduequi/controllers/course"
	"eduequi/models"
	courseRoutes "eduequi/routers/courseRoutes"
	"eduequi/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *catalog.Catalog) {
	cat := &catalog.Catalog{
		Courses: store.NewMemory[models.Course](),
		Lessons: store.NewMemory[models.Lesson](),
		Videos:  store.NewMemory[models.Video](),
		Quizzes: store.NewMemory[models.Quiz](),
	}
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, controllers.New(cat))
	return app, cat
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateCourseMissingFieldReturns400(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{"title": "Only a title"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), "description is required")
}

func TestCourseRoundTrip(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Basic Computer Skills",
		"description": "An introduction",
		"difficulty":  "Beginner",
		"category":    "digital-literacy",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Course
	require.NoError(t, json.Unmarshal(body, &created))
	require.False(t, created.ID.IsZero())
	require.False(t, created.CreatedAt.IsZero())

	resp, body = doJSON(t, app, http.MethodGet, "/api/courses/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.CourseDetail
	require.NoError(t, json.Unmarshal(body, &fetched))
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Basic Computer Skills", fetched.Title)
	require.Equal(t, "An introduction", fetched.Description)
	require.Equal(t, "Beginner", fetched.Difficulty)
	require.NotNil(t, fetched.Lessons)
	require.Empty(t, fetched.Lessons)
}

func TestCreateCourseMaterializesTamilFields(t *testing.T) {
	app, _ := newTestApp()

	_, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "No translation yet",
		"description": "d",
		"difficulty":  "Beginner",
		"category":    "c",
	})
	// The translated title is always present, empty until filled in.
	require.Contains(t, string(body), `"titleTamil":""`)

	var course models.Course
	require.NoError(t, json.Unmarshal(body, &course))

	_, body = doJSON(t, app, http.MethodPost, "/api/lessons", fiber.Map{
		"courseId": course.ID.Hex(),
		"title":    "L1",
		"content":  "c",
	})
	require.Contains(t, string(body), `"titleTamil":""`)
	require.Contains(t, string(body), `"contentTamil":""`)
}

func TestGetCourseMalformedIDReturns404(t *testing.T) {
	app, _ := newTestApp()

	resp, _ := doJSON(t, app, http.MethodGet, "/api/courses/definitely-not-an-objectid", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateCoursePartialLeavesOtherFields(t *testing.T) {
	app, _ := newTestApp()

	_, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Before",
		"description": "Untouched description",
		"difficulty":  "Beginner",
		"category":    "digital-literacy",
	})
	var created models.Course
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := doJSON(t, app, http.MethodPut, "/api/courses/"+created.ID.Hex(), fiber.Map{"title": "After"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Course
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, "After", updated.Title)
	require.Equal(t, "Untouched description", updated.Description)
	require.Equal(t, "Beginner", updated.Difficulty)
}

func TestUpdateCourseUnknownIDReturns404(t *testing.T) {
	app, _ := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPut, "/api/courses/aaaaaaaaaaaaaaaaaaaaaaaa", fiber.Map{"title": "X"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCourseCascadesOverHTTP(t *testing.T) {
	app, cat := newTestApp()

	_, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Doomed",
		"description": "d",
		"difficulty":  "Beginner",
		"category":    "c",
	})
	var course models.Course
	require.NoError(t, json.Unmarshal(body, &course))
	courseID := course.ID.Hex()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/lessons", fiber.Map{
		"courseId": courseID,
		"title":    "L1",
		"content":  "c",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/courses/"+courseID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/lessons?courseId="+courseID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(body))

	lessons, err := cat.Lessons.List(context.Background(), store.Query{Field: "courseId", Value: courseID})
	require.NoError(t, err)
	require.Empty(t, lessons)
}

func TestListLessonsWithoutCourseIDReturnsEmptyArray(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/lessons", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(body))
}

func TestListLessonsSortedByOrder(t *testing.T) {
	app, _ := newTestApp()

	_, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Course",
		"description": "d",
		"difficulty":  "Beginner",
		"category":    "c",
	})
	var course models.Course
	require.NoError(t, json.Unmarshal(body, &course))
	courseID := course.ID.Hex()

	for _, l := range []fiber.Map{
		{"courseId": courseID, "title": "second", "content": "c", "order": 2},
		{"courseId": courseID, "title": "first", "content": "c", "order": 1},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/lessons", l)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	_, body = doJSON(t, app, http.MethodGet, "/api/lessons?courseId="+courseID, nil)
	var lessons []models.Lesson
	require.NoError(t, json.Unmarshal(body, &lessons))
	require.Len(t, lessons, 2)
	require.Equal(t, "first", lessons[0].Title)
	require.Equal(t, "second", lessons[1].Title)
}

func TestGetLessonExpandsVideo(t *testing.T) {
	app, cat := newTestApp()

	_, body := doJSON(t, app, http.MethodPost, "/api/courses", fiber.Map{
		"title":       "Course",
		"description": "d",
		"difficulty":  "Beginner",
		"category":    "c",
	})
	var course models.Course
	require.NoError(t, json.Unmarshal(body, &course))
	courseID := course.ID.Hex()

	videoID, err := cat.Videos.Insert(context.Background(), &models.Video{
		CourseID: courseID,
		Title:    "clip",
		VideoURL: "/uploads/videos/clip.mp4",
	})
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodPost, "/api/lessons", fiber.Map{
		"courseId": courseID,
		"title":    "L1",
		"content":  "c",
		"videoId":  videoID.Hex(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(body, &lesson))

	resp, body = doJSON(t, app, http.MethodGet, "/api/lessons/"+lesson.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail models.LessonDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	require.NotNil(t, detail.Video)
	require.Equal(t, "clip", detail.Video.Title)
	require.Nil(t, detail.Quiz)
}

func TestQuizValidationAndCRUD(t *testing.T) {
	app, _ := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/quizzes", fiber.Map{
		"courseId": "c1",
		"title":    "No questions",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), "questions is required")

	resp, body = doJSON(t, app, http.MethodPost, "/api/quizzes", fiber.Map{
		"courseId": "c1",
		"title":    "Hardware Basics",
		"questions": []fiber.Map{
			{"id": "q1", "question": "What is a mouse?", "options": []string{"a", "b"}, "correctAnswer": 0},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var quiz models.Quiz
	require.NoError(t, json.Unmarshal(body, &quiz))
	require.Len(t, quiz.Questions, 1)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/quizzes?courseId=%s", "c1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quizzes []models.Quiz
	require.NoError(t, json.Unmarshal(body, &quizzes))
	require.Len(t, quizzes, 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/quizzes/"+quiz.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
