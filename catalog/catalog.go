// Package catalog coordinates the relations between courses, lessons, videos
// and quizzes: cascade deletion and weak-reference expansion.
package catalog

import (
	"context"
	"log"

	"eduequi/models"
	"eduequi/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// Catalog holds one store per entity collection.
type Catalog struct {
	Courses store.Store[models.Course]
	Lessons store.Store[models.Lesson]
	Videos  store.Store[models.Video]
	Quizzes store.Store[models.Quiz]
}

// New wires the catalog to its MongoDB collections.
func New(db *mongo.Database) *Catalog {
	return &Catalog{
		Courses: store.NewMongo[models.Course](db, "courses"),
		Lessons: store.NewMongo[models.Lesson](db, "lessons"),
		Videos:  store.NewMongo[models.Video](db, "videos"),
		Quizzes: store.NewMongo[models.Quiz](db, "quizzes"),
	}
}

// DeleteCourse removes the course document and then bulk-deletes every
// dependent lesson, video and quiz carrying its id. The dependent deletes run
// unconditionally: deleting a course id that no longer exists is a no-op, not
// an error. There is no multi-document transaction here; a crash mid-cascade
// can leave orphaned dependents.
func (cat *Catalog) DeleteCourse(ctx context.Context, id string) bool {
	if !cat.Courses.DeleteByID(ctx, id) {
		return false
	}

	if err := cat.Lessons.DeleteMany(ctx, "courseId", id); err != nil {
		log.Printf("Cascade delete of lessons for course %s failed: %v", id, err)
	}
	if err := cat.Videos.DeleteMany(ctx, "courseId", id); err != nil {
		log.Printf("Cascade delete of videos for course %s failed: %v", id, err)
	}
	if err := cat.Quizzes.DeleteMany(ctx, "courseId", id); err != nil {
		log.Printf("Cascade delete of quizzes for course %s failed: %v", id, err)
	}
	return true
}

// GetCourse fetches a single course with its lessons embedded, sorted
// ascending by order.
func (cat *Catalog) GetCourse(ctx context.Context, id string) (*models.CourseDetail, error) {
	course, err := cat.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := cat.Lessons.List(ctx, store.Query{Field: "courseId", Value: id, SortBy: "order"})
	if err != nil {
		return nil, err
	}

	return &models.CourseDetail{Course: *course, Lessons: lessons}, nil
}

// GetLesson fetches a lesson and resolves its weak video/quiz references.
// A reference that does not resolve leaves the field absent.
func (cat *Catalog) GetLesson(ctx context.Context, id string) (*models.LessonDetail, error) {
	lesson, err := cat.Lessons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.LessonDetail{Lesson: *lesson}
	if lesson.VideoID != "" {
		if video, err := cat.Videos.GetByID(ctx, lesson.VideoID); err == nil {
			detail.Video = video
		}
	}
	if lesson.QuizID != "" {
		if quiz, err := cat.Quizzes.GetByID(ctx, lesson.QuizID); err == nil {
			detail.Quiz = quiz
		}
	}
	return detail, nil
}
