package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is the root entity of the catalog. Lessons, videos and quizzes all
// hang off a course via a courseId foreign key and are removed with it.
type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleTamil  string             `bson:"titleTamil" json:"titleTamil"`
	Description string             `bson:"description" json:"description"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Category    string             `bson:"category" json:"category"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CourseDetail is a Course enriched with its lessons, sorted ascending by
// order. Only single-course fetches carry the expansion; listings do not.
type CourseDetail struct {
	Course
	Lessons []Lesson `bson:"-" json:"lessons"`
}
