package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz holds an ordered list of question documents. The question schema is
// owned by the frontend; this layer stores and returns it untouched.
type Quiz struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	CourseID  string                   `bson:"courseId" json:"courseId"`
	LessonID  string                   `bson:"lessonId,omitempty" json:"lessonId,omitempty"`
	Title     string                   `bson:"title" json:"title"`
	Questions []map[string]interface{} `bson:"questions" json:"questions"`
	CreatedAt time.Time                `bson:"createdAt" json:"createdAt"`
}
