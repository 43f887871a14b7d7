package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson belongs to a course and may point at a video and a quiz by id.
// VideoID and QuizID are weak references: they carry no cascade
// responsibility and may dangle after the target is deleted.
type Lesson struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID     string             `bson:"courseId" json:"courseId"`
	Title        string             `bson:"title" json:"title"`
	TitleTamil   string             `bson:"titleTamil" json:"titleTamil"`
	Content      string             `bson:"content" json:"content"`
	ContentTamil string             `bson:"contentTamil" json:"contentTamil"`
	Order        int                `bson:"order" json:"order"`
	VideoID      string             `bson:"videoId,omitempty" json:"videoId,omitempty"`
	QuizID       string             `bson:"quizId,omitempty" json:"quizId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LessonDetail is a Lesson with its weak references resolved. A reference
// that is unset or no longer resolves leaves the field absent from the
// response rather than producing an error.
type LessonDetail struct {
	Lesson
	Video *Video `bson:"-" json:"video,omitempty"`
	Quiz  *Quiz  `bson:"-" json:"quiz,omitempty"`
}
