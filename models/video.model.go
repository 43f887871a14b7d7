package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video records an uploaded media file. VideoURL points at the stored file;
// ISLVideoURL is the sign-language-interpreted variant and falls back to
// VideoURL when no separate cut exists.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID    string             `bson:"courseId" json:"courseId"`
	LessonID    string             `bson:"lessonId,omitempty" json:"lessonId,omitempty"`
	Title       string             `bson:"title" json:"title"`
	VideoURL    string             `bson:"videoUrl" json:"videoUrl"`
	ISLVideoURL string             `bson:"islVideoUrl" json:"islVideoUrl"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
