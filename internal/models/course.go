package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course pricing status
const (
	CourseStatusFree = "Free"
	CourseStatusPaid = "Paid"
)

// Lesson content types
const (
	LessonTypeVideo    = "Video"
	LessonTypeText     = "Text"
	LessonTypePDF      = "PDF"
	LessonTypeDocument = "Document"
	LessonTypeImage    = "Image"
	LessonTypeExcel    = "Excel"
)

// Lesson lives inside a Section. Exactly one of the content fields is
// populated, matching Type.
type Lesson struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"`
	TextContent string             `bson:"text_content,omitempty" json:"textContent,omitempty"`
	VideoURL    string             `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	FileURL     string             `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	Enabled     bool               `bson:"enabled" json:"enabled"`
}

// Section is an embedded, ordered subdocument of Course. Quizzes are not
// embedded here; they live in the quizzes collection keyed by section id.
type Section struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Enabled     bool               `bson:"enabled" json:"enabled"`
	Lessons     []Lesson           `bson:"lessons" json:"lessons"`
}

type Course struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title            string               `bson:"title" json:"title"`
	Category         string               `bson:"category" json:"category"`
	Description      string               `bson:"description" json:"description"`
	Level            string               `bson:"level" json:"level"`
	Status           string               `bson:"status" json:"status"`
	Amount           float64              `bson:"amount,omitempty" json:"amount,omitempty"`
	Image            string               `bson:"image,omitempty" json:"image,omitempty"`
	Enabled          bool                 `bson:"enabled" json:"enabled"`
	EnrolledStudents []primitive.ObjectID `bson:"enrolled_students" json:"enrolledStudents"`
	Sections         []Section            `bson:"sections" json:"sections"`
	CreatedAt        time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updated_at" json:"updatedAt"`
}

// CourseStatistics is the 30-day enrollment/revenue snapshot, recomputed
// on every request.
type CourseStatistics struct {
	ActiveEnrollments int64   `bson:"active_enrollments" json:"activeEnrollments"`
	TotalRevenue      float64 `bson:"total_revenue" json:"totalRevenue"`
	WindowDays        int     `bson:"window_days" json:"windowDays"`
}
