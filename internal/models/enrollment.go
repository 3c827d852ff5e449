package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links a student account to a course. Both sides are proper
// document references; uniqueness of (student, course) is backed by a
// compound index in addition to the pre-insert existence check.
type Enrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Student        primitive.ObjectID `bson:"student" json:"student"`
	Course         primitive.ObjectID `bson:"course" json:"course"`
	PaymentAmount  float64            `bson:"payment_amount" json:"paymentAmount"`
	EnrollmentDate time.Time          `bson:"enrollment_date" json:"enrollmentDate"`
}

// EnrolledCourse is an enrollment joined with its course details.
type EnrolledCourse struct {
	Enrollment `bson:",inline"`
	CourseInfo Course `bson:"course_info" json:"courseInfo"`
}
