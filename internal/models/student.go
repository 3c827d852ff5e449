package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fee status on a student record
const (
	FeesPaid    = "Paid"
	FeesPending = "Pending"
)

// Student is the administrative per-student record, distinct from the
// student's login account. Auxiliary records below reference it and are
// cascade-deleted with it.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account    primitive.ObjectID `bson:"account,omitempty" json:"account,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Course     string             `bson:"course,omitempty" json:"course,omitempty"`
	FeesStatus string             `bson:"fees_status" json:"feesStatus"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

type Attendance struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Student primitive.ObjectID `bson:"student" json:"student"`
	Date    time.Time          `bson:"date" json:"date"`
	Status  string             `bson:"status" json:"status"`
}

type TestResult struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Student  primitive.ObjectID `bson:"student" json:"student"`
	Subject  string             `bson:"subject" json:"subject"`
	Marks    int                `bson:"marks" json:"marks"`
	MaxMarks int                `bson:"max_marks" json:"maxMarks"`
	Date     time.Time          `bson:"date" json:"date"`
}

type AcademicRecord struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Student primitive.ObjectID `bson:"student" json:"student"`
	Term    string             `bson:"term" json:"term"`
	Grade   string             `bson:"grade" json:"grade"`
	Remarks string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
}
