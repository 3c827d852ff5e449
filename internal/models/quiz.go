package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question holds one quiz question. Answer is the 1-indexed position of the
// correct option, stored as a string because submissions arrive that way.
type Question struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"answer"`
	Marks    int      `bson:"marks" json:"marks"`
}

// Quiz is the canonical quiz entity. A quiz belongs to a course and hangs
// off one of its sections by id.
type Quiz struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Instructions string             `bson:"instructions" json:"instructions"`
	Course       primitive.ObjectID `bson:"course" json:"course"`
	SectionID    primitive.ObjectID `bson:"section_id" json:"sectionId"`
	TimeLimit    int                `bson:"time_limit" json:"timeLimit"`
	Questions    []Question         `bson:"questions" json:"questions"`
	TotalMarks   int                `bson:"total_marks" json:"totalMarks"`
	Enabled      bool               `bson:"enabled" json:"enabled"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RecomputeTotalMarks keeps TotalMarks equal to the sum of question marks.
// Called before every write so the stored value can never drift.
func (q *Quiz) RecomputeTotalMarks() {
	total := 0
	for _, question := range q.Questions {
		total += question.Marks
	}
	q.TotalMarks = total
}

// QuestionResult is the per-question breakdown returned by quiz submission.
type QuestionResult struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Marks         int    `json:"marks"`
	MarksAwarded  int    `json:"marksAwarded"`
}

// SubmissionResult is the stateless grading outcome. Nothing is persisted;
// the caller gets the score and the breakdown and that's it.
type SubmissionResult struct {
	Score      int              `json:"score"`
	MaxScore   int              `json:"maxScore"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}
