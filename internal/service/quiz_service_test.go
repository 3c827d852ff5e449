package service

import (
	"strings"
	"testing"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func twoQuestionQuiz() *models.Quiz {
	return &models.Quiz{
		Title:     "Checkpoint",
		Course:    primitive.NewObjectID(),
		SectionID: primitive.NewObjectID(),
		Questions: []models.Question{
			{Question: "first", Options: []string{"a", "b"}, Answer: "1", Marks: 2},
			{Question: "second", Options: []string{"a", "b", "c"}, Answer: "3", Marks: 3},
		},
	}
}

func TestGradeQuiz(t *testing.T) {
	quiz := twoQuestionQuiz()

	result := GradeQuiz(quiz, []string{"1", "2"})

	if result.Score != 2 {
		t.Errorf("Expected score 2, got %d", result.Score)
	}
	if result.MaxScore != 5 {
		t.Errorf("Expected maxScore 5, got %d", result.MaxScore)
	}
	if result.Percentage != 40.0 {
		t.Errorf("Expected percentage 40.0, got %f", result.Percentage)
	}
	if len(result.Results) != 2 {
		t.Fatalf("Expected 2 question results, got %d", len(result.Results))
	}
	if !result.Results[0].Correct {
		t.Error("Expected first answer to be correct")
	}
	if result.Results[1].Correct {
		t.Error("Expected second answer to be incorrect")
	}
	if result.Results[1].MarksAwarded != 0 {
		t.Errorf("Expected 0 marks for wrong answer, got %d", result.Results[1].MarksAwarded)
	}
}

func TestGradeQuizShortAndEmptyAnswers(t *testing.T) {
	quiz := twoQuestionQuiz()

	// Missing trailing answers count as wrong, not as errors.
	result := GradeQuiz(quiz, []string{"1"})
	if result.Score != 2 {
		t.Errorf("Expected score 2 with one answer, got %d", result.Score)
	}

	result = GradeQuiz(quiz, nil)
	if result.Score != 0 {
		t.Errorf("Expected score 0 with no answers, got %d", result.Score)
	}
	if result.MaxScore != 5 {
		t.Errorf("Expected maxScore 5 with no answers, got %d", result.MaxScore)
	}
	if result.Percentage != 0 {
		t.Errorf("Expected percentage 0 with no answers, got %f", result.Percentage)
	}
}

func TestGradeQuizPercentageRounding(t *testing.T) {
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Question: "a", Options: []string{"x", "y"}, Answer: "1", Marks: 1},
			{Question: "b", Options: []string{"x", "y"}, Answer: "1", Marks: 1},
			{Question: "c", Options: []string{"x", "y"}, Answer: "1", Marks: 1},
		},
	}

	// 1 of 3 marks = 33.333...% which must round to two decimals.
	result := GradeQuiz(quiz, []string{"1", "2", "2"})
	if result.Percentage != 33.33 {
		t.Errorf("Expected percentage 33.33, got %f", result.Percentage)
	}
}

func TestValidateQuiz(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(q *models.Quiz)
		wantErr string
	}{
		{
			"valid quiz passes",
			func(q *models.Quiz) {},
			"",
		},
		{
			"missing title",
			func(q *models.Quiz) { q.Title = "" },
			"title is required",
		},
		{
			"missing course",
			func(q *models.Quiz) { q.Course = primitive.NilObjectID },
			"course is required",
		},
		{
			"missing section",
			func(q *models.Quiz) { q.SectionID = primitive.NilObjectID },
			"section is required",
		},
		{
			"no questions",
			func(q *models.Quiz) { q.Questions = nil },
			"at least one question",
		},
		{
			"too few options",
			func(q *models.Quiz) { q.Questions[1].Options = []string{"only"} },
			"question 2 must have at least 2 options",
		},
		{
			"empty option",
			func(q *models.Quiz) { q.Questions[0].Options[1] = "" },
			"question 1 has an empty option",
		},
		{
			"missing answer",
			func(q *models.Quiz) { q.Questions[1].Answer = "" },
			"question 2 is missing an answer",
		},
		{
			"zero marks",
			func(q *models.Quiz) { q.Questions[0].Marks = 0 },
			"question 1 must have marks greater than 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := twoQuestionQuiz()
			tc.mutate(quiz)

			err := ValidateQuiz(quiz)

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}
