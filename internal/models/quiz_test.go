package models

import (
	"testing"
)

func TestRecomputeTotalMarks(t *testing.T) {
	testCases := []struct {
		name     string
		marks    []int
		expected int
	}{
		{"no questions", nil, 0},
		{"single question", []int{5}, 5},
		{"multiple questions", []int{2, 3, 5}, 10},
		{"stale total is overwritten", []int{1, 1}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := &Quiz{TotalMarks: 999}
			for _, m := range tc.marks {
				quiz.Questions = append(quiz.Questions, Question{
					Question: "q",
					Options:  []string{"a", "b"},
					Answer:   "1",
					Marks:    m,
				})
			}

			quiz.RecomputeTotalMarks()

			if quiz.TotalMarks != tc.expected {
				t.Errorf("Expected TotalMarks %d, got %d", tc.expected, quiz.TotalMarks)
			}
		})
	}
}
