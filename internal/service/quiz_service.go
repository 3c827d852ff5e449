package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService struct {
	Repo *repository.QuizRepository
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

// ValidateQuiz checks the quiz shape before any write. The first failing
// question aborts with a question-indexed message.
func ValidateQuiz(quiz *models.Quiz) error {
	if quiz.Title == "" {
		return errors.New("title is required")
	}
	if quiz.Course.IsZero() {
		return errors.New("course is required")
	}
	if quiz.SectionID.IsZero() {
		return errors.New("section is required")
	}
	if len(quiz.Questions) == 0 {
		return errors.New("at least one question is required")
	}
	for i, q := range quiz.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d must have at least 2 options", i+1)
		}
		for _, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d has an empty option", i+1)
			}
		}
		if q.Answer == "" {
			return fmt.Errorf("question %d is missing an answer", i+1)
		}
		if q.Marks <= 0 {
			return fmt.Errorf("question %d must have marks greater than 0", i+1)
		}
	}
	return nil
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if err := ValidateQuiz(quiz); err != nil {
		return err
	}
	quiz.RecomputeTotalMarks()
	quiz.Enabled = true
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = time.Now()
	return s.Repo.Create(ctx, quiz)
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuizService) ListByCourse(ctx context.Context, courseID string) ([]models.Quiz, error) {
	return s.Repo.FindByCourse(ctx, courseID)
}

func (s *QuizService) ListBySection(ctx context.Context, sectionID string) ([]models.Quiz, error) {
	return s.Repo.FindBySection(ctx, sectionID)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id string, updated *models.Quiz) (*models.Quiz, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	if updated.Title != "" {
		quiz.Title = updated.Title
	}
	if updated.Instructions != "" {
		quiz.Instructions = updated.Instructions
	}
	if updated.TimeLimit > 0 {
		quiz.TimeLimit = updated.TimeLimit
	}
	if updated.Questions != nil {
		quiz.Questions = updated.Questions
	}
	if err := ValidateQuiz(quiz); err != nil {
		return nil, err
	}
	quiz.RecomputeTotalMarks()
	quiz.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *QuizService) ToggleQuiz(ctx context.Context, id string) (bool, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return false, ErrQuizNotFound
	}
	quiz.Enabled = !quiz.Enabled
	quiz.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, quiz); err != nil {
		return false, err
	}
	return quiz.Enabled, nil
}

// GradeQuiz scores a positionally-aligned answers array against the stored
// questions. Answers compare by string equality with the stored 1-indexed
// answer. Submission is stateless; no attempt is recorded.
func GradeQuiz(quiz *models.Quiz, answers []string) *models.SubmissionResult {
	result := &models.SubmissionResult{
		Results: make([]models.QuestionResult, 0, len(quiz.Questions)),
	}
	for i, question := range quiz.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		correct := answer != "" && answer == question.Answer
		awarded := 0
		if correct {
			awarded = question.Marks
		}
		result.Score += awarded
		result.MaxScore += question.Marks
		result.Results = append(result.Results, models.QuestionResult{
			Question:      question.Question,
			YourAnswer:    answer,
			CorrectAnswer: question.Answer,
			Correct:       correct,
			Marks:         question.Marks,
			MarksAwarded:  awarded,
		})
	}
	if result.MaxScore > 0 {
		pct := float64(result.Score) / float64(result.MaxScore) * 100
		result.Percentage = math.Round(pct*100) / 100
	}
	return result
}

func (s *QuizService) SubmitQuiz(ctx context.Context, id string, answers []string) (*models.SubmissionResult, error) {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	return GradeQuiz(quiz, answers), nil
}

// QuizCounts resolves a quiz count per section id. A section that fails to
// resolve reports 0 instead of failing the whole batch.
func (s *QuizService) QuizCounts(ctx context.Context, sectionIDs []string) map[string]int64 {
	counts := make(map[string]int64, len(sectionIDs))
	for _, id := range sectionIDs {
		count, err := s.Repo.CountBySection(ctx, id)
		if err != nil {
			counts[id] = 0
			continue
		}
		counts[id] = count
	}
	return counts
}
