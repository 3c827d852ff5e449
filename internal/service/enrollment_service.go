package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrAlreadyEnrolled = errors.New("Student already enrolled")

type EnrollmentService struct {
	Repo       *repository.EnrollmentRepository
	CourseRepo *repository.CourseRepository
}

func NewEnrollmentService(repo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{Repo: repo, CourseRepo: courseRepo}
}

// Enroll checks for an existing (student, course) pair before inserting.
// The unique compound index backstops the check: a racing duplicate insert
// fails at the storage layer and surfaces as ErrAlreadyEnrolled too.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID string, paymentAmount float64) (*models.Enrollment, error) {
	stuID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student id")
	}
	crsID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, errors.New("invalid course id")
	}

	exists, err := s.Repo.Exists(ctx, stuID, crsID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		Student:        stuID,
		Course:         crsID,
		PaymentAmount:  paymentAmount,
		EnrollmentDate: time.Now(),
	}
	if err := s.Repo.Create(ctx, enrollment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	if err := s.CourseRepo.AddEnrolledStudent(ctx, crsID, stuID); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]models.EnrolledCourse, error) {
	stuID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, errors.New("invalid student id")
	}
	return s.Repo.FindByStudent(ctx, stuID)
}

func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	crsID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, errors.New("invalid course id")
	}
	return s.Repo.FindByCourse(ctx, crsID)
}
