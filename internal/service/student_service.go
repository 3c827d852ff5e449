package service

import (
	"context"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentService struct {
	Repo        *repository.StudentRepository
	Enrollments *repository.EnrollmentRepository
	Attendance  *repository.AttendanceRepository
	Records     *repository.AcademicRecordRepository
	Results     *repository.TestResultRepository
}

func NewStudentService(
	repo *repository.StudentRepository,
	enrollments *repository.EnrollmentRepository,
	attendance *repository.AttendanceRepository,
	records *repository.AcademicRecordRepository,
	results *repository.TestResultRepository,
) *StudentService {
	return &StudentService{
		Repo:        repo,
		Enrollments: enrollments,
		Attendance:  attendance,
		Records:     records,
		Results:     results,
	}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.Repo.FindAll(ctx)
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if student.FeesStatus == "" {
		student.FeesStatus = models.FeesPending
	}
	student.CreatedAt = time.Now()
	return s.Repo.Create(ctx, student)
}

func (s *StudentService) UpdateStudent(ctx context.Context, id string, update map[string]interface{}) error {
	fields := bson.M{}
	for key, value := range update {
		switch key {
		case "name", "email", "phone", "course", "fees_status":
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Repo.Update(ctx, id, fields)
}

// DeleteStudent cascades to enrollments, academic records and attendance.
// Test results are intentionally left behind as historical data.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	student, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return ErrStudentNotFound
	}
	if err := s.Enrollments.DeleteByStudent(ctx, student.ID); err != nil {
		return err
	}
	if err := s.Records.DeleteByStudent(ctx, student.ID); err != nil {
		return err
	}
	if err := s.Attendance.DeleteByStudent(ctx, student.ID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *StudentService) RecordAttendance(ctx context.Context, record *models.Attendance) error {
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	return s.Attendance.Create(ctx, record)
}

func (s *StudentService) AttendanceByStudent(ctx context.Context, studentID string) ([]models.Attendance, error) {
	id, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	return s.Attendance.FindByStudent(ctx, id)
}

func (s *StudentService) RecordTestResult(ctx context.Context, result *models.TestResult) error {
	if result.Date.IsZero() {
		result.Date = time.Now()
	}
	return s.Results.Create(ctx, result)
}

func (s *StudentService) TestResultsByStudent(ctx context.Context, studentID string) ([]models.TestResult, error) {
	id, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	return s.Results.FindByStudent(ctx, id)
}

func (s *StudentService) RecordAcademic(ctx context.Context, record *models.AcademicRecord) error {
	return s.Records.Create(ctx, record)
}

func (s *StudentService) AcademicByStudent(ctx context.Context, studentID string) ([]models.AcademicRecord, error) {
	id, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	return s.Records.FindByStudent(ctx, id)
}
