package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

// AdminService backs the read-only dashboard endpoints. Every value is
// computed fresh per request; there is no cross-endpoint consistency.
type AdminService struct {
	Users       *repository.UserRepository
	Students    *repository.StudentRepository
	Courses     *repository.CourseRepository
	Enrollments *repository.EnrollmentRepository
	Attendance  *repository.AttendanceRepository
	Results     *repository.TestResultRepository
	Records     *repository.AcademicRecordRepository
}

func NewAdminService(
	users *repository.UserRepository,
	students *repository.StudentRepository,
	courses *repository.CourseRepository,
	enrollments *repository.EnrollmentRepository,
	attendance *repository.AttendanceRepository,
	results *repository.TestResultRepository,
	records *repository.AcademicRecordRepository,
) *AdminService {
	return &AdminService{
		Users:       users,
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Attendance:  attendance,
		Results:     results,
		Records:     records,
	}
}

func (s *AdminService) TotalStudents(ctx context.Context) (int64, error) {
	return s.Students.Count(ctx)
}

func (s *AdminService) ActiveLecturers(ctx context.Context) (int64, error) {
	return s.Users.CountByRoleAndStatus(ctx, models.RoleLecturer, models.StatusActive)
}

func (s *AdminService) PendingFeeStudents(ctx context.Context) (int64, error) {
	return s.Students.CountByFeesStatus(ctx, models.FeesPending)
}

func (s *AdminService) TotalCourses(ctx context.Context) (int64, error) {
	return s.Courses.Count(ctx)
}

func (s *AdminService) TotalEnrollments(ctx context.Context) (int64, error) {
	return s.Enrollments.Count(ctx)
}

func (s *AdminService) AllAttendance(ctx context.Context) ([]models.Attendance, error) {
	return s.Attendance.FindAll(ctx)
}

func (s *AdminService) AllTestResults(ctx context.Context) ([]models.TestResult, error) {
	return s.Results.FindAll(ctx)
}

func (s *AdminService) AllAcademicRecords(ctx context.Context) ([]models.AcademicRecord, error) {
	return s.Records.FindAll(ctx)
}
