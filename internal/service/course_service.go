package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrAmountRequired  = errors.New("amount is required for paid courses")
)

type CourseService struct {
	Repo     *repository.CourseRepository
	QuizRepo *repository.QuizRepository
	EnrRepo  *repository.EnrollmentRepository
}

func NewCourseService(repo *repository.CourseRepository, quizRepo *repository.QuizRepository, enrRepo *repository.EnrollmentRepository) *CourseService {
	return &CourseService{Repo: repo, QuizRepo: quizRepo, EnrRepo: enrRepo}
}

// ParseSections decodes the JSON-encoded sections form field. A malformed
// payload degrades to an empty list rather than failing course creation.
func ParseSections(raw string) []models.Section {
	if raw == "" {
		return []models.Section{}
	}
	var sections []models.Section
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return []models.Section{}
	}
	for i := range sections {
		if sections[i].ID.IsZero() {
			sections[i].ID = primitive.NewObjectID()
		}
		if sections[i].Lessons == nil {
			sections[i].Lessons = []models.Lesson{}
		}
		for j := range sections[i].Lessons {
			if sections[i].Lessons[j].ID.IsZero() {
				sections[i].Lessons[j].ID = primitive.NewObjectID()
			}
		}
	}
	return sections
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.Status == models.CourseStatusPaid && course.Amount <= 0 {
		return ErrAmountRequired
	}
	if course.Sections == nil {
		course.Sections = []models.Section{}
	}
	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []primitive.ObjectID{}
	}
	course.Enabled = true
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	return s.Repo.Create(ctx, course)
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CourseService) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	return s.Repo.Search(ctx, query)
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.Repo.FindByID(ctx, id)
}

// UpdateCourse merges top-level fields. A sections value in the update
// replaces the whole embedded tree, matching the admin edit flow where the
// client sends the full array back.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, update map[string]interface{}) error {
	fields := bson.M{"updated_at": time.Now()}
	for key, value := range update {
		switch key {
		case "title", "category", "description", "level", "status", "amount", "image", "enabled":
			fields[key] = value
		case "sections":
			raw, err := json.Marshal(value)
			if err != nil {
				continue
			}
			var sections []models.Section
			if err := json.Unmarshal(raw, &sections); err != nil {
				continue
			}
			for i := range sections {
				if sections[i].ID.IsZero() {
					sections[i].ID = primitive.NewObjectID()
				}
				for j := range sections[i].Lessons {
					if sections[i].Lessons[j].ID.IsZero() {
						sections[i].Lessons[j].ID = primitive.NewObjectID()
					}
				}
			}
			fields["sections"] = sections
		}
	}
	return s.Repo.Update(ctx, id, fields)
}

// DeleteCourse removes the course and every quiz hanging off it, so quiz
// documents cannot be orphaned by a course deletion.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	course, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return ErrCourseNotFound
	}
	if err := s.QuizRepo.DeleteByCourse(ctx, course.ID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *CourseService) GetSections(ctx context.Context, courseID string) ([]models.Section, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	return course.Sections, nil
}

func (s *CourseService) AddSection(ctx context.Context, courseID string, section models.Section) (*models.Section, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	section.ID = primitive.NewObjectID()
	if section.Lessons == nil {
		section.Lessons = []models.Lesson{}
	}
	course.Sections = append(course.Sections, section)
	course.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, course); err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection drops the section from the embedded tree and deletes the
// quizzes keyed to it.
func (s *CourseService) DeleteSection(ctx context.Context, courseID, sectionID string) error {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return ErrCourseNotFound
	}
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return ErrSectionNotFound
	}
	found := false
	sections := course.Sections[:0]
	for _, section := range course.Sections {
		if section.ID == secID {
			found = true
			continue
		}
		sections = append(sections, section)
	}
	if !found {
		return ErrSectionNotFound
	}
	course.Sections = sections
	course.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, course); err != nil {
		return err
	}
	return s.QuizRepo.DeleteBySection(ctx, secID)
}

func (s *CourseService) AddLesson(ctx context.Context, courseID, sectionID string, lesson models.Lesson) (*models.Lesson, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, ErrCourseNotFound
	}
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, ErrSectionNotFound
	}
	for i := range course.Sections {
		if course.Sections[i].ID != secID {
			continue
		}
		lesson.ID = primitive.NewObjectID()
		course.Sections[i].Lessons = append(course.Sections[i].Lessons, lesson)
		course.UpdatedAt = time.Now()
		if err := s.Repo.Replace(ctx, course); err != nil {
			return nil, err
		}
		return &lesson, nil
	}
	return nil, ErrSectionNotFound
}

func (s *CourseService) DeleteLesson(ctx context.Context, courseID, sectionID, lessonID string) error {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return ErrCourseNotFound
	}
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return ErrSectionNotFound
	}
	lesID, err := primitive.ObjectIDFromHex(lessonID)
	if err != nil {
		return ErrLessonNotFound
	}
	for i := range course.Sections {
		if course.Sections[i].ID != secID {
			continue
		}
		lessons := course.Sections[i].Lessons
		for j := range lessons {
			if lessons[j].ID == lesID {
				course.Sections[i].Lessons = append(lessons[:j], lessons[j+1:]...)
				course.UpdatedAt = time.Now()
				return s.Repo.Replace(ctx, course)
			}
		}
		return ErrLessonNotFound
	}
	return ErrSectionNotFound
}

// ToggleCourse flips the course-level enabled flag. Toggles never cascade:
// section and lesson flags are independent of their parents.
func (s *CourseService) ToggleCourse(ctx context.Context, courseID string) (bool, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return false, ErrCourseNotFound
	}
	course.Enabled = !course.Enabled
	course.UpdatedAt = time.Now()
	if err := s.Repo.Replace(ctx, course); err != nil {
		return false, err
	}
	return course.Enabled, nil
}

func (s *CourseService) ToggleSection(ctx context.Context, courseID, sectionID string) (bool, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return false, ErrCourseNotFound
	}
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return false, ErrSectionNotFound
	}
	for i := range course.Sections {
		if course.Sections[i].ID != secID {
			continue
		}
		course.Sections[i].Enabled = !course.Sections[i].Enabled
		course.UpdatedAt = time.Now()
		if err := s.Repo.Replace(ctx, course); err != nil {
			return false, err
		}
		return course.Sections[i].Enabled, nil
	}
	return false, ErrSectionNotFound
}

func (s *CourseService) ToggleLesson(ctx context.Context, courseID, sectionID, lessonID string) (bool, error) {
	course, err := s.Repo.FindByID(ctx, courseID)
	if err != nil {
		return false, ErrCourseNotFound
	}
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return false, ErrSectionNotFound
	}
	lesID, err := primitive.ObjectIDFromHex(lessonID)
	if err != nil {
		return false, ErrLessonNotFound
	}
	for i := range course.Sections {
		if course.Sections[i].ID != secID {
			continue
		}
		for j := range course.Sections[i].Lessons {
			if course.Sections[i].Lessons[j].ID != lesID {
				continue
			}
			course.Sections[i].Lessons[j].Enabled = !course.Sections[i].Lessons[j].Enabled
			course.UpdatedAt = time.Now()
			if err := s.Repo.Replace(ctx, course); err != nil {
				return false, err
			}
			return course.Sections[i].Lessons[j].Enabled, nil
		}
		return false, ErrLessonNotFound
	}
	return false, ErrSectionNotFound
}

func (s *CourseService) GetStatistics(ctx context.Context) (*models.CourseStatistics, error) {
	return s.EnrRepo.Statistics(ctx, 30)
}
