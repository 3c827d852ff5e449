package handlers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseHandler struct {
	Service   *service.CourseService
	UploadDir string
}

func NewCourseHandler(s *service.CourseService, uploadDir string) *CourseHandler {
	return &CourseHandler{Service: s, UploadDir: uploadDir}
}

// CreateCourse accepts multipart form data: scalar fields, a JSON-encoded
// sections field and an optional image file.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64)
	course := models.Course{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Level:       c.PostForm("level"),
		Status:      c.PostForm("status"),
		Amount:      amount,
		Sections:    service.ParseSections(c.PostForm("sections")),
	}
	if course.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dst := filepath.Join(h.UploadDir, filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		course.Image = dst
	}

	if err := h.Service.CreateCourse(context.Background(), &course); err != nil {
		if errors.Is(err, service.ErrAmountRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Service.ListCourses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) SearchCourses(c *gin.Context) {
	query := c.Query("q")
	courses, err := h.Service.SearchCourses(context.Background(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.Service.GetCourse(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateCourse(context.Background(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.Service.DeleteCourse(context.Background(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *CourseHandler) GetSections(c *gin.Context) {
	sections, err := h.Service.GetSections(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *CourseHandler) AddSection(c *gin.Context) {
	var section models.Section
	if err := c.ShouldBindJSON(&section); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.AddSection(context.Background(), c.Param("id"), section)
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CourseHandler) DeleteSection(c *gin.Context) {
	err := h.Service.DeleteSection(context.Background(), c.Param("id"), c.Param("sectionId"))
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *CourseHandler) AddLesson(c *gin.Context) {
	var lesson models.Lesson
	if err := c.ShouldBindJSON(&lesson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Service.AddLesson(context.Background(), c.Param("id"), c.Param("sectionId"), lesson)
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	err := h.Service.DeleteLesson(context.Background(), c.Param("id"), c.Param("sectionId"), c.Param("lessonId"))
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *CourseHandler) ToggleCourse(c *gin.Context) {
	enabled, err := h.Service.ToggleCourse(context.Background(), c.Param("id"))
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (h *CourseHandler) ToggleSection(c *gin.Context) {
	enabled, err := h.Service.ToggleSection(context.Background(), c.Param("id"), c.Param("sectionId"))
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (h *CourseHandler) ToggleLesson(c *gin.Context) {
	enabled, err := h.Service.ToggleLesson(context.Background(), c.Param("id"), c.Param("sectionId"), c.Param("lessonId"))
	if err != nil {
		h.writeTreeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (h *CourseHandler) GetStatistics(c *gin.Context) {
	stats, err := h.Service.GetStatistics(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *CourseHandler) writeTreeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	case errors.Is(err, service.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
	case errors.Is(err, service.ErrLessonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
