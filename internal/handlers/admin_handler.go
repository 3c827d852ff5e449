package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: s}
}

func (h *AdminHandler) TotalStudents(c *gin.Context) {
	count, err := h.Service.TotalStudents(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalStudents": count})
}

func (h *AdminHandler) ActiveLecturers(c *gin.Context) {
	count, err := h.Service.ActiveLecturers(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activeLecturers": count})
}

func (h *AdminHandler) PendingFeeStudents(c *gin.Context) {
	count, err := h.Service.PendingFeeStudents(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pendingFeeStudents": count})
}

func (h *AdminHandler) TotalCourses(c *gin.Context) {
	count, err := h.Service.TotalCourses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalCourses": count})
}

func (h *AdminHandler) TotalEnrollments(c *gin.Context) {
	count, err := h.Service.TotalEnrollments(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalEnrollments": count})
}

func (h *AdminHandler) AllAttendance(c *gin.Context) {
	records, err := h.Service.AllAttendance(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) AllTestResults(c *gin.Context) {
	results, err := h.Service.AllTestResults(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *AdminHandler) AllAcademicRecords(c *gin.Context) {
	records, err := h.Service.AllAcademicRecords(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}
