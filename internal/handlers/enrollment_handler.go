package handlers

import (
	"context"
	"errors"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	Service *service.EnrollmentService
}

func NewEnrollmentHandler(s *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{Service: s}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req struct {
		Student       string  `json:"student" binding:"required"`
		Course        string  `json:"course" binding:"required"`
		PaymentAmount float64 `json:"paymentAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	enrollment, err := h.Service.Enroll(context.Background(), req.Student, req.Course, req.PaymentAmount)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyEnrolled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Student already enrolled"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	enrolled, err := h.Service.ListByStudent(context.Background(), c.Param("studentId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrolled)
}

func (h *EnrollmentHandler) ListByCourse(c *gin.Context) {
	enrollments, err := h.Service.ListByCourse(context.Background(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
