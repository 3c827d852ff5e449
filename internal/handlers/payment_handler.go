package handlers

import (
	"context"
	"errors"
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service *service.PaymentService
	KeyID   string
}

func NewPaymentHandler(s *service.PaymentService, keyID string) *PaymentHandler {
	return &PaymentHandler{Service: s, KeyID: keyID}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Student string  `json:"student" binding:"required"`
		Course  string  `json:"course" binding:"required"`
		Amount  float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Service.CreateOrder(context.Background(), req.Student, req.Course, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "keyId": h.KeyID})
}

// VerifyPayment is the gateway callback. A bad signature is a hard 400 with
// success=false and no enrollment is created.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var v models.PaymentVerification
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	enrollment, err := h.Service.VerifyAndEnroll(context.Background(), &v)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"success": false})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, service.ErrAlreadyEnrolled):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Student already enrolled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "enrollment": enrollment})
}
