package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	paymentService := service.NewPaymentService(nil, "test-secret", nil)
	handler := NewPaymentHandler(paymentService, "key_test")

	r := gin.New()
	r.POST("/api/payments/verify", handler.VerifyPayment)

	body := `{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_123","razorpay_signature":"not-the-real-signature"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("Expected success=false in response, got %s", w.Body.String())
	}
}

func TestVerifyPaymentRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	paymentService := service.NewPaymentService(nil, "test-secret", nil)
	handler := NewPaymentHandler(paymentService, "key_test")

	r := gin.New()
	r.POST("/api/payments/verify", handler.VerifyPayment)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
