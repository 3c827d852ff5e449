package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"time"

	"learning-service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidSignature = errors.New("payment signature verification failed")
	ErrOrderNotFound    = errors.New("payment order not found or expired")
)

const orderTTL = time.Hour

// PaymentService wraps the gateway order/verify recipe. Orders await their
// webhook in Redis under a TTL; a successful verification turns into an
// enrollment.
type PaymentService struct {
	rdb         *redis.Client
	secret      string
	Enrollments *EnrollmentService
}

func NewPaymentService(rdb *redis.Client, secret string, enrollments *EnrollmentService) *PaymentService {
	return &PaymentService{rdb: rdb, secret: secret, Enrollments: enrollments}
}

func orderKey(orderID string) string {
	return "payment:order:" + orderID
}

// toMinorUnits converts a rupee amount to paise. Rounding matters: bare
// truncation loses a paisa on amounts like 19.99 whose float product lands
// just below the integer.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder converts the amount to minor currency units and stashes the
// pending order. The order id is what the gateway echoes back on callback.
func (s *PaymentService) CreateOrder(ctx context.Context, studentID, courseID string, amount float64) (*models.PaymentOrder, error) {
	order := &models.PaymentOrder{
		OrderID:   "order_" + uuid.NewString(),
		Receipt:   "rcpt_" + uuid.NewString(),
		Amount:    toMinorUnits(amount),
		Currency:  "INR",
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: time.Now(),
	}
	raw, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, orderKey(order.OrderID), raw, orderTTL).Err(); err != nil {
		return nil, err
	}
	return order, nil
}

// VerifySignature checks the HMAC-SHA256 of "orderId|paymentId" against the
// gateway-provided signature, per the documented Razorpay recipe.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyAndEnroll validates the callback signature and, on success, creates
// the enrollment with the stashed order amount.
func (s *PaymentService) VerifyAndEnroll(ctx context.Context, v *models.PaymentVerification) (*models.Enrollment, error) {
	if !VerifySignature(s.secret, v.OrderID, v.PaymentID, v.Signature) {
		return nil, ErrInvalidSignature
	}

	raw, err := s.rdb.Get(ctx, orderKey(v.OrderID)).Bytes()
	if err != nil {
		return nil, ErrOrderNotFound
	}
	var order models.PaymentOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, err
	}

	enrollment, err := s.Enrollments.Enroll(ctx, order.StudentID, order.CourseID, float64(order.Amount)/100)
	if err != nil {
		return nil, err
	}

	s.rdb.Del(ctx, orderKey(v.OrderID))
	return enrollment, nil
}
