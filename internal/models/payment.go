package models

import "time"

// PaymentOrder is stashed in Redis between order creation and webhook
// verification. Amount is in minor currency units (paise).
type PaymentOrder struct {
	OrderID   string    `json:"orderId"`
	Receipt   string    `json:"receipt"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	StudentID string    `json:"studentId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentVerification is the webhook/callback payload carrying the gateway
// signature over "orderId|paymentId".
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}
