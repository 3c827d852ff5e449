package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test-razorpay-secret"

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			"valid signature",
			"order_abc", "pay_123",
			signPayload(secret, "order_abc", "pay_123"),
			true,
		},
		{
			"tampered order id",
			"order_xyz", "pay_123",
			signPayload(secret, "order_abc", "pay_123"),
			false,
		},
		{
			"tampered payment id",
			"order_abc", "pay_999",
			signPayload(secret, "order_abc", "pay_123"),
			false,
		},
		{
			"garbage signature",
			"order_abc", "pay_123",
			"deadbeef",
			false,
		},
		{
			"empty signature",
			"order_abc", "pay_123",
			"",
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := VerifySignature(secret, tc.orderID, tc.paymentID, tc.signature)
			if got != tc.want {
				t.Errorf("VerifySignature = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole rupees", 500, 50000},
		{"zero", 0, 0},
		{"19.99 keeps its last paisa", 19.99, 1999},
		{"29.99 keeps its last paisa", 29.99, 2999},
		{"499.99 keeps its last paisa", 499.99, 49999},
		{"single paisa", 0.01, 1},
		{"arbitrary two-decimal amount", 123.45, 12345},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := toMinorUnits(tc.amount)
			if got != tc.want {
				t.Errorf("toMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
			}
		})
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	sig := signPayload("secret-a", "order_abc", "pay_123")
	if VerifySignature("secret-b", "order_abc", "pay_123", sig) {
		t.Error("Expected verification to fail with a different secret")
	}
}
