package config

import (
	"testing"
)

func TestLoadTokenExpiry(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  int64
	}{
		{"valid value", "4", 4},
		{"malformed value falls back", "soon", 1},
		{"empty value falls back", "", 1},
		{"zero falls back", "0", 1},
		{"negative falls back", "-2", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TOKEN_EXPIRY_HOURS", tc.value)

			cfg := Load()

			if cfg.JWTExpiryHours != tc.want {
				t.Errorf("Expected JWTExpiryHours %d for %q, got %d", tc.want, tc.value, cfg.JWTExpiryHours)
			}
		})
	}
}
