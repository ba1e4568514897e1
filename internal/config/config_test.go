package config

import (
	"os"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      string
		expected string
	}{
		{
			name:     "variable set",
			key:      "TEST_GETENV_SET",
			value:    "custom",
			def:      "fallback",
			expected: "custom",
		},
		{
			name:     "variable not set uses default",
			key:      "TEST_GETENV_MISSING",
			def:      "fallback",
			expected: "fallback",
		},
		{
			name:     "whitespace-only value uses default",
			key:      "TEST_GETENV_BLANK",
			value:    "   ",
			def:      "fallback",
			expected: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenv() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      int
		expected int
	}{
		{
			name:     "valid integer",
			key:      "TEST_INT_VALID",
			value:    "42",
			def:      7,
			expected: 42,
		},
		{
			name:     "invalid integer uses default",
			key:      "TEST_INT_INVALID",
			value:    "not-a-number",
			def:      7,
			expected: 7,
		},
		{
			name:     "missing uses default",
			key:      "TEST_INT_MISSING",
			def:      7,
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenvInt(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DUR_VALID",
			value:    "90s",
			def:      time.Second,
			expected: 90 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DUR_INVALID",
			value:    "ninety",
			def:      time.Second,
			expected: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VALID", "false")
	if mustBool("TEST_BOOL_VALID", true) {
		t.Error("mustBool() should honor an explicit false")
	}

	t.Setenv("TEST_BOOL_INVALID", "maybe")
	if !mustBool("TEST_BOOL_INVALID", true) {
		t.Error("mustBool() should fall back to default on invalid value")
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":8080")
	}
	if cfg.CatalogFile != "catalog.yaml" {
		t.Errorf("CatalogFile = %q, want %q", cfg.CatalogFile, "catalog.yaml")
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want %q", cfg.RedisAddr, "localhost:6379")
	}
	if cfg.BookingRetention != 30*24*time.Hour {
		t.Errorf("BookingRetention = %v, want %v", cfg.BookingRetention, 30*24*time.Hour)
	}
}
