package util

import (
	"encoding/hex"
	"testing"
	"time"
)

func TestRandomHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		size        int
		expectedLen int
	}{
		{name: "sixteen bytes", size: 16, expectedLen: 32},
		{name: "thirty-two bytes", size: 32, expectedLen: 64},
		{name: "zero bytes", size: 0, expectedLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomHex(tt.size)
			if err != nil {
				t.Fatalf("RandomHex(%d) returned error: %v", tt.size, err)
			}
			if len(got) != tt.expectedLen {
				t.Fatalf("RandomHex(%d) length = %d, want %d", tt.size, len(got), tt.expectedLen)
			}
			if _, err := hex.DecodeString(got); err != nil {
				t.Fatalf("RandomHex(%d) = %q is not valid hex: %v", tt.size, got, err)
			}
		})
	}
}

func TestRandomHexUnique(t *testing.T) {
	t.Parallel()

	first, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex returned error: %v", err)
	}

	second, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two RandomHex draws produced the same value: %s", first)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
