package common

import (
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

// TestParseLogLevel tests the string to level mapping including aliases
func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want logger.LogLevel
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{"warn", logger.WARNING},
		{"warning", logger.WARNING},
		{"error", logger.ERROR},
	}

	for _, c := range cases {
		got, err := ParseLogLevel(c.in)
		if err != nil {
			t.Errorf("ParseLogLevel(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseLogLevel("verbose"); err == nil {
		t.Error("unknown level must return an error")
	}
}
