package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_Min(t *testing.T) {
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min(2, 5) expected to be 2. Got %v", got)
	}
	if got := Min(5, 2); got != 2 {
		t.Errorf("Min(5, 2) expected to be 2. Got %v", got)
	}
	if got := Min(3, 3); got != 3 {
		t.Errorf("Min(3, 3) expected to be 3. Got %v", got)
	}
}

func TestUtils_Max(t *testing.T) {
	if got := Max(2, 5); got != 5 {
		t.Errorf("Max(2, 5) expected to be 5. Got %v", got)
	}
	if got := Max(5.5, 2.2); got != 5.5 {
		t.Errorf("Max(5.5, 2.2) expected to be 5.5. Got %v", got)
	}
}

func TestUtils_Abs(t *testing.T) {
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs(-7) expected to be 7. Got %v", got)
	}
	if got := Abs(7); got != 7 {
		t.Errorf("Abs(7) expected to be 7. Got %v", got)
	}
}

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("boom", ErrorMessage)
	if !strings.HasPrefix(s, ErrorColor) || !strings.HasSuffix(s, DefaultColor) {
		t.Errorf("error message expected to be wrapped in color escapes. Got %q", s)
	}

	if got := DecorateText("plain", MessageType(99)); got != "plain" {
		t.Errorf("unknown message type expected to pass through undecorated. Got %q", got)
	}
}

func TestUtils_FormatTime(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{1500 * time.Millisecond, "1.50s"},
		{90 * time.Second, "1m 30.00s"},
		{3675 * time.Second, "1h 1m 15.00s"},
	}

	for _, tc := range tests {
		if got := FormatTime(tc.d); got != tc.expected {
			t.Errorf("FormatTime(%v) expected to be %q. Got %q", tc.d, tc.expected, got)
		}
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/rasters/sample.pgm") {
		t.Errorf("a well-structured URL expected to be valid")
	}
	if IsValidUrl("testdata/sample.pgm") {
		t.Errorf("a relative file path expected to be invalid as URL")
	}
}
