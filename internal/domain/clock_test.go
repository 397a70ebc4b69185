package domain

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  ClockTime
	}{
		{"0:00", 0},
		{"00:00", 0},
		{"6:45", 6*60 + 45},
		{"23:30", 23*60 + 30},
		{"09:05:59", 9*60 + 5},
		{" 12:00 ", 12 * 60},
	}

	for _, c := range cases {
		got, err := ParseClockTime(c.input)
		if err != nil {
			t.Errorf("ParseClockTime(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClockTime(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseClockTimeInvalid(t *testing.T) {
	inputs := []string{"", "noon", "24:00", "12:60", "12", "12:00:60", "-1:00", "1:2:3:4"}

	for _, in := range inputs {
		_, err := ParseClockTime(in)
		if err == nil {
			t.Errorf("ParseClockTime(%q) expected error, got none", in)
			continue
		}
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("ParseClockTime(%q) error = %v, want ErrInvalidTimeFormat", in, err)
		}
	}
}

func TestClockTimeComponents(t *testing.T) {
	c := ClockTime(23*60 + 30)
	if c.Hour() != 23 {
		t.Errorf("Hour() = %d, want 23", c.Hour())
	}
	if c.Minute() != 30 {
		t.Errorf("Minute() = %d, want 30", c.Minute())
	}
	if c.String() != "23:30" {
		t.Errorf("String() = %q, want \"23:30\"", c.String())
	}
}
