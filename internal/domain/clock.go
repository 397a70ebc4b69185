package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day with no date attached, stored as
// minutes since midnight. Schedule entries reuse it against an implicit
// single 24-hour window.
type ClockTime int

const MinutesPerDay = 24 * 60

// ParseClockTime reads "HH:MM" or "HH:MM:SS". Single-digit hours are
// accepted ("0:00"); seconds are accepted and discarded since the schedule
// operates at minute grain.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrInvalidTimeFormat)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrInvalidTimeFormat)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("parse clock time %q: %w", s, ErrInvalidTimeFormat)
	}
	if len(parts) == 3 {
		second, err := strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return 0, fmt.Errorf("parse clock time %q: %w", s, ErrInvalidTimeFormat)
		}
	}

	return ClockTime(hour*60 + minute), nil
}

// Hour returns the hour-of-day component (0-23).
func (c ClockTime) Hour() int { return int(c) / 60 }

// Minute returns the minute-of-hour component (0-59).
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
