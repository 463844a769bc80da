package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical reservation date format.
const DateLayout = "2006-01-02"

// ParseDate parses a canonical "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationErr(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}

// DayKindFor classifies a date as weekday or weekend.
func DayKindFor(date time.Time) DayKind {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayKind_Weekend
	default:
		return DayKind_Weekday
	}
}

// ParseClockTime parses a canonical "HH:MM" time string into minutes of day.
// The shape is strict: two digits, a colon, two digits.
func ParseClockTime(s string) (int, error) {
	wellFormed := len(s) == 5 && s[2] == ':' &&
		isDigit(s[0]) && isDigit(s[1]) && isDigit(s[3]) && isDigit(s[4])
	if !wellFormed {
		return 0, NewValidationErr(fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, NewValidationErr(fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	return hour*60 + minute, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FormatClockTime formats minutes of day back into "HH:MM".
func FormatClockTime(minutesOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minutesOfDay/60, minutesOfDay%60)
}
