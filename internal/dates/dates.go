// ABOUTME: ISO calendar date helpers (YYYY-MM-DD).
// ABOUTME: Day arithmetic is calendar-based and independent of time zones.
package dates

import (
	"fmt"
	"time"
)

// Layout is the ISO date layout used for keys and display.
const Layout = "2006-01-02"

// Format renders t's calendar date in its own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse validates an ISO date string.
func Parse(iso string) (time.Time, error) {
	t, err := time.Parse(Layout, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", iso)
	}
	return t, nil
}

// Valid reports whether iso is a well-formed ISO date.
func Valid(iso string) bool {
	_, err := Parse(iso)
	return err == nil
}

// Add shifts iso by n calendar days.
func Add(iso string, n int) (string, error) {
	t, err := Parse(iso)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// Window returns the n consecutive days ending at end inclusive, oldest first.
func Window(end string, n int) ([]string, error) {
	t, err := Parse(end)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, Format(t.AddDate(0, 0, -i)))
	}
	return out, nil
}
