package dates

import (
	"reflect"
	"testing"
	"time"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-03-10", -7, "2024-03-03"},
		{"2024-03-31", 0, "2024-03-31"},
	}
	for _, tt := range tests {
		got, err := Add(tt.in, tt.n)
		if err != nil {
			t.Fatalf("Add(%s, %d) error: %v", tt.in, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Add(%s, %d) = %s, want %s", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestAddInvalid(t *testing.T) {
	if _, err := Add("01/02/2024", 1); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if Valid("2024-13-01") {
		t.Error("expected month 13 to be invalid")
	}
}

func TestWindow(t *testing.T) {
	got, err := Window("2024-01-03", 4)
	if err != nil {
		t.Fatalf("Window error: %v", err)
	}
	want := []string{"2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Window = %v, want %v", got, want)
	}
}

func TestFormatUsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2024, 5, 1, 7, 0, 0, 0, loc)
	if got := Format(ts); got != "2024-05-01" {
		t.Errorf("Format = %s, want 2024-05-01", got)
	}
}
