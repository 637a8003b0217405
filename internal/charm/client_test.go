// ABOUTME: Unit tests for Charm key helpers.
// ABOUTME: Covers prefix filtering and key membership without a live server.
package charm

import (
	"reflect"
	"testing"
)

func TestFilterKeys(t *testing.T) {
	keys := [][]byte{
		[]byte("exercises_2024-02-01"),
		[]byte("sleep_map"),
		[]byte("exercises_2024-01-15"),
		[]byte("ex_target_2024-01-15"),
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"exercise days", "exercises_", []string{"exercises_2024-01-15", "exercises_2024-02-01"}},
		{"exact key", "sleep_map", []string{"sleep_map"}},
		{"no match", "foodlog_", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterKeys(keys, tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterKeys(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestContainsKey(t *testing.T) {
	keys := [][]byte{[]byte("xp_total"), []byte("daily_streak")}
	if !containsKey(keys, []byte("xp_total")) {
		t.Error("expected xp_total to be found")
	}
	if containsKey(keys, []byte("xp")) {
		t.Error("expected prefix-only match to be rejected")
	}
}

func TestDBName(t *testing.T) {
	if DBName != "fitdash" {
		t.Errorf("DBName = %q, want fitdash", DBName)
	}
}
