// ABOUTME: Shared CLI helpers for dates, ID prefixes and colored output.
// ABOUTME: Keeps formatting consistent across commands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/dates"
	"github.com/harperreed/fitdash/internal/metrics"
	"github.com/spf13/cobra"
)

var faint = color.New(color.Faint)

// addDateFlag registers the shared --date flag on cmd.
func addDateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "date", "d", "", "day (YYYY-MM-DD or \"yesterday\", default today)")
}

// resolveDay turns a --date value into a calendar date string.
func resolveDay(s string) (string, error) {
	today := trk.Today()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return dates.Add(today, -1)
	}
	if !dates.Valid(s) {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return s, nil
}

// parseNumber parses a CLI argument as a float.
func parseNumber(label, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", label, s)
	}
	return v, nil
}

// optFloat returns a pointer to v when the flag was given.
func optFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// matchID finds the single id with the given prefix.
func matchID(ids []string, prefix string) (string, error) {
	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("not found: %s", prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("ambiguous ID prefix %s matches %d entries", prefix, len(found))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// colorDelta renders a delta colored by direction.
func colorDelta(delta float64, unit string) string {
	s := metrics.FormatDelta(delta, unit)
	switch metrics.Classify(delta) {
	case metrics.Improving:
		return color.GreenString(s)
	case metrics.Declining:
		return color.RedString(s)
	default:
		return faint.Sprint(s)
	}
}

func formatOpt(p *float64, suffix string) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64) + suffix
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
