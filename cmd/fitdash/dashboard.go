// ABOUTME: CLI commands for derived views: today, trends, progress and level.
// ABOUTME: Deltas are colored green when improving and red when declining.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/metrics"
	"github.com/spf13/cobra"
)

var (
	dashDate        string
	progGranularity string
	progExercise    string
	progMetric      string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Progress against the day's targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(dashDate)
		if err != nil {
			return err
		}
		s, err := trk.Metrics().DaySummary(day)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		fmt.Println(bold.Sprint(day))
		fmt.Printf("  Exercises  %d / %d  %s\n", s.ExercisesDone, s.ExerciseTarget,
			faint.Sprintf("%d left, %.0f min", s.ExercisesLeft, s.ExerciseMinutes))
		fmt.Printf("  Calories   %.0f / %d  %s\n", s.CaloriesIn, s.CalorieTarget,
			faint.Sprintf("%.0f remaining", s.CaloriesRemaining))
		fmt.Printf("  Sleep      %.2f h\n", s.SleepHours)
		if kg, ok := book.BodyWeightMap()[day]; ok {
			fmt.Printf("  Weight     %.1f kg\n", kg)
		}
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Daily and 7-day trends",
	Long: `Show today's value for each metric with its change from yesterday and the
change in its 7-day average from the previous 7 days.

Every increase is shown as improving (green) and every decrease as
declining (red), whatever the metric.

Calories out are exercise minutes times the burn rate
('fitdash settings burn-rate', default 6 kcal/min).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(dashDate)
		if err != nil {
			return err
		}
		trends, err := trk.Metrics().Trends(day)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(day), faint.Sprintf("burn rate %g kcal/min", book.BurnRate()))
		for _, t := range trends {
			today := fmt.Sprintf("%.0f %s", t.Today, t.Unit)
			if t.Unit == "" {
				today = fmt.Sprintf("%.2f h", t.Today)
			}
			fmt.Printf("  %s %s %s  %s %s\n",
				padRight(t.Label, 20),
				padRight(strings.TrimSpace(today), 10),
				colorDelta(t.DayDelta, t.Unit),
				faint.Sprintf("7d avg %.2f", t.WeekAvg),
				colorDelta(t.WeekDelta, ""))
		}
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Body weight, sleep and exercise series",
	Long: `Show progress series at daily, monthly or yearly granularity. Monthly and
yearly points are the mean of the days in each bucket.

Examples:
  fitdash progress
  fitdash progress --granularity monthly
  fitdash progress --exercise "Bench Press" --metric weight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := metrics.ParseGranularity(progGranularity)
		if err != nil {
			return err
		}
		m, err := metrics.ParseExerciseMetric(progMetric)
		if err != nil {
			return err
		}
		report, err := trk.Metrics().Progress(g, progExercise, m)
		if err != nil {
			return err
		}

		printSeries("Body weight (kg)", report.BodyWeight)
		printSeries("Sleep (h)", report.Sleep)
		if report.Exercise != "" {
			printSeries(fmt.Sprintf("%s (%s)", report.Exercise, report.Metric), report.Series)
		}
		return nil
	},
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "XP, level and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := trk.Gamify().Snapshot()

		width := 20
		filled := 0
		if p.Needed > 0 {
			filled = p.Current * width / p.Needed
		}
		bar := color.GreenString(strings.Repeat("█", filled)) + faint.Sprint(strings.Repeat("░", width-filled))

		fmt.Printf("Level %d  %s  %d/%d XP\n", p.Level.Level, bar, p.Current, p.Needed)
		fmt.Printf("Total XP %d\n", p.XP)
		fmt.Printf("Streak   %d day(s)", p.Streak)
		if p.LastActiveDay != "" {
			fmt.Print(faint.Sprintf("  last active %s", p.LastActiveDay))
		}
		fmt.Println()
		return nil
	},
}

func printSeries(title string, points []metrics.Point) {
	fmt.Println(color.New(color.Bold).Sprint(title))
	if len(points) == 0 {
		fmt.Println(faint.Sprint("  no data"))
		return
	}
	for _, p := range points {
		fmt.Printf("  %s %.2f\n", padRight(p.Date, 10), p.Value)
	}
}

func init() {
	addDateFlag(todayCmd, &dashDate)
	addDateFlag(trendsCmd, &dashDate)

	progressCmd.Flags().StringVarP(&progGranularity, "granularity", "g", "daily", "daily, monthly or yearly")
	progressCmd.Flags().StringVarP(&progExercise, "exercise", "x", "", "exercise name for a per-exercise series")
	progressCmd.Flags().StringVarP(&progMetric, "metric", "m", "weight", "exercise field: weight, reps or minutes")

	rootCmd.AddCommand(todayCmd, trendsCmd, progressCmd, levelCmd)
}
