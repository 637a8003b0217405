// ABOUTME: CLI commands for logging exercises.
// ABOUTME: Supports add, edit, rm, list, target, presets and names subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
	"github.com/harperreed/fitdash/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	exDate    string
	exSets    float64
	exReps    float64
	exMinutes float64
	exWeight  float64
	exNote    string
	exPreset  bool
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Log and manage exercises",
	Long: `Log exercises for a day. Each entry can carry sets, reps, minutes, a
weight (strength exercises only) and a note.

Exercises are classified by name: strength (bench, squat, curl...), cardio
(run, bike, stair...) or bodyweight (everything else). Weight is dropped
for non-strength entries.

COMMANDS:

  add       Log an exercise (+20 XP)
  edit      Change an entry
  rm        Remove an entry
  list      Show the day's exercises and progress
  target    Set the day's exercise-count target
  presets   Show built-in quick-add presets
  names     List every exercise name ever logged

EXAMPLES:

  fitdash exercise add "Bench Press" --sets 3 --reps 8 --weight 50
  fitdash exercise add Running --minutes 30 --note "easy pace"
  fitdash exercise add deadlift --preset --reps 3
  fitdash exercise rm 3f2a9c1e`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Log an exercise",
	Long: `Log an exercise. With --preset the name picks a built-in preset whose
defaults fill any flag you leave out.

Examples:
  fitdash exercise add Squat --sets 5 --reps 5 --weight 80
  fitdash exercise add Plank --preset
  fitdash exercise add Cycling --minutes 45 --date yesterday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(exDate)
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		var preset *models.ExercisePreset
		if exPreset {
			p, ok := models.FindPreset(name)
			if !ok {
				return fmt.Errorf("unknown preset: %s (see 'fitdash exercise presets')", name)
			}
			preset = &p
		}

		ex, err := trk.AddExercise(day, draftFromFlags(cmd, name), preset)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s (+%d XP)", ex.Name, gamify.XPExercise)
		printExercise(*ex)
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise entry",
	Long: `Edit an exercise by ID or ID prefix. Flags you pass replace the stored
values; anything you leave out keeps its current value.

Examples:
  fitdash exercise edit 3f2a --reps 10
  fitdash exercise edit 3f2a --name "Incline Bench" --weight 40`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(exDate)
		if err != nil {
			return err
		}
		current, err := findExercise(day, args[0])
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		patch := draftFromFlags(cmd, name)
		patch.Sets = keep(patch.Sets, current.Sets)
		patch.Reps = keep(patch.Reps, current.Reps)
		patch.Minutes = keep(patch.Minutes, current.Minutes)
		patch.Weight = keep(patch.Weight, current.Weight)
		if !cmd.Flags().Changed("note") && current.Note != nil {
			patch.Note = *current.Note
		}

		ex, err := trk.EditExercise(day, current.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to edit exercise: %w", err)
		}

		color.Green("✓ Updated %s", ex.Name)
		printExercise(*ex)
		return nil
	},
}

var exerciseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Remove an exercise entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(exDate)
		if err != nil {
			return err
		}
		ex, err := findExercise(day, args[0])
		if err != nil {
			return err
		}
		if err := trk.RemoveExercise(day, ex.ID); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}

		color.Yellow("✗ Removed %s", ex.Name)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the day's exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(exDate)
		if err != nil {
			return err
		}
		summary, err := trk.Metrics().DaySummary(day)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %d/%d done, %d left, %.0f min\n",
			color.New(color.Bold).Sprint(day),
			summary.ExercisesDone, summary.ExerciseTarget, summary.ExercisesLeft, summary.ExerciseMinutes)

		list := book.Exercises(day)
		if len(list) == 0 {
			fmt.Println("No exercises logged.")
			return nil
		}
		for _, ex := range list {
			printExercise(ex)
		}
		return nil
	},
}

var exerciseTargetCmd = &cobra.Command{
	Use:   "target <count>",
	Short: "Set the day's exercise target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(exDate)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		if err := trk.SetExerciseTarget(day, n); err != nil {
			return fmt.Errorf("failed to set target: %w", err)
		}

		color.Green("✓ Exercise target for %s: %d", day, n)
		return nil
	},
}

var exercisePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show built-in exercise presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range models.CommonExercises {
			fmt.Printf("%s %s %s\n",
				padRight(p.Name, 16),
				padRight(models.ClassifyExercise(p.Name).Label(), 11),
				faint.Sprint(describeTemplate(p.Template)))
		}
		return nil
	},
}

var exerciseNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "List every exercise name ever logged",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := trk.Metrics().ExerciseNames()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No exercises logged yet.")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

func draftFromFlags(cmd *cobra.Command, name string) tracker.ExerciseDraft {
	return tracker.ExerciseDraft{
		Name:    name,
		Sets:    optFloat(cmd, "sets", exSets),
		Reps:    optFloat(cmd, "reps", exReps),
		Minutes: optFloat(cmd, "minutes", exMinutes),
		Weight:  optFloat(cmd, "weight", exWeight),
		Note:    exNote,
	}
}

func keep(v, current *float64) *float64 {
	if v != nil {
		return v
	}
	return current
}

func findExercise(day, prefix string) (*models.ExerciseEntry, error) {
	list := book.Exercises(day)
	ids := make([]string, 0, len(list))
	for _, ex := range list {
		ids = append(ids, ex.ID)
	}
	id, err := matchID(ids, prefix)
	if err != nil {
		return nil, fmt.Errorf("exercise %w on %s", err, day)
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("exercise not found: %s", prefix)
}

func printExercise(ex models.ExerciseEntry) {
	var parts []string
	if ex.Sets != nil && ex.Reps != nil {
		parts = append(parts, formatOpt(ex.Sets, "")+"×"+formatOpt(ex.Reps, ""))
	} else {
		if s := formatOpt(ex.Sets, " sets"); s != "" {
			parts = append(parts, s)
		}
		if s := formatOpt(ex.Reps, " reps"); s != "" {
			parts = append(parts, s)
		}
	}
	if s := formatOpt(ex.Weight, " kg"); s != "" {
		parts = append(parts, s)
	}
	if s := formatOpt(ex.Minutes, " min"); s != "" {
		parts = append(parts, s)
	}
	note := ""
	if ex.Note != nil {
		note = faint.Sprintf(" (%s)", truncate(*ex.Note, 30))
	}
	fmt.Printf("  %s %s %s %s%s\n",
		faint.Sprint(shortID(ex.ID)),
		padRight(ex.Name, 18),
		padRight(ex.Kind().Label(), 10),
		strings.Join(parts, ", "),
		note)
}

func describeTemplate(t models.ExerciseTemplate) string {
	var parts []string
	if s := formatOpt(t.Sets, ""); s != "" {
		parts = append(parts, s+"×"+formatOpt(t.Reps, ""))
	}
	if s := formatOpt(t.Weight, " kg"); s != "" {
		parts = append(parts, s)
	}
	if s := formatOpt(t.Minutes, " min"); s != "" {
		parts = append(parts, s)
	}
	if t.Note != "" {
		parts = append(parts, t.Note)
	}
	return strings.Join(parts, ", ")
}

func init() {
	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseEditCmd} {
		c.Flags().Float64Var(&exSets, "sets", 0, "number of sets")
		c.Flags().Float64Var(&exReps, "reps", 0, "reps per set")
		c.Flags().Float64VarP(&exMinutes, "minutes", "m", 0, "duration in minutes")
		c.Flags().Float64VarP(&exWeight, "weight", "w", 0, "load in kg (strength only)")
		c.Flags().StringVarP(&exNote, "note", "n", "", "note")
	}
	exerciseAddCmd.Flags().BoolVarP(&exPreset, "preset", "p", false, "use the built-in preset with this name")
	exerciseEditCmd.Flags().String("name", "", "new name")

	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseEditCmd, exerciseRmCmd, exerciseListCmd, exerciseTargetCmd} {
		addDateFlag(c, &exDate)
	}

	exerciseCmd.AddCommand(exerciseAddCmd, exerciseEditCmd, exerciseRmCmd, exerciseListCmd,
		exerciseTargetCmd, exercisePresetsCmd, exerciseNamesCmd)
	rootCmd.AddCommand(exerciseCmd)
}
