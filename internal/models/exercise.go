// ABOUTME: ExerciseEntry model for day-scoped exercise logs.
// ABOUTME: Entries carry optional sets, reps, minutes, weight and a note.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// ExerciseEntry is one logged exercise within a day.
// Weight is only meaningful when the entry classifies as strength.
type ExerciseEntry struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Sets    *float64 `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reps    *float64 `json:"reps,omitempty" yaml:"reps,omitempty"`
	Minutes *float64 `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Weight  *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Note    *string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// NewExerciseEntry creates an entry with a generated ID.
func NewExerciseEntry(name string) *ExerciseEntry {
	return &ExerciseEntry{
		ID:   NewID(),
		Name: name,
	}
}

// WithSets sets the number of sets.
func (e *ExerciseEntry) WithSets(n float64) *ExerciseEntry {
	e.Sets = &n
	return e
}

// WithReps sets reps per set.
func (e *ExerciseEntry) WithReps(n float64) *ExerciseEntry {
	e.Reps = &n
	return e
}

// WithMinutes sets the duration in minutes.
func (e *ExerciseEntry) WithMinutes(n float64) *ExerciseEntry {
	e.Minutes = &n
	return e
}

// WithWeight sets the load in kg.
func (e *ExerciseEntry) WithWeight(kg float64) *ExerciseEntry {
	e.Weight = &kg
	return e
}

// WithNote sets a trimmed note; blank notes clear it.
func (e *ExerciseEntry) WithNote(note string) *ExerciseEntry {
	note = strings.TrimSpace(note)
	if note == "" {
		e.Note = nil
		return e
	}
	e.Note = &note
	return e
}

// Kind classifies the entry by name.
func (e *ExerciseEntry) Kind() ExerciseKind {
	return ClassifyExercise(e.Name)
}

// MinutesOrZero returns minutes, treating an absent value as zero.
func (e *ExerciseEntry) MinutesOrZero() float64 {
	if e.Minutes == nil {
		return 0
	}
	return *e.Minutes
}

// ExerciseTemplate holds the defaults a preset fills into a new entry.
type ExerciseTemplate struct {
	Sets    *float64
	Reps    *float64
	Minutes *float64
	Weight  *float64
	Note    string
}

// ExercisePreset is a named quick-add exercise.
type ExercisePreset struct {
	Name     string
	Template ExerciseTemplate
}

func f(v float64) *float64 { return &v }

// CommonExercises are the built-in quick-add presets.
var CommonExercises = []ExercisePreset{
	{Name: "Bench Press", Template: ExerciseTemplate{Sets: f(3), Reps: f(8), Weight: f(28), Note: "Free weights"}},
	{Name: "Biceps Curl", Template: ExerciseTemplate{Sets: f(3), Reps: f(10), Weight: f(20), Note: "Free weights"}},
	{Name: "Row", Template: ExerciseTemplate{Sets: f(3), Reps: f(12), Weight: f(30), Note: "Machine or cable"}},
	{Name: "Stairmaster", Template: ExerciseTemplate{Minutes: f(20), Note: "Level 10"}},

	{Name: "Squat", Template: ExerciseTemplate{Sets: f(3), Reps: f(8), Weight: f(40), Note: "Barbell back squat"}},
	{Name: "Deadlift", Template: ExerciseTemplate{Sets: f(3), Reps: f(5), Weight: f(60), Note: "Conventional barbell"}},
	{Name: "Overhead Press", Template: ExerciseTemplate{Sets: f(3), Reps: f(8), Weight: f(20), Note: "Standing barbell press"}},
	{Name: "Pull-ups", Template: ExerciseTemplate{Sets: f(3), Reps: f(6), Note: "Bodyweight, add weight if easy"}},
	{Name: "Rows", Template: ExerciseTemplate{Sets: f(3), Reps: f(10), Weight: f(25), Note: "Dumbbell rows"}},
	{Name: "Lunges", Template: ExerciseTemplate{Sets: f(3), Reps: f(10), Weight: f(20), Note: "Dumbbells in each hand"}},

	{Name: "Plank", Template: ExerciseTemplate{Minutes: f(3), Note: "Hold position"}},
	{Name: "Running", Template: ExerciseTemplate{Minutes: f(30), Note: "Outdoor or treadmill"}},
	{Name: "Cycling", Template: ExerciseTemplate{Minutes: f(30), Note: "Stationary bike or road"}},
	{Name: "Jump Rope", Template: ExerciseTemplate{Minutes: f(10), Note: "Steady pace"}},
}

// FindPreset looks up a preset by case-insensitive name.
func FindPreset(name string) (ExercisePreset, bool) {
	for _, p := range CommonExercises {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return ExercisePreset{}, false
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.New().String()
}
