// ABOUTME: Keyword-based exercise classification.
// ABOUTME: Maps an exercise name to strength, cardio or bodyweight.
package models

import "strings"

// ExerciseKind is the derived category of an exercise.
type ExerciseKind string

const (
	KindStrength   ExerciseKind = "strength"
	KindCardio     ExerciseKind = "cardio"
	KindBodyweight ExerciseKind = "bodyweight"
)

// Checked in order; the first table with a matching substring wins.
var (
	cardioKeywords = []string{
		"run", "jog", "cycling", "bike", "row", "rowing", "elliptical",
		"swim", "skipping", "jump rope", "hike", "walk",
	}
	bodyweightKeywords = []string{
		"push-up", "push up", "pull-up", "pull up", "chin-up", "dip",
		"plank", "burpee", "sit-up", "crunch", "mountain climber",
	}
)

// ClassifyExercise is total: anything unmatched is strength.
func ClassifyExercise(name string) ExerciseKind {
	n := strings.ToLower(name)
	if containsAny(n, cardioKeywords) {
		return KindCardio
	}
	if containsAny(n, bodyweightKeywords) {
		return KindBodyweight
	}
	return KindStrength
}

// NeedsWeight reports whether a weight field applies to the named exercise.
func NeedsWeight(name string) bool {
	return ClassifyExercise(name) == KindStrength
}

// Label is the display label for a kind.
func (k ExerciseKind) Label() string {
	switch k {
	case KindCardio:
		return "Cardio"
	case KindBodyweight:
		return "Bodyweight"
	default:
		return "Strength"
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
