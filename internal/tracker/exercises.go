// ABOUTME: Exercise actions: add, edit, remove and the daily target.
// ABOUTME: Weight is kept only for entries that classify as strength.
package tracker

import (
	"strings"

	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
)

// ExerciseDraft is user input for a new or edited exercise.
type ExerciseDraft struct {
	Name    string
	Sets    *float64
	Reps    *float64
	Minutes *float64
	Weight  *float64
	Note    string
}

func (d ExerciseDraft) validate() error {
	for _, p := range []*float64{d.Sets, d.Reps, d.Minutes, d.Weight} {
		if !optionalNonNeg(p) {
			return invalid("exercise numbers must be zero or more")
		}
	}
	return nil
}

// AddExercise prepends a new entry to the day. When preset is non-nil its
// name is used and its template fills fields the draft leaves unset.
func (t *Tracker) AddExercise(day string, draft ExerciseDraft, preset *models.ExercisePreset) (*models.ExerciseEntry, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}

	var tmpl models.ExerciseTemplate
	name := strings.TrimSpace(draft.Name)
	if preset != nil {
		name = preset.Name
		tmpl = preset.Template
	}
	if name == "" {
		return nil, invalid("exercise name is required")
	}

	entry := models.NewExerciseEntry(name)
	entry.Sets = pick(draft.Sets, tmpl.Sets)
	entry.Reps = pick(draft.Reps, tmpl.Reps)
	entry.Minutes = pick(draft.Minutes, tmpl.Minutes)
	if models.NeedsWeight(name) {
		entry.Weight = pick(draft.Weight, tmpl.Weight)
	}
	note := strings.TrimSpace(draft.Note)
	if note == "" {
		note = tmpl.Note
	}
	entry.WithNote(note)

	err := t.book.Update(func() error {
		list := t.book.Exercises(day)
		return t.book.SaveExercises(day, append([]models.ExerciseEntry{*entry}, list...))
	})
	if err != nil {
		return nil, err
	}
	t.reward(gamify.XPExercise)
	return entry, nil
}

// EditExercise replaces the entry's fields with patch. A blank name keeps
// the old one; unset numbers are cleared.
func (t *Tracker) EditExercise(day, id string, patch ExerciseDraft) (*models.ExerciseEntry, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	if err := patch.validate(); err != nil {
		return nil, err
	}

	var updated *models.ExerciseEntry
	err := t.book.Update(func() error {
		list := t.book.Exercises(day)
		for i := range list {
			if list[i].ID != id {
				continue
			}
			ex := &list[i]
			if name := strings.TrimSpace(patch.Name); name != "" {
				ex.Name = name
			}
			ex.Sets = patch.Sets
			ex.Reps = patch.Reps
			ex.Minutes = patch.Minutes
			ex.Weight = nil
			if models.NeedsWeight(ex.Name) {
				ex.Weight = patch.Weight
			}
			ex.WithNote(patch.Note)
			updated = ex
			return t.book.SaveExercises(day, list)
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveExercise deletes the entry with id from the day.
func (t *Tracker) RemoveExercise(day, id string) error {
	if err := checkDay(day); err != nil {
		return err
	}
	return t.book.Update(func() error {
		list := t.book.Exercises(day)
		out := list[:0]
		for _, ex := range list {
			if ex.ID != id {
				out = append(out, ex)
			}
		}
		if len(out) == len(list) {
			return ErrNotFound
		}
		return t.book.SaveExercises(day, out)
	})
}

// SetExerciseTarget sets the day's target entry count.
func (t *Tracker) SetExerciseTarget(day string, n int) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if n < 0 {
		return invalid("exercise target must be zero or more")
	}
	return t.book.SetExerciseTarget(day, n)
}

func pick(v, fallback *float64) *float64 {
	if v != nil {
		return v
	}
	if fallback != nil {
		c := *fallback
		return &c
	}
	return nil
}
