// ABOUTME: Sleep, sleep quality and body weight actions, plus day reset.
package tracker

import (
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/models"
)

// SetSleep records hours slept. Meeting the goal for today earns the
// sleep reward.
func (t *Tracker) SetSleep(day string, hours float64) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if !finiteNonNeg(hours) {
		return invalid("sleep hours must be zero or more")
	}
	err := t.book.Update(func() error {
		m := t.book.SleepMap()
		m[day] = hours
		return t.book.SaveSleepMap(m)
	})
	if err != nil {
		return err
	}
	if day == t.Today() && hours >= t.sleepGoal {
		t.reward(gamify.XPSleepGoal)
	}
	return nil
}

// SetSleepQuality tags the night with a quality rating.
func (t *Tracker) SetSleepQuality(day, tag string) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if !models.IsValidSleepQuality(tag) {
		return invalid("sleep quality must be sleepy, good, meh or exhausted")
	}
	return t.book.Update(func() error {
		m := t.book.SleepQualityMap()
		m[day] = tag
		return t.book.SaveSleepQualityMap(m)
	})
}

// SetBodyWeight records the day's weight in kg. Zero removes the entry.
func (t *Tracker) SetBodyWeight(day string, kg float64) error {
	if err := checkDay(day); err != nil {
		return err
	}
	if !finiteNonNeg(kg) {
		return invalid("body weight must be zero or more")
	}
	return t.book.Update(func() error {
		m := t.book.BodyWeightMap()
		if kg == 0 {
			delete(m, day)
		} else {
			m[day] = kg
		}
		return t.book.SaveBodyWeightMap(m)
	})
}

// ResetDay clears the day's exercises and food log.
func (t *Tracker) ResetDay(day string) error {
	if err := checkDay(day); err != nil {
		return err
	}
	return t.book.Update(func() error {
		return t.book.DeleteDay(day)
	})
}
