// ABOUTME: XP, streak and level bookkeeping.
// ABOUTME: State lives in the record store; time comes from an injectable clock.
package gamify

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/fitdash/internal/dates"
	log "github.com/sirupsen/logrus"
)

// XP rewards for logging actions.
const (
	XPExercise  = 20
	XPFood      = 5
	XPSleepGoal = 30
)

// State is the persisted gamification record set. records.Book satisfies it.
type State interface {
	XP() int
	SetXP(int) error
	Streak() int
	SetStreak(int) error
	LastActiveDay() string
	SetLastActiveDay(string) error
	Update(func() error) error
}

// Keeper mutates gamification state.
type Keeper struct {
	state State
	now   func() time.Time
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(k *Keeper) { k.now = now }
}

// New creates a Keeper over state.
func New(state State, opts ...Option) *Keeper {
	k := &Keeper{state: state, now: time.Now}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Today is the clock's local calendar date.
func (k *Keeper) Today() string {
	return dates.Format(k.now())
}

// AwardXP adds amount to the XP total and returns the new total.
// Non-positive amounts are ignored.
func (k *Keeper) AwardXP(amount int) (int, error) {
	var total int
	err := k.state.Update(func() error {
		total = k.state.XP()
		if amount <= 0 {
			return nil
		}
		total += amount
		return k.state.SetXP(total)
	})
	if err != nil {
		return 0, fmt.Errorf("award xp: %w", err)
	}
	log.WithFields(log.Fields{"amount": amount, "total": total}).Debug("xp awarded")
	return total, nil
}

// TouchStreak records activity today. Repeated calls on the same day are
// no-ops; activity the day after the last active day extends the streak;
// anything else restarts it at 1.
func (k *Keeper) TouchStreak() (int, error) {
	today := k.Today()
	var streak int
	err := k.state.Update(func() error {
		last := k.state.LastActiveDay()
		streak = k.state.Streak()
		if last == today {
			return nil
		}

		yesterday, err := dates.Add(today, -1)
		if err != nil {
			return err
		}
		if last == yesterday {
			streak++
		} else {
			streak = 1
		}
		if err := k.state.SetStreak(streak); err != nil {
			return err
		}
		return k.state.SetLastActiveDay(today)
	})
	if err != nil {
		return 0, fmt.Errorf("touch streak: %w", err)
	}
	return streak, nil
}

// Reward awards amount and touches the streak, the side effects of every
// logging action.
func (k *Keeper) Reward(amount int) error {
	if _, err := k.AwardXP(amount); err != nil {
		return err
	}
	_, err := k.TouchStreak()
	return err
}

// Level is the view derived from an XP total.
type Level struct {
	Level   int `json:"level"`
	Current int `json:"current"`
	Needed  int `json:"needed"`
}

// Required is the XP needed to go from level l to l+1.
func Required(l int) int {
	return int(math.Round(100 * math.Pow(float64(l), 1.2)))
}

// LevelFor derives the level from a total. Current is the XP earned within
// the level and is always below Needed.
func LevelFor(xp int) Level {
	if xp < 0 {
		xp = 0
	}
	l, rem := 1, xp
	need := Required(l)
	for rem >= need {
		rem -= need
		l++
		need = Required(l)
	}
	return Level{Level: l, Current: rem, Needed: need}
}

// Progress is the full gamification snapshot.
type Progress struct {
	XP            int    `json:"xp"`
	Streak        int    `json:"streak"`
	LastActiveDay string `json:"last_active_day,omitempty"`
	Level
}

// Snapshot reads the current state.
func (k *Keeper) Snapshot() Progress {
	xp := k.state.XP()
	return Progress{
		XP:            xp,
		Streak:        k.state.Streak(),
		LastActiveDay: k.state.LastActiveDay(),
		Level:         LevelFor(xp),
	}
}
