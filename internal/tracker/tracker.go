// ABOUTME: User-action layer over the record store.
// ABOUTME: Validates input, mutates records and applies XP and streak side effects.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/harperreed/fitdash/internal/dates"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/metrics"
	"github.com/harperreed/fitdash/internal/records"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput means the action was rejected and nothing was written.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means the referenced entry does not exist.
	ErrNotFound = errors.New("not found")
)

// DefaultSleepGoal is the nightly hours that earn the sleep reward.
const DefaultSleepGoal = 8.0

// Tracker performs user actions.
type Tracker struct {
	book      *records.Book
	keeper    *gamify.Keeper
	engine    *metrics.Engine
	now       func() time.Time
	sleepGoal float64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source for timestamps, today and streaks.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithSleepGoal sets the hours needed for the sleep reward.
func WithSleepGoal(hours float64) Option {
	return func(t *Tracker) {
		if hours > 0 && !math.IsInf(hours, 0) {
			t.sleepGoal = hours
		}
	}
}

// New creates a Tracker over book.
func New(book *records.Book, opts ...Option) *Tracker {
	t := &Tracker{
		book:      book,
		now:       time.Now,
		sleepGoal: DefaultSleepGoal,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.keeper = gamify.New(book, gamify.WithClock(t.now))
	t.engine = metrics.New(book)
	return t
}

// Book exposes the record store.
func (t *Tracker) Book() *records.Book { return t.book }

// Metrics exposes the derived-metrics engine.
func (t *Tracker) Metrics() *metrics.Engine { return t.engine }

// Gamify exposes the XP and streak keeper.
func (t *Tracker) Gamify() *gamify.Keeper { return t.keeper }

// Today is the clock's local calendar date.
func (t *Tracker) Today() string { return t.keeper.Today() }

// SleepGoal is the configured nightly goal.
func (t *Tracker) SleepGoal() float64 { return t.sleepGoal }

// reward applies XP and streak after a successful write. A failure here
// leaves the record written; the two writes are independent.
func (t *Tracker) reward(amount int) {
	if err := t.keeper.Reward(amount); err != nil {
		log.WithError(err).Warn("gamification update failed")
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func checkDay(day string) error {
	if !dates.Valid(day) {
		return invalid("date %q must be YYYY-MM-DD", day)
	}
	return nil
}

func finiteNonNeg(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func optionalNonNeg(p *float64) bool {
	return p == nil || finiteNonNeg(*p)
}
