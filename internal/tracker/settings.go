// ABOUTME: Settings actions: burn rate, theme and accent.
package tracker

import (
	"github.com/harperreed/fitdash/internal/models"
)

// SetBurnRate sets kcal burned per exercise minute.
func (t *Tracker) SetBurnRate(kcalPerMin float64) error {
	if !finiteNonNeg(kcalPerMin) {
		return invalid("burn rate must be zero or more")
	}
	return t.book.SetBurnRate(kcalPerMin)
}

// SetTheme sets the display theme.
func (t *Tracker) SetTheme(theme string) error {
	if !models.IsValidTheme(theme) {
		return invalid("theme must be dark or light")
	}
	return t.book.SetTheme(models.Theme(theme))
}

// SetAccent sets the accent color.
func (t *Tracker) SetAccent(accent string) error {
	if !models.IsValidAccent(accent) {
		return invalid("accent must be emerald, sky, violet, amber or rose")
	}
	return t.book.SetAccent(models.Accent(accent))
}
