// ABOUTME: Enum types for display theme, accent and sleep quality.
// ABOUTME: Includes validation helpers used at the input boundary.
package models

// Theme is the display theme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AllThemes lists valid themes.
var AllThemes = []Theme{ThemeDark, ThemeLight}

// Accent is the display accent color.
type Accent string

const (
	AccentEmerald Accent = "emerald"
	AccentSky     Accent = "sky"
	AccentViolet  Accent = "violet"
	AccentAmber   Accent = "amber"
	AccentRose    Accent = "rose"
)

// AccentColors maps accents to their hex color.
var AccentColors = map[Accent]string{
	AccentEmerald: "#34d399",
	AccentSky:     "#38bdf8",
	AccentViolet:  "#8b5cf6",
	AccentAmber:   "#f59e0b",
	AccentRose:    "#f43f5e",
}

// IsValidTheme checks a theme tag.
func IsValidTheme(s string) bool {
	for _, t := range AllThemes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// IsValidAccent checks an accent tag.
func IsValidAccent(s string) bool {
	_, ok := AccentColors[Accent(s)]
	return ok
}

// SleepQuality is a coarse self-reported rating for a night.
type SleepQuality string

const (
	SleepSleepy    SleepQuality = "sleepy"
	SleepGood      SleepQuality = "good"
	SleepMeh       SleepQuality = "meh"
	SleepExhausted SleepQuality = "exhausted"
)

// IsValidSleepQuality checks a sleep quality tag.
func IsValidSleepQuality(s string) bool {
	switch SleepQuality(s) {
	case SleepSleepy, SleepGood, SleepMeh, SleepExhausted:
		return true
	}
	return false
}
