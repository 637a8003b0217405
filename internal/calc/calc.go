// ABOUTME: Calorie target calculator using the Mifflin-St Jeor equation.
// ABOUTME: BMR, activity-scaled TDEE and a goal-adjusted daily target.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidProfile is returned for out-of-range or unknown inputs.
var ErrInvalidProfile = errors.New("invalid profile")

// Sex selects the BMR constant.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Activity is the lifestyle multiplier applied to BMR.
type Activity string

const (
	Sedentary Activity = "sedentary"
	Light     Activity = "light"
	Moderate  Activity = "moderate"
	Very      Activity = "very"
	Extra     Activity = "extra"
)

// ActivityFactors maps activity levels to their multipliers.
var ActivityFactors = map[Activity]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	Very:      1.725,
	Extra:     1.9,
}

// Goal is the direction of the intended weight change.
type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

const (
	// KcalPerKg is the rough energy equivalent of 1 kg of body weight.
	KcalPerKg = 7700
	// MinTarget is the floor for weight-loss targets.
	MinTarget = 1200
)

// Profile is the calculator input.
type Profile struct {
	Sex       Sex      `json:"sex"`
	AgeYears  float64  `json:"age_years"`
	HeightCm  float64  `json:"height_cm"`
	WeightKg  float64  `json:"weight_kg"`
	Activity  Activity `json:"activity"`
	Goal      Goal     `json:"goal"`
	KgPerWeek float64  `json:"kg_per_week,omitempty"`
}

// Result is the calculator output.
type Result struct {
	BMR        int `json:"bmr"`
	TDEE       int `json:"tdee"`
	DailyDelta int `json:"daily_delta"`
	Target     int `json:"target"`
}

// Validate checks every field of p.
func (p Profile) Validate() error {
	switch {
	case p.Sex != Male && p.Sex != Female:
		return fmt.Errorf("%w: sex must be male or female", ErrInvalidProfile)
	case !positive(p.AgeYears):
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	case !positive(p.HeightCm):
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	case !positive(p.WeightKg):
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if _, ok := ActivityFactors[p.Activity]; !ok {
		return fmt.Errorf("%w: unknown activity %q", ErrInvalidProfile, p.Activity)
	}
	switch p.Goal {
	case Lose, Maintain, Gain:
	default:
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	if math.IsNaN(p.KgPerWeek) || math.IsInf(p.KgPerWeek, 0) {
		return fmt.Errorf("%w: weekly change must be a number", ErrInvalidProfile)
	}
	return nil
}

// BMR is the Mifflin-St Jeor basal metabolic rate, rounded.
func BMR(sex Sex, ageYears, heightCm, weightKg float64) int {
	base := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == Male {
		return round(base + 5)
	}
	return round(base - 161)
}

// TDEE scales bmr by the activity factor.
func TDEE(bmr int, a Activity) int {
	return round(float64(bmr) * ActivityFactors[a])
}

// DailyDelta converts a weekly weight change into kcal per day.
// Non-positive changes yield zero.
func DailyDelta(kgPerWeek float64) int {
	if kgPerWeek <= 0 {
		return 0
	}
	return round(kgPerWeek * KcalPerKg / 7)
}

// Calculate validates p and derives the daily calorie target.
func Calculate(p Profile) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r := &Result{BMR: BMR(p.Sex, p.AgeYears, p.HeightCm, p.WeightKg)}
	r.TDEE = TDEE(r.BMR, p.Activity)
	r.DailyDelta = DailyDelta(p.KgPerWeek)

	switch {
	case p.Goal == Maintain || r.DailyDelta == 0:
		r.Target = r.TDEE
	case p.Goal == Lose:
		r.Target = max(MinTarget, r.TDEE-r.DailyDelta)
	default:
		r.Target = r.TDEE + r.DailyDelta
	}
	return r, nil
}

// ParseSex, ParseActivity and ParseGoal accept case-insensitive names.
func ParseSex(s string) Sex { return Sex(strings.ToLower(strings.TrimSpace(s))) }

func ParseActivity(s string) Activity { return Activity(strings.ToLower(strings.TrimSpace(s))) }

func ParseGoal(s string) Goal { return Goal(strings.ToLower(strings.TrimSpace(s))) }

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// round matches half-up rounding for the positive values used here.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
