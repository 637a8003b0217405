// ABOUTME: Dated series, granularity aggregation and per-exercise history.
// ABOUTME: Exercise scans read every stored day with no index.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/harperreed/fitdash/internal/models"
)

// Point is one dated value. Date is an ISO date, or a YYYY-MM / YYYY
// bucket key after aggregation.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Granularity is the bucketing level for aggregation.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity validates a granularity name.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(s)); g {
	case Daily, Monthly, Yearly:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q (daily, monthly, yearly)", s)
}

// ExerciseMetric is a numeric field of an exercise entry.
type ExerciseMetric string

const (
	ExWeight  ExerciseMetric = "weight"
	ExReps    ExerciseMetric = "reps"
	ExMinutes ExerciseMetric = "minutes"
)

// ParseExerciseMetric validates an exercise metric name.
func ParseExerciseMetric(s string) (ExerciseMetric, error) {
	switch m := ExerciseMetric(strings.ToLower(s)); m {
	case ExWeight, ExReps, ExMinutes:
		return m, nil
	}
	return "", fmt.Errorf("unknown exercise metric %q (weight, reps, minutes)", s)
}

func (m ExerciseMetric) field(e models.ExerciseEntry) (float64, bool) {
	var p *float64
	switch m {
	case ExWeight:
		p = e.Weight
	case ExReps:
		p = e.Reps
	case ExMinutes:
		p = e.Minutes
	}
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}

// Aggregate buckets points by granularity. Daily sorts a copy; monthly
// and yearly group by the leading 7 or 4 characters of the date and
// average each group. Dates compare lexicographically.
func Aggregate(points []Point, g Granularity) []Point {
	if g == Daily {
		out := append([]Point{}, points...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
		return out
	}

	width := 7
	if g == Yearly {
		width = 4
	}
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	for _, p := range points {
		k := p.Date
		if len(k) > width {
			k = k[:width]
		}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.sum += p.Value
		a.count++
	}

	out := make([]Point, 0, len(groups))
	for k, a := range groups {
		out = append(out, Point{Date: k, Value: a.sum / float64(a.count)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SeriesFromMap turns a date-keyed map into points, sorted by date.
// Non-finite values become zero.
func SeriesFromMap(m map[string]float64) []Point {
	out := make([]Point, 0, len(m))
	for d, v := range m {
		out = append(out, Point{Date: d, Value: finite(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ExerciseSeries returns one point per day holding entries named
// exactly name, valued at the day's mean of metric over entries that
// have it. Days where no matching entry has the field are skipped.
func (e *Engine) ExerciseSeries(name string, metric ExerciseMetric) ([]Point, error) {
	days, err := e.src.ExerciseDays()
	if err != nil {
		return nil, err
	}
	out := []Point{}
	for _, d := range days {
		sum, n := 0.0, 0
		for _, x := range e.src.Exercises(d) {
			if x.Name != name {
				continue
			}
			if v, ok := metric.field(x); ok {
				sum += v
				n++
			}
		}
		if n > 0 {
			out = append(out, Point{Date: d, Value: sum / float64(n)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// ExerciseNames lists every distinct exercise name ever logged, sorted.
// Blank names are ignored.
func (e *Engine) ExerciseNames() ([]string, error) {
	days, err := e.src.ExerciseDays()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, d := range days {
		for _, x := range e.src.Exercises(d) {
			if strings.TrimSpace(x.Name) == "" {
				continue
			}
			seen[x.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// ProgressReport bundles the progress charts at one granularity.
type ProgressReport struct {
	Granularity Granularity    `json:"granularity"`
	BodyWeight  []Point        `json:"body_weight"`
	Sleep       []Point        `json:"sleep"`
	Exercise    string         `json:"exercise,omitempty"`
	Metric      ExerciseMetric `json:"metric,omitempty"`
	Series      []Point        `json:"series,omitempty"`
}

// Progress aggregates body weight, sleep and, when exercise is set,
// that exercise's metric series.
func (e *Engine) Progress(g Granularity, exercise string, metric ExerciseMetric) (*ProgressReport, error) {
	r := &ProgressReport{
		Granularity: g,
		BodyWeight:  Aggregate(SeriesFromMap(e.src.BodyWeightMap()), g),
		Sleep:       Aggregate(SeriesFromMap(e.src.SleepMap()), g),
	}
	if exercise == "" {
		return r, nil
	}
	pts, err := e.ExerciseSeries(exercise, metric)
	if err != nil {
		return nil, err
	}
	r.Exercise = exercise
	r.Metric = metric
	r.Series = Aggregate(pts, g)
	return r, nil
}
