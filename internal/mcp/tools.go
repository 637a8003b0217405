// ABOUTME: MCP tool implementations for fitdash.
// ABOUTME: Exercise, food, sleep and weight logging plus derived views.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/fitdash/internal/calc"
	"github.com/harperreed/fitdash/internal/gamify"
	"github.com/harperreed/fitdash/internal/metrics"
	"github.com/harperreed/fitdash/internal/models"
	"github.com/harperreed/fitdash/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Log an exercise for a day (sets, reps, minutes, weight, note)",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List a day's exercises with progress against the target",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_exercise",
		Description: "Remove an exercise entry by ID",
	}, s.handleRemoveExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log food by library ID or by name and calories",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_food_log",
		Description: "List a day's food log with calories against the target",
	}, s.handleListFoodLog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_food",
		Description: "Search the local food library or the OpenFoodFacts database",
	}, s.handleSearchFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_sleep",
		Description: "Record hours slept and optional quality for a night",
	}, s.handleSetSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_body_weight",
		Description: "Record body weight in kg (0 removes the day's entry)",
	}, s.handleSetBodyWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trends",
		Description: "Daily and rolling 7-day trends for calories, exercise and sleep",
	}, s.handleGetTrends)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Body weight, sleep and per-exercise series at daily, monthly or yearly granularity",
	}, s.handleGetProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_level",
		Description: "Current XP, level and daily streak",
	}, s.handleGetLevel)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calorie_target",
		Description: "Calculate BMR, TDEE and a goal-based calorie target, optionally applying it to a day",
	}, s.handleCalorieTarget)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_day",
		Description: "Clear a day's exercises and food log (targets are kept)",
	}, s.handleResetDay)
}

// Tool input/output types

type addExerciseInput struct {
	Date    string   `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	Name    string   `json:"name" jsonschema:"Exercise name, or a preset name when preset is true"`
	Sets    *float64 `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps    *float64 `json:"reps,omitempty" jsonschema:"Reps per set"`
	Minutes *float64 `json:"minutes,omitempty" jsonschema:"Duration in minutes"`
	Weight  *float64 `json:"weight,omitempty" jsonschema:"Load in kg (strength exercises only)"`
	Note    string   `json:"note,omitempty" jsonschema:"Optional note"`
	Preset  bool     `json:"preset,omitempty" jsonschema:"Fill unset fields from the built-in preset with this name"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
}

type removeExerciseInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	ID   string `json:"id" jsonschema:"Exercise entry ID"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logFoodInput struct {
	Date     string  `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	FoodID   string  `json:"food_id,omitempty" jsonschema:"Food library ID"`
	Name     string  `json:"name,omitempty" jsonschema:"Food name when not using the library"`
	Calories float64 `json:"calories,omitempty" jsonschema:"Calories per serving when not using the library"`
	Serving  string  `json:"serving,omitempty" jsonschema:"Serving description"`
	Qty      float64 `json:"qty,omitempty" jsonschema:"Number of servings (default 1)"`
}

type foodLogOutput struct {
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

type searchFoodInput struct {
	Query  string `json:"query" jsonschema:"Search text"`
	Online bool   `json:"online,omitempty" jsonschema:"Search OpenFoodFacts instead of the local library"`
}

type setSleepInput struct {
	Date    string  `json:"date,omitempty" jsonschema:"Night (YYYY-MM-DD), defaults to today"`
	Hours   float64 `json:"hours" jsonschema:"Hours slept"`
	Quality string  `json:"quality,omitempty" jsonschema:"sleepy, good, meh or exhausted"`
}

type setBodyWeightInput struct {
	Date string  `json:"date,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
	Kg   float64 `json:"kg" jsonschema:"Body weight in kg, 0 removes the entry"`
}

type getProgressInput struct {
	Granularity string `json:"granularity,omitempty" jsonschema:"daily, monthly or yearly (default daily)"`
	Exercise    string `json:"exercise,omitempty" jsonschema:"Exercise name for the per-exercise series"`
	Metric      string `json:"metric,omitempty" jsonschema:"weight, reps or minutes (default weight)"`
}

type calorieTargetInput struct {
	Sex       string  `json:"sex" jsonschema:"male or female"`
	Age       float64 `json:"age" jsonschema:"Age in years"`
	HeightCm  float64 `json:"height_cm" jsonschema:"Height in cm"`
	WeightKg  float64 `json:"weight_kg" jsonschema:"Weight in kg"`
	Activity  string  `json:"activity,omitempty" jsonschema:"sedentary, light, moderate, very or extra (default moderate)"`
	Goal      string  `json:"goal,omitempty" jsonschema:"lose, maintain or gain (default maintain)"`
	KgPerWeek float64 `json:"kg_per_week,omitempty" jsonschema:"Intended weekly change in kg"`
	Apply     bool    `json:"apply,omitempty" jsonschema:"Store the result as the day's calorie target"`
	Date      string  `json:"date,omitempty" jsonschema:"Day to apply the target to, defaults to today"`
}

type calorieTargetOutput struct {
	BMR        int    `json:"bmr"`
	TDEE       int    `json:"tdee"`
	DailyDelta int    `json:"daily_delta"`
	Target     int    `json:"target"`
	Applied    bool   `json:"applied"`
	Message    string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	draft := tracker.ExerciseDraft{
		Name:    input.Name,
		Sets:    input.Sets,
		Reps:    input.Reps,
		Minutes: input.Minutes,
		Weight:  input.Weight,
		Note:    input.Note,
	}

	var preset *models.ExercisePreset
	if input.Preset {
		p, ok := models.FindPreset(input.Name)
		if !ok {
			return nil, exerciseOutput{}, fmt.Errorf("unknown preset: %s", input.Name)
		}
		preset = &p
	}

	ex, err := s.tracker.AddExercise(s.day(input.Date), draft, preset)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:      ex.ID,
		Name:    ex.Name,
		Kind:    string(ex.Kind()),
		Message: fmt.Sprintf("Added %s (+%d XP, ID: %s)", ex.Name, gamify.XPExercise, ex.ID[:8]),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	day := s.day(input.Date)
	summary, err := s.tracker.Metrics().DaySummary(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarise day: %w", err)
	}

	return nil, map[string]any{
		"date":      day,
		"exercises": s.tracker.Book().Exercises(day),
		"done":      summary.ExercisesDone,
		"target":    summary.ExerciseTarget,
		"remaining": summary.ExercisesLeft,
		"minutes":   summary.ExerciseMinutes,
	}, nil
}

func (s *Server) handleRemoveExercise(ctx context.Context, req *mcp.CallToolRequest, input removeExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.RemoveExercise(s.day(input.Date), input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to remove exercise: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed exercise: %s", input.ID),
	}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, foodLogOutput, error) {
	if input.Qty == 0 {
		input.Qty = 1
	}

	var item models.FoodItem
	if input.FoodID != "" {
		found, err := s.tracker.FindFood(input.FoodID)
		if err != nil {
			return nil, foodLogOutput{}, fmt.Errorf("food not found: %s", input.FoodID)
		}
		item = *found
	} else {
		if strings.TrimSpace(input.Name) == "" || input.Calories <= 0 {
			return nil, foodLogOutput{}, fmt.Errorf("either food_id or name with positive calories is required")
		}
		item = *models.NewFoodItem(strings.TrimSpace(input.Name), input.Calories, input.Serving)
	}

	entry, err := s.tracker.LogFood(s.day(input.Date), item, input.Qty)
	if err != nil {
		return nil, foodLogOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	total := entry.TotalCalories()
	return nil, foodLogOutput{
		Name:     entry.Name,
		Qty:      entry.Qty,
		Calories: total,
		Message:  fmt.Sprintf("Logged %s × %g (%.0f kcal, +%d XP)", entry.Name, entry.Qty, total, gamify.XPFood),
	}, nil
}

func (s *Server) handleListFoodLog(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	day := s.day(input.Date)
	summary, err := s.tracker.Metrics().DaySummary(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarise day: %w", err)
	}

	return nil, map[string]any{
		"date":      day,
		"entries":   s.tracker.Book().FoodLog(day),
		"total":     summary.CaloriesIn,
		"target":    summary.CalorieTarget,
		"remaining": summary.CaloriesRemaining,
	}, nil
}

func (s *Server) handleSearchFood(ctx context.Context, req *mcp.CallToolRequest, input searchFoodInput) (*mcp.CallToolResult, any, error) {
	if !input.Online {
		return nil, map[string]any{
			"source":  "library",
			"results": s.tracker.SearchLibrary(input.Query),
		}, nil
	}

	if s.food == nil {
		return nil, nil, fmt.Errorf("online food search is not configured")
	}
	results, ok := s.food.SearchLatest(ctx, s.searches, "search_food", input.Query)
	if !ok {
		return nil, map[string]any{"source": "openfoodfacts", "message": "Superseded by a newer search."}, nil
	}

	return nil, map[string]any{
		"source":  "openfoodfacts",
		"results": results,
	}, nil
}

func (s *Server) handleSetSleep(ctx context.Context, req *mcp.CallToolRequest, input setSleepInput) (*mcp.CallToolResult, simpleOutput, error) {
	day := s.day(input.Date)
	if input.Quality != "" && !models.IsValidSleepQuality(input.Quality) {
		return nil, simpleOutput{}, fmt.Errorf("unknown sleep quality: %s", input.Quality)
	}
	if err := s.tracker.SetSleep(day, input.Hours); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set sleep: %w", err)
	}
	if input.Quality != "" {
		if err := s.tracker.SetSleepQuality(day, input.Quality); err != nil {
			return nil, simpleOutput{}, fmt.Errorf("failed to set sleep quality: %w", err)
		}
	}

	msg := fmt.Sprintf("Recorded %.2f h of sleep for %s", input.Hours, day)
	if day == s.tracker.Today() && input.Hours >= s.tracker.SleepGoal() {
		msg += fmt.Sprintf(" (goal met, +%d XP)", gamify.XPSleepGoal)
	}
	return nil, simpleOutput{Message: msg}, nil
}

func (s *Server) handleSetBodyWeight(ctx context.Context, req *mcp.CallToolRequest, input setBodyWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	day := s.day(input.Date)
	if err := s.tracker.SetBodyWeight(day, input.Kg); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set body weight: %w", err)
	}

	if input.Kg == 0 {
		return nil, simpleOutput{Message: fmt.Sprintf("Removed body weight for %s", day)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Recorded %.1f kg for %s", input.Kg, day)}, nil
}

func (s *Server) handleGetTrends(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	day := s.day(input.Date)
	trends, err := s.tracker.Metrics().Trends(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute trends: %w", err)
	}

	return nil, map[string]any{
		"date":      day,
		"burn_rate": s.tracker.Book().BurnRate(),
		"trends":    trendViews(trends),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input getProgressInput) (*mcp.CallToolResult, any, error) {
	if input.Granularity == "" {
		input.Granularity = string(metrics.Daily)
	}
	if input.Metric == "" {
		input.Metric = string(metrics.ExWeight)
	}
	g, err := metrics.ParseGranularity(input.Granularity)
	if err != nil {
		return nil, nil, err
	}
	m, err := metrics.ParseExerciseMetric(input.Metric)
	if err != nil {
		return nil, nil, err
	}

	report, err := s.tracker.Metrics().Progress(g, input.Exercise, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute progress: %w", err)
	}
	names, err := s.tracker.Metrics().ExerciseNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercise names: %w", err)
	}

	return nil, map[string]any{
		"progress":  report,
		"exercises": names,
	}, nil
}

func (s *Server) handleGetLevel(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p := s.tracker.Gamify().Snapshot()
	return nil, map[string]any{
		"xp":              p.XP,
		"level":           p.Level.Level,
		"xp_into_level":   p.Current,
		"xp_for_next":     p.Needed,
		"streak":          p.Streak,
		"last_active_day": p.LastActiveDay,
	}, nil
}

func (s *Server) handleCalorieTarget(ctx context.Context, req *mcp.CallToolRequest, input calorieTargetInput) (*mcp.CallToolResult, calorieTargetOutput, error) {
	if input.Activity == "" {
		input.Activity = string(calc.Moderate)
	}
	if input.Goal == "" {
		input.Goal = string(calc.Maintain)
	}

	res, err := calc.Calculate(calc.Profile{
		Sex:       calc.ParseSex(input.Sex),
		AgeYears:  input.Age,
		HeightCm:  input.HeightCm,
		WeightKg:  input.WeightKg,
		Activity:  calc.ParseActivity(input.Activity),
		Goal:      calc.ParseGoal(input.Goal),
		KgPerWeek: input.KgPerWeek,
	})
	if err != nil {
		return nil, calorieTargetOutput{}, err
	}

	out := calorieTargetOutput{
		BMR:        res.BMR,
		TDEE:       res.TDEE,
		DailyDelta: res.DailyDelta,
		Target:     res.Target,
	}
	out.Message = fmt.Sprintf("BMR %d kcal, TDEE %d kcal, target %d kcal/day", res.BMR, res.TDEE, res.Target)
	if input.Apply {
		day := s.day(input.Date)
		if err := s.tracker.SetCalorieTarget(day, res.Target); err != nil {
			return nil, calorieTargetOutput{}, fmt.Errorf("failed to apply target: %w", err)
		}
		out.Applied = true
		out.Message += fmt.Sprintf(" (applied to %s)", day)
	}
	return nil, out, nil
}

func (s *Server) handleResetDay(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, simpleOutput, error) {
	day := s.day(input.Date)
	if err := s.tracker.ResetDay(day); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset day: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Cleared exercises and food log for %s", day),
	}, nil
}

// trendView adds rendered deltas to a trend card.
type trendView struct {
	metrics.Trend
	DayChange     string            `json:"day_change"`
	DayDirection  metrics.Direction `json:"day_direction"`
	WeekChange    string            `json:"week_change"`
	WeekDirection metrics.Direction `json:"week_direction"`
}

func trendViews(trends []metrics.Trend) []trendView {
	out := make([]trendView, 0, len(trends))
	for _, t := range trends {
		out = append(out, trendView{
			Trend:         t,
			DayChange:     metrics.FormatDelta(t.DayDelta, t.Unit),
			DayDirection:  t.DayDirection(),
			WeekChange:    metrics.FormatDelta(t.WeekDelta, ""),
			WeekDirection: t.WeekDirection(),
		})
	}
	return out
}
