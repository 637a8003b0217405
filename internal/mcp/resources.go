// ABOUTME: MCP resource implementations for fitdash.
// ABOUTME: Provides fitdash://today, fitdash://trends and fitdash://level resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitdash://today - the day's entries with progress against targets
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdash://today",
		Name:        "Today's Log",
		Description: "Today's exercises, food log, sleep and progress against targets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fitdash://trends - dashboard trend cards for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdash://trends",
		Name:        "Trends",
		Description: "Daily and rolling 7-day trends for calories, exercise and sleep",
		MIMEType:    "application/json",
	}, s.handleTrendsResource)

	// fitdash://level - gamification state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitdash://level",
		Name:        "Level",
		Description: "XP total, level progress and daily streak",
		MIMEType:    "application/json",
	}, s.handleLevelResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	day := s.tracker.Today()
	book := s.tracker.Book()

	summary, err := s.tracker.Metrics().DaySummary(day)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise day: %w", err)
	}

	result := map[string]any{
		"date":          day,
		"summary":       summary,
		"exercises":     book.Exercises(day),
		"food_log":      book.FoodLog(day),
		"sleep_quality": book.SleepQualityMap()[day],
	}
	if kg, ok := book.BodyWeightMap()[day]; ok {
		result["body_weight"] = kg
	}

	return jsonResource("fitdash://today", result)
}

func (s *Server) handleTrendsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	day := s.tracker.Today()
	trends, err := s.tracker.Metrics().Trends(day)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trends: %w", err)
	}
	sleep, err := s.tracker.Metrics().SleepWindow(day)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sleep window: %w", err)
	}

	return jsonResource("fitdash://trends", map[string]any{
		"date":         day,
		"burn_rate":    s.tracker.Book().BurnRate(),
		"trends":       trendViews(trends),
		"sleep_window": sleep,
	})
}

func (s *Server) handleLevelResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("fitdash://level", s.tracker.Gamify().Snapshot())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
