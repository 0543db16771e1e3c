package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/coachstats/internal/coaching"
	"github.com/2beens/coachstats/internal/coaching/engagement"
	"github.com/2beens/coachstats/internal/coaching/sources"
	"github.com/2beens/coachstats/internal/coaching/volume"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

type SubjectInput struct {
	SubjectID string `json:"subject_id" jsonschema:"Subject (client) id, a UUID"`
}

type SubjectWindowInput struct {
	SubjectID    string `json:"subject_id" jsonschema:"Subject (client) id, a UUID"`
	LookbackDays *int   `json:"lookback_days,omitempty" jsonschema:"Days to look back from today, defaults to 90"`
}

type LeaderboardInput struct {
	Limit *int `json:"limit,omitempty" jsonschema:"Max number of ranked subjects, defaults to 10, 0 returns all"`
}

type FoodNutritionInput struct {
	FoodID   string   `json:"food_id" jsonschema:"Food id, a UUID"`
	Quantity *float64 `json:"quantity,omitempty" jsonschema:"Quantity in the given unit, defaults to 100"`
	Unit     string   `json:"unit,omitempty" jsonschema:"Unit (g, oz, lb, serving), defaults to g"`
}

type RecipeNutritionInput struct {
	RecipeID string   `json:"recipe_id" jsonschema:"Recipe id, a UUID"`
	Servings *float64 `json:"servings,omitempty" jsonschema:"Number of servings the recipe makes, defaults to 1"`
}

func (h *Handler) GetCoachingContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetStreakTool() func(context.Context, *mcp.CallToolRequest, SubjectInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubjectInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("subject_id", in.SubjectID); res != nil {
			return res, nil, nil
		}
		r, err := h.service.Streak(ctx, in.SubjectID)
		return jsonResult("streak", r, err), nil, nil
	}
}

func (h *Handler) GetVolumeTool() func(context.Context, *mcp.CallToolRequest, SubjectWindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubjectWindowInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("subject_id", in.SubjectID); res != nil {
			return res, nil, nil
		}
		r, err := h.service.Volume(ctx, in.SubjectID, lookbackDays(in.LookbackDays))
		return jsonResult("volume", r, err), nil, nil
	}
}

func (h *Handler) GetMusclesTool() func(context.Context, *mcp.CallToolRequest, SubjectWindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubjectWindowInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("subject_id", in.SubjectID); res != nil {
			return res, nil, nil
		}
		r, err := h.service.Muscles(ctx, in.SubjectID, lookbackDays(in.LookbackDays))
		return jsonResult("muscle distribution", r, err), nil, nil
	}
}

func (h *Handler) GetEngagementTool() func(context.Context, *mcp.CallToolRequest, SubjectInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubjectInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("subject_id", in.SubjectID); res != nil {
			return res, nil, nil
		}
		r, err := h.service.Engagement(ctx, in.SubjectID)
		return jsonResult("engagement", r, err), nil, nil
	}
}

func (h *Handler) GetLeaderboardTool() func(context.Context, *mcp.CallToolRequest, LeaderboardInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LeaderboardInput) (*mcp.CallToolResult, any, error) {
		limit := engagement.LeaderboardSize
		if in.Limit != nil {
			limit = *in.Limit
		}
		r, err := h.service.Leaderboard(ctx, limit)
		return jsonResult("leaderboard", r, err), nil, nil
	}
}

func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, SubjectInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubjectInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("subject_id", in.SubjectID); res != nil {
			return res, nil, nil
		}
		r, err := h.service.Dashboard(ctx, in.SubjectID)
		return jsonResult("dashboard", r, err), nil, nil
	}
}

func (h *Handler) GetFoodNutritionTool() func(context.Context, *mcp.CallToolRequest, FoodNutritionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in FoodNutritionInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("food_id", in.FoodID); res != nil {
			return res, nil, nil
		}
		quantity := 100.0
		if in.Quantity != nil {
			quantity = *in.Quantity
		}
		unit := in.Unit
		if unit == "" {
			unit = "g"
		}
		r, err := h.service.FoodNutrition(ctx, in.FoodID, quantity, unit)
		return jsonResult("food nutrition", r, err), nil, nil
	}
}

func (h *Handler) GetRecipeNutritionTool() func(context.Context, *mcp.CallToolRequest, RecipeNutritionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecipeNutritionInput) (*mcp.CallToolResult, any, error) {
		if res := checkID("recipe_id", in.RecipeID); res != nil {
			return res, nil, nil
		}
		servings := 1.0
		if in.Servings != nil {
			servings = *in.Servings
		}
		r, err := h.service.RecipeNutrition(ctx, in.RecipeID, servings)
		return jsonResult("recipe nutrition", r, err), nil, nil
	}
}

func lookbackDays(days *int) int {
	if days == nil {
		return volume.DefaultLookbackDays
	}
	return *days
}

func checkID(name, id string) *mcp.CallToolResult {
	if _, err := uuid.Parse(id); err != nil {
		return errorResult("Invalid " + name + ": must be a UUID")
	}
	return nil
}

func jsonResult(what string, v any, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, coaching.ErrInvalidInput):
		return errorResult(err.Error())
	case errors.Is(err, sources.ErrNotFound):
		return errorResult("Not found: " + what)
	case err != nil:
		return errorResult("Error computing " + what + ": " + err.Error())
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
