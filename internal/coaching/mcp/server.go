package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the coaching analytics as tools.
// It is mounted on the main backend at /mcp and also served over stdio by cmd/coachstats_mcp.
func NewServer(service contextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "coachstats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_coaching_context",
		Description: "Returns the DB schema of the coaching tables (subjects, activity logs, exercise records, check-ins, goals, foods, recipes, plan assignments): columns, types, nullable, default.",
	}, h.GetCoachingContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streak",
		Description: "Returns the current and the longest streak of consecutive days with a completed workout for a subject. Arg: subject_id.",
	}, h.GetStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_volume",
		Description: "Returns weekly training volume (completed sets, reps, tonnage) and weekly session counts for a subject. Args: subject_id; optional: lookback_days.",
	}, h.GetVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_distribution",
		Description: "Returns how many exercise records targeted each primary muscle, most trained first. Args: subject_id; optional: lookback_days.",
	}, h.GetMusclesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_engagement",
		Description: "Returns the 0-100 engagement score of a subject with its adherence, consistency and goal components. Arg: subject_id.",
	}, h.GetEngagementTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_leaderboard",
		Description: "Returns active subjects ranked by engagement score. Optional: limit (0 returns all).",
	}, h.GetLeaderboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns the dashboard summary of a subject: streaks, this week's workouts, next check-in, active plans. Arg: subject_id.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_food_nutrition",
		Description: "Returns calories and macros of a food for a quantity and unit. Args: food_id; optional: quantity, unit.",
	}, h.GetFoodNutritionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recipe_nutrition",
		Description: "Returns the total and the per serving calories and macros of a recipe. Args: recipe_id; optional: servings.",
	}, h.GetRecipeNutritionTool())

	return s
}

// NewHTTPHandler serves the MCP server over the streamable HTTP transport.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
