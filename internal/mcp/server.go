package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the coach tools: fetch and modify
// workout programs and nutrition plans, search the exercise and food catalogs.
// Used by the main backend when mounting MCP at /mcp (internal/server) and by
// the stdio binary (cmd/coach_mcp).
func NewServer(svc *CoachService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "coachbit-coach",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_coach_schema",
		Description: "Returns the DB schema for coach tables (workout_program, nutrition_plan, exercise_catalog, food_catalog): table names, columns, types, nullable, default. Use when developing against the backend and you need the actual schema.",
	}, h.GetCoachSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_program",
		Description: "Returns a full workout program document (weeks, days, exercises, set groups) by id. Use before modifying when you need the current structure or indexes.",
	}, h.GetWorkoutProgramTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "modify_workout_program",
		Description: "Applies one modification or an ordered batch to a workout program. Actions: update_setgroup, add_setgroup, remove_setgroup, update_exercise, add_exercise, remove_exercise, add_superset, add_cardio. Targets address week/day by index and exercises by index or name (case-insensitive substring, first match; set allMatching to edit every match). Partial batch failures are reported per operation.",
	}, h.ModifyWorkoutProgramTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_plan",
		Description: "Returns a full nutrition plan document (weeks, days, meals, foods with macro snapshots and day totals) by id.",
	}, h.GetNutritionPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "modify_nutrition_plan",
		Description: "Applies one modification or an ordered batch to a nutrition plan. Actions: update_meal, add_meal, remove_meal, update_food, add_food, remove_food. Changing a food quantity rescales its macros proportionally; day totals are recomputed after every edit.",
	}, h.ModifyNutritionPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_exercise_catalog",
		Description: "Searches the exercise catalog by name substring. Returns id, name, muscle groups, equipment and category. Use to resolve an exercise before add_exercise.",
	}, h.SearchExerciseCatalogTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_food_catalog",
		Description: "Searches the food catalog by name substring. Returns id, name, unit and per-100g macros. Use to resolve a food before add_food.",
	}, h.SearchFoodCatalogTool())

	return s
}
