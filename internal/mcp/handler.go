package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/coachbit/backend/internal/nutrition"
	"github.com/coachbit/backend/internal/workout"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service coachService
}

// NewHandler builds a handler with the given service.
func NewHandler(service coachService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(payload any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// GetCoachSchemaTool returns the MCP tool handler for get_coach_schema.
func (h *Handler) GetCoachSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetProgramInput is the input for get_workout_program.
type GetProgramInput struct {
	ProgramID string `json:"program_id" jsonschema:"The workout program id"`
}

// GetWorkoutProgramTool returns the MCP tool handler for get_workout_program.
func (h *Handler) GetWorkoutProgramTool() func(context.Context, *mcp.CallToolRequest, GetProgramInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetProgramInput) (*mcp.CallToolResult, any, error) {
		program, err := h.service.GetProgram(ctx, in.ProgramID)
		if err != nil {
			return errorResult("Error fetching program: " + err.Error()), nil, nil
		}
		return jsonResult(program)
	}
}

// ModifyProgramInput is the input for modify_workout_program.
type ModifyProgramInput struct {
	ProgramID   string `json:"program_id" jsonschema:"The workout program id"`
	RequestJSON string `json:"request_json" jsonschema:"Modification request JSON: either {action, target, changes/newData} for a single edit or {batch: [...]} for an ordered list; optional defaultWeekIndex/defaultDayIndex"`
}

// ModifyWorkoutProgramTool returns the MCP tool handler for modify_workout_program.
func (h *Handler) ModifyWorkoutProgramTool() func(context.Context, *mcp.CallToolRequest, ModifyProgramInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ModifyProgramInput) (*mcp.CallToolResult, any, error) {
		var req workout.ModifyRequest
		if err := json.Unmarshal([]byte(in.RequestJSON), &req); err != nil {
			return errorResult("Invalid request_json: " + err.Error()), nil, nil
		}
		if len(req.Operations()) == 0 {
			return errorResult("Invalid request_json: no action or batch given"), nil, nil
		}
		result, err := h.service.ModifyProgram(ctx, in.ProgramID, req)
		if err != nil {
			return errorResult("Error modifying program: " + err.Error()), nil, nil
		}
		return jsonResult(result)
	}
}

// GetPlanInput is the input for get_nutrition_plan.
type GetPlanInput struct {
	PlanID string `json:"plan_id" jsonschema:"The nutrition plan id"`
}

// GetNutritionPlanTool returns the MCP tool handler for get_nutrition_plan.
func (h *Handler) GetNutritionPlanTool() func(context.Context, *mcp.CallToolRequest, GetPlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GetPlanInput) (*mcp.CallToolResult, any, error) {
		plan, err := h.service.GetPlan(ctx, in.PlanID)
		if err != nil {
			return errorResult("Error fetching plan: " + err.Error()), nil, nil
		}
		return jsonResult(plan)
	}
}

// ModifyPlanInput is the input for modify_nutrition_plan.
type ModifyPlanInput struct {
	PlanID      string `json:"plan_id" jsonschema:"The nutrition plan id"`
	RequestJSON string `json:"request_json" jsonschema:"Modification request JSON: either {action, target, changes/newData} for a single edit or {batch: [...]} for an ordered list; optional defaultWeekIndex/defaultDayIndex"`
}

// ModifyNutritionPlanTool returns the MCP tool handler for modify_nutrition_plan.
func (h *Handler) ModifyNutritionPlanTool() func(context.Context, *mcp.CallToolRequest, ModifyPlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ModifyPlanInput) (*mcp.CallToolResult, any, error) {
		var req nutrition.ModifyRequest
		if err := json.Unmarshal([]byte(in.RequestJSON), &req); err != nil {
			return errorResult("Invalid request_json: " + err.Error()), nil, nil
		}
		if len(req.Operations()) == 0 {
			return errorResult("Invalid request_json: no action or batch given"), nil, nil
		}
		result, err := h.service.ModifyPlan(ctx, in.PlanID, req)
		if err != nil {
			return errorResult("Error modifying plan: " + err.Error()), nil, nil
		}
		return jsonResult(result)
	}
}

// CatalogSearchInput is the input for the catalog search tools.
type CatalogSearchInput struct {
	Query string `json:"query" jsonschema:"Substring to match against entry names (case-insensitive)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results to return (default 50)"`
}

// SearchExerciseCatalogTool returns the MCP tool handler for search_exercise_catalog.
func (h *Handler) SearchExerciseCatalogTool() func(context.Context, *mcp.CallToolRequest, CatalogSearchInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CatalogSearchInput) (*mcp.CallToolResult, any, error) {
		if in.Query == "" {
			return errorResult("Missing query"), nil, nil
		}
		entries, err := h.service.SearchExercises(ctx, in.Query, in.Limit)
		if err != nil {
			return errorResult("Error searching exercise catalog: " + err.Error()), nil, nil
		}
		if len(entries) == 0 {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("No exercises matching %q", in.Query)}},
			}, nil, nil
		}
		return jsonResult(entries)
	}
}

// SearchFoodCatalogTool returns the MCP tool handler for search_food_catalog.
func (h *Handler) SearchFoodCatalogTool() func(context.Context, *mcp.CallToolRequest, CatalogSearchInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CatalogSearchInput) (*mcp.CallToolResult, any, error) {
		if in.Query == "" {
			return errorResult("Missing query"), nil, nil
		}
		entries, err := h.service.SearchFoods(ctx, in.Query, in.Limit)
		if err != nil {
			return errorResult("Error searching food catalog: " + err.Error()), nil, nil
		}
		if len(entries) == 0 {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("No foods matching %q", in.Query)}},
			}, nil, nil
		}
		return jsonResult(entries)
	}
}
