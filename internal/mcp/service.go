package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/coachbit/backend/internal/catalog"
	"github.com/coachbit/backend/internal/nutrition"
	"github.com/coachbit/backend/internal/workout"
)

// programsRepo provides workout program documents (for dependency injection and testing).
type programsRepo interface {
	Get(ctx context.Context, id string) (*workout.Program, int64, error)
}

// programModifier applies workout modification operations.
type programModifier interface {
	Apply(ctx context.Context, programID string, ops []workout.Operation, tctx workout.TargetContext) (*workout.ApplyResult, error)
}

// plansRepo provides nutrition plan documents.
type plansRepo interface {
	Get(ctx context.Context, id string) (*nutrition.Plan, int64, error)
}

// planModifier applies nutrition modification operations.
type planModifier interface {
	Apply(ctx context.Context, planID string, ops []nutrition.Operation, tctx nutrition.TargetContext) (*nutrition.ApplyResult, error)
}

// catalogSearcher searches the exercise and food catalogs.
type catalogSearcher interface {
	SearchExercises(ctx context.Context, query string, limit int) ([]catalog.ExerciseEntry, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]catalog.FoodEntry, error)
}

// coachService is the tool surface used by Handler, for testability.
type coachService interface {
	GetSchema(ctx context.Context) (string, error)
	GetProgram(ctx context.Context, id string) (*workout.Program, error)
	ModifyProgram(ctx context.Context, id string, req workout.ModifyRequest) (*workout.ApplyResult, error)
	GetPlan(ctx context.Context, id string) (*nutrition.Plan, error)
	ModifyPlan(ctx context.Context, id string, req nutrition.ModifyRequest) (*nutrition.ApplyResult, error)
	SearchExercises(ctx context.Context, query string, limit int) ([]catalog.ExerciseEntry, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]catalog.FoodEntry, error)
}

// CoachService implements the coach tool surface on top of the workout and
// nutrition services, so tool calls go through the exact same modification
// path as the HTTP API.
type CoachService struct {
	schema         SchemaRepo
	programs       programsRepo
	programService programModifier
	plans          plansRepo
	planService    planModifier
	catalog        catalogSearcher
}

func NewCoachService(
	schemaRepo SchemaRepo,
	programs programsRepo,
	programService programModifier,
	plans plansRepo,
	planService planModifier,
	catalogService catalogSearcher,
) *CoachService {
	return &CoachService{
		schema:         schemaRepo,
		programs:       programs,
		programService: programService,
		plans:          plans,
		planService:    planService,
		catalog:        catalogService,
	}
}

// GetSchema returns the DB schema (table names, columns, types) for the coach
// tables: workout_program, nutrition_plan, exercise_catalog, food_catalog.
func (s *CoachService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetCoachColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatCoachSchema(cols), nil
}

func formatCoachSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Coach DB Schema\n\nNo coach tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Coach DB Schema\n\n")
	b.WriteString("Tables: workout_program, nutrition_plan, exercise_catalog, food_catalog (schema: public).\n\n")

	for _, tableName := range tableOrder {
		tableCols := byTable[tableName]
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range tableCols {
			def := "—"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *CoachService) GetProgram(ctx context.Context, id string) (*workout.Program, error) {
	program, _, err := s.programs.Get(ctx, id)
	return program, err
}

func (s *CoachService) ModifyProgram(ctx context.Context, id string, req workout.ModifyRequest) (*workout.ApplyResult, error) {
	return s.programService.Apply(ctx, id, req.Operations(), req.TargetContext())
}

func (s *CoachService) GetPlan(ctx context.Context, id string) (*nutrition.Plan, error) {
	plan, _, err := s.plans.Get(ctx, id)
	return plan, err
}

func (s *CoachService) ModifyPlan(ctx context.Context, id string, req nutrition.ModifyRequest) (*nutrition.ApplyResult, error) {
	return s.planService.Apply(ctx, id, req.Operations(), req.TargetContext())
}

func (s *CoachService) SearchExercises(ctx context.Context, query string, limit int) ([]catalog.ExerciseEntry, error) {
	return s.catalog.SearchExercises(ctx, query, limit)
}

func (s *CoachService) SearchFoods(ctx context.Context, query string, limit int) ([]catalog.FoodEntry, error) {
	return s.catalog.SearchFoods(ctx, query, limit)
}
