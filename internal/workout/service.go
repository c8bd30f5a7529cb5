package workout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/coachbit/backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workout_test

// programsRepo is the document store boundary: load by id, save by id with a
// compare-and-swap on the stored version.
type programsRepo interface {
	Get(ctx context.Context, id string) (*Program, int64, error)
	Save(ctx context.Context, id string, p *Program, expectedVersion int64) error
}

// OperationResult is the outcome of one operation within a request.
type OperationResult struct {
	Action  ActionName `json:"action"`
	Success bool       `json:"success"`
	Message string     `json:"message"`
}

// ApplyResult reports a whole modification request: per-operation outcomes
// plus the updated document snapshot.
type ApplyResult struct {
	AppliedCount int               `json:"appliedCount"`
	FailedCount  int               `json:"failedCount"`
	Results      []OperationResult `json:"results"`
	Program      *Program          `json:"program,omitempty"`
}

func (r *ApplyResult) Success() bool {
	return r.FailedCount == 0
}

// Service is the modification orchestrator: load once, apply the operations
// in order, save once. Operations fail independently - a failed one leaves
// its target subtree untouched and the rest still apply - but persistence is
// all-or-nothing, a single versioned write at the end.
type Service struct {
	repo   programsRepo
	engine *engine
}

func NewService(repo programsRepo, catalogResolver catalogResolver) *Service {
	return &Service{
		repo: repo,
		engine: &engine{
			catalog: catalogResolver,
			newID:   uuid.NewString,
		},
	}
}

func (s *Service) Apply(ctx context.Context, programID string, ops []Operation, tctx TargetContext) (_ *ApplyResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: no operations given", ErrInvalidInput)
	}

	program, version, err := s.repo.Get(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load program %s: %w", programID, err)
	}
	if len(program.Weeks) == 0 {
		return nil, fmt.Errorf("program %s: %w", programID, ErrEmptyDocument)
	}

	result := &ApplyResult{
		Results: make([]OperationResult, 0, len(ops)),
	}
	var opErrs error
	for _, op := range ops {
		msg, opErr := s.engine.apply(ctx, program, op, tctx)
		if opErr != nil {
			log.Tracef("program %s, %s failed: %s", programID, op.Action, opErr)
			opErrs = multierr.Append(opErrs, opErr)
			result.FailedCount++
			result.Results = append(result.Results, OperationResult{
				Action:  op.Action,
				Message: opErr.Error(),
			})
			continue
		}
		result.AppliedCount++
		result.Results = append(result.Results, OperationResult{
			Action:  op.Action,
			Success: true,
			Message: msg,
		})
	}

	// everything failed and the tree is untouched - skip the write
	if result.AppliedCount == 0 {
		return nil, fmt.Errorf("no operation applied: %w", opErrs)
	}

	if err := s.repo.Save(ctx, programID, program, version); err != nil {
		return nil, fmt.Errorf("save program %s: %w", programID, err)
	}

	result.Program = program
	return result, nil
}
