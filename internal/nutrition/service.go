package nutrition

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/coachbit/backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition_test

// plansRepo is the document store boundary: load by id, save by id with a
// compare-and-swap on the stored version.
type plansRepo interface {
	Get(ctx context.Context, id string) (*Plan, int64, error)
	Save(ctx context.Context, id string, p *Plan, expectedVersion int64) error
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
	Plan         *Plan             `json:"plan,omitempty"`
}

func (r *ApplyResult) Success() bool {
	return r.FailedCount == 0
}

// Service is the modification orchestrator for nutrition plans. Same contract
// as the workout one: load once, apply in order with independent per-operation
// failures, persist with a single versioned write.
type Service struct {
	repo   plansRepo
	engine *engine
}

func NewService(repo plansRepo, foodResolver foodResolver) *Service {
	return &Service{
		repo: repo,
		engine: &engine{
			catalog: foodResolver,
		},
	}
}

func (s *Service) Apply(ctx context.Context, planID string, ops []Operation, tctx TargetContext) (_ *ApplyResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: no operations given", ErrInvalidInput)
	}

	plan, version, err := s.repo.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load plan %s: %w", planID, err)
	}
	if len(plan.Weeks) == 0 {
		return nil, fmt.Errorf("plan %s: %w", planID, ErrEmptyDocument)
	}

	result := &ApplyResult{
		Results: make([]OperationResult, 0, len(ops)),
	}
	var opErrs error
	for _, op := range ops {
		msg, opErr := s.engine.apply(ctx, plan, op, tctx)
		if opErr != nil {
			log.Tracef("plan %s, %s failed: %s", planID, op.Action, opErr)
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

	if err := s.repo.Save(ctx, planID, plan, version); err != nil {
		return nil, fmt.Errorf("save plan %s: %w", planID, err)
	}

	result.Plan = plan
	return result, nil
}
