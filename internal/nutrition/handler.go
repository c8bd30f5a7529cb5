package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/session"
	"github.com/coachbit/backend/internal/telemetry/metrics"
	"github.com/coachbit/backend/internal/telemetry/tracing"
	"github.com/coachbit/backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type modificationService interface {
	Apply(ctx context.Context, planID string, ops []Operation, tctx TargetContext) (*ApplyResult, error)
}

type sessionDefaults interface {
	Get(ctx context.Context, clientID string) (session.Defaults, error)
}

type plansStore interface {
	Create(ctx context.Context, id string, p *Plan) error
	Get(ctx context.Context, id string) (*Plan, int64, error)
	Delete(ctx context.Context, id string) error
}

// ModifyRequest is the tool-call / HTTP contract for plan modifications:
// either a single action or an ordered batch.
type ModifyRequest struct {
	Action  ActionName      `json:"action,omitempty"`
	Target  Target          `json:"target,omitempty"`
	Changes json.RawMessage `json:"changes,omitempty"`
	NewData json.RawMessage `json:"newData,omitempty"`
	Batch   []Operation     `json:"batch,omitempty"`

	// caller-side UI defaults for unspecified week/day
	DefaultWeekIndex *int `json:"defaultWeekIndex,omitempty"`
	DefaultDayIndex  *int `json:"defaultDayIndex,omitempty"`
}

// Operations normalizes the request into an ordered operation list.
func (req *ModifyRequest) Operations() []Operation {
	if len(req.Batch) > 0 {
		return req.Batch
	}
	if req.Action == "" {
		return nil
	}
	return []Operation{{
		Action:  req.Action,
		Target:  req.Target,
		Changes: req.Changes,
		NewData: req.NewData,
	}}
}

func (req *ModifyRequest) TargetContext() TargetContext {
	return TargetContext{
		DefaultWeekIndex: req.DefaultWeekIndex,
		DefaultDayIndex:  req.DefaultDayIndex,
	}
}

type ModifyResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	ModifiedCount int               `json:"modifiedCount"`
	Results       []OperationResult `json:"results"`
	Plan          *Plan             `json:"plan,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type CreatePlanResponse struct {
	ID string `json:"id"`
}

type Handler struct {
	store    plansStore
	service  modificationService
	sessions sessionDefaults
	metrics  *metrics.Manager
}

func NewHandler(
	store plansStore,
	service modificationService,
	sessions sessionDefaults,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		store:    store,
		service:  service,
		sessions: sessions,
		metrics:  metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plans", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/plans/{id}/modify", handler.HandleModify).Methods("POST", "OPTIONS").Name("modify-plan")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}
	if len(plan.Weeks) == 0 {
		http.Error(w, "error, plan needs at least one week", http.StatusBadRequest)
		return
	}

	// totals are derived, never trusted from the request
	for wi := range plan.Weeks {
		for di := range plan.Weeks[wi].Days {
			RecomputeDayTotals(&plan.Weeks[wi].Days[di])
		}
	}

	id := uuid.NewString()
	if err := handler.store.Create(ctx, id, &plan); err != nil {
		log.Errorf("failed to create plan [%s]: %s", plan.Title, err)
		http.Error(w, "error, failed to create plan", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPlans.Inc()

	pkg.WriteJSONResponse(w, CreatePlanResponse{ID: id}, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	plan, _, err := handler.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get plan %s: %s", id, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, plan, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete plan %s: %s", id, err)
		http.Error(w, "failed to delete plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, "", "deleted:"+id, http.StatusOK)
}

func (handler *Handler) HandleModify(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.modify")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]

	var req ModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("modify plan, unmarshal json params: %s", err)
		http.Error(w, "modify plan failed", http.StatusBadRequest)
		return
	}

	ops := req.Operations()
	if len(ops) == 0 {
		http.Error(w, "error, no action given", http.StatusBadRequest)
		return
	}

	tctx := req.TargetContext()
	// request defaults win, the stored editing context is a fallback
	if tctx.DefaultWeekIndex == nil && tctx.DefaultDayIndex == nil && handler.sessions != nil {
		if clientID := r.Header.Get("X-Client-Id"); clientID != "" {
			if defaults, err := handler.sessions.Get(ctx, clientID); err == nil {
				tctx.DefaultWeekIndex = defaults.WeekIndex
				tctx.DefaultDayIndex = defaults.DayIndex
			} else if !errors.Is(err, session.ErrNoSession) {
				log.Errorf("get session context for %s: %s", clientID, err)
			}
		}
	}

	result, err := handler.service.Apply(ctx, id, ops, tctx)
	if err != nil {
		handler.writeApplyError(w, id, err)
		return
	}

	handler.metrics.CounterPlanModifications.Add(float64(result.AppliedCount))

	pkg.WriteJSONResponse(w, ModifyResponse{
		Success:       result.Success(),
		Message:       resultSummary(result),
		ModifiedCount: result.AppliedCount,
		Results:       result.Results,
		Plan:          result.Plan,
	}, http.StatusOK)
}

func (handler *Handler) writeApplyError(w http.ResponseWriter, id string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrPlanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrConcurrentModification):
		status = http.StatusConflict
		handler.metrics.CounterModificationConflicts.Inc()
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrTargetNotFound),
		errors.Is(err, ErrMissingTarget),
		errors.Is(err, ErrEmptyDocument):
		status = http.StatusBadRequest
	default:
		log.Errorf("failed to modify plan %s: %s", id, err)
	}
	pkg.WriteJSONResponse(w, ErrorResponse{Error: err.Error()}, status)
}

func resultSummary(result *ApplyResult) string {
	if result.FailedCount == 0 && len(result.Results) == 1 {
		return result.Results[0].Message
	}
	summary := make([]string, 0, len(result.Results))
	for _, res := range result.Results {
		if res.Success {
			summary = append(summary, res.Message)
		} else {
			summary = append(summary, "failed "+string(res.Action)+": "+res.Message)
		}
	}
	return strings.Join(summary, "; ")
}
