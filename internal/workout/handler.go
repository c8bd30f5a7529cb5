package workout

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type modificationService interface {
	Apply(ctx context.Context, programID string, ops []Operation, tctx TargetContext) (*ApplyResult, error)
}

type sessionDefaults interface {
	Get(ctx context.Context, clientID string) (session.Defaults, error)
}

type programsStore interface {
	Create(ctx context.Context, id string, p *Program) error
	Get(ctx context.Context, id string) (*Program, int64, error)
	Delete(ctx context.Context, id string) error
}

// ModifyRequest is the tool-call / HTTP contract for program modifications:
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
	Program       *Program          `json:"program,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type CreateProgramResponse struct {
	ID string `json:"id"`
}

type Handler struct {
	store    programsStore
	service  modificationService
	sessions sessionDefaults
	metrics  *metrics.Manager
}

func NewHandler(
	store programsStore,
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
	r.HandleFunc("/programs", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/programs/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-program")
	r.HandleFunc("/programs/{id}/modify", handler.HandleModify).Methods("POST", "OPTIONS").Name("modify-program")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var program Program
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		log.Tracef("new program, unmarshal json params: %s", err)
		http.Error(w, "add program failed", http.StatusBadRequest)
		return
	}
	if len(program.Weeks) == 0 {
		http.Error(w, "error, program needs at least one week", http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	if err := handler.store.Create(ctx, id, &program); err != nil {
		log.Errorf("failed to create program [%s]: %s", program.Title, err)
		http.Error(w, "error, failed to create program", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterPrograms.Inc()

	pkg.WriteJSONResponse(w, CreateProgramResponse{ID: id}, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	program, _, err := handler.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get program %s: %s", id, err)
		http.Error(w, "failed to get program", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, program, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete program %s: %s", id, err)
		http.Error(w, "failed to delete program", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, "", "deleted:"+id, http.StatusOK)
}

func (handler *Handler) HandleModify(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.modify")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]

	var req ModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("modify program, unmarshal json params: %s", err)
		http.Error(w, "modify program failed", http.StatusBadRequest)
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

	handler.metrics.CounterProgramModifications.Add(float64(result.AppliedCount))

	pkg.WriteJSONResponse(w, ModifyResponse{
		Success:       result.Success(),
		Message:       resultSummary(result),
		ModifiedCount: result.AppliedCount,
		Results:       result.Results,
		Program:       result.Program,
	}, http.StatusOK)
}

func (handler *Handler) writeApplyError(w http.ResponseWriter, id string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrProgramNotFound):
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
		log.Errorf("failed to modify program %s: %s", id, err)
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
