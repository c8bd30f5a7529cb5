package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/telemetry/tracing"
	"github.com/coachbit/backend/pkg"
)

// Handler exposes the per-client editing context. Clients set it when a coach
// opens a week/day in the UI and modification requests pick it up via the
// X-Client-Id header.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/session/context", handler.HandleSet).Methods("PUT", "OPTIONS").Name("set-session-context")
	r.HandleFunc("/session/context", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session-context")
	r.HandleFunc("/session/context", handler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-session-context")
}

func (handler *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.set")
	defer span.End()

	clientID := r.Header.Get("X-Client-Id")
	if clientID == "" {
		http.Error(w, "missing X-Client-Id header", http.StatusBadRequest)
		return
	}

	var defaults Defaults
	if err := json.NewDecoder(r.Body).Decode(&defaults); err != nil {
		log.Tracef("set session context, unmarshal json params: %s", err)
		http.Error(w, "set session context failed", http.StatusBadRequest)
		return
	}

	if err := handler.store.Set(ctx, clientID, defaults); err != nil {
		log.Errorf("failed to set session context for %s: %s", clientID, err)
		http.Error(w, "failed to set session context", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, "", "stored", http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	clientID := r.Header.Get("X-Client-Id")
	if clientID == "" {
		http.Error(w, "missing X-Client-Id header", http.StatusBadRequest)
		return
	}

	defaults, err := handler.store.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			http.Error(w, "no session context", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session context for %s: %s", clientID, err)
		http.Error(w, "failed to get session context", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, defaults, http.StatusOK)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.clear")
	defer span.End()

	clientID := r.Header.Get("X-Client-Id")
	if clientID == "" {
		http.Error(w, "missing X-Client-Id header", http.StatusBadRequest)
		return
	}

	if err := handler.store.Clear(ctx, clientID); err != nil {
		log.Errorf("failed to clear session context for %s: %s", clientID, err)
		http.Error(w, "failed to clear session context", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponse(w, "", "cleared", http.StatusOK)
}
