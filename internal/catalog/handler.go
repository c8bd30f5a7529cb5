package catalog

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/telemetry/tracing"
	"github.com/coachbit/backend/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/catalog/exercises", handler.HandleSearchExercises).Methods("GET", "OPTIONS").Name("search-exercises")
	r.HandleFunc("/catalog/foods", handler.HandleSearchFoods).Methods("GET", "OPTIONS").Name("search-foods")
}

func searchParams(r *http.Request) (query string, limit int) {
	query = r.URL.Query().Get("q")
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	return query, limit
}

func (handler *Handler) HandleSearchExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.searchExercises")
	defer span.End()

	query, limit := searchParams(r)
	entries, err := handler.service.SearchExercises(ctx, query, limit)
	if err != nil {
		log.Errorf("search exercise catalog [%s]: %s", query, err)
		http.Error(w, "failed to search exercise catalog", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []ExerciseEntry{}
	}

	pkg.WriteJSONResponse(w, entries, http.StatusOK)
}

func (handler *Handler) HandleSearchFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.searchFoods")
	defer span.End()

	query, limit := searchParams(r)
	entries, err := handler.service.SearchFoods(ctx, query, limit)
	if err != nil {
		log.Errorf("search food catalog [%s]: %s", query, err)
		http.Error(w, "failed to search food catalog", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []FoodEntry{}
	}

	pkg.WriteJSONResponse(w, entries, http.StatusOK)
}
