package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/coachbit/backend/internal/telemetry/metrics"
)

const (
	cacheSizeBytes    = 10 * 1024 * 1024
	cacheTTLSeconds   = 10 * 60
	exerciseKeyPrefix = "ex||"
	foodKeyPrefix     = "food||"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=catalog_test

type catalogRepo interface {
	FindExerciseByName(ctx context.Context, name string) (*ExerciseEntry, error)
	SearchExercises(ctx context.Context, query string, limit int) ([]ExerciseEntry, error)
	FindFoodByName(ctx context.Context, name string) (*FoodEntry, error)
	GetFood(ctx context.Context, id string) (*FoodEntry, error)
	SearchFoods(ctx context.Context, query string, limit int) ([]FoodEntry, error)
}

// Service caches name lookups in front of the catalog repo. Name resolution
// runs on the hot path of every add_exercise / add_food, and the catalog
// changes rarely, so a short TTL cache takes most of the read load.
type Service struct {
	repo    catalogRepo
	cache   *freecache.Cache
	metrics *metrics.Manager
}

// NewService builds a caching catalog service. metricsManager may be nil
// (the stdio MCP binary runs without a metrics server).
func NewService(repo catalogRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		cache:   freecache.NewCache(cacheSizeBytes),
		metrics: metricsManager,
	}
}

func (s *Service) countLookup(kind, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterCatalogLookups.WithLabelValues(kind, outcome).Inc()
}

func (s *Service) FindExerciseByName(ctx context.Context, name string) (*ExerciseEntry, error) {
	key := []byte(exerciseKeyPrefix + strings.ToLower(name))
	if raw, err := s.cache.Get(key); err == nil {
		var entry ExerciseEntry
		if err := json.Unmarshal(raw, &entry); err == nil {
			s.countLookup("exercise", "cache_hit")
			return &entry, nil
		}
	}

	entry, err := s.repo.FindExerciseByName(ctx, name)
	if err != nil {
		s.countLookup("exercise", "miss")
		return nil, err
	}
	s.countLookup("exercise", "hit")

	if raw, err := json.Marshal(entry); err == nil {
		if err := s.cache.Set(key, raw, cacheTTLSeconds); err != nil {
			log.Tracef("failed to cache exercise entry %q: %s", name, err)
		}
	}
	return entry, nil
}

func (s *Service) FindFoodByName(ctx context.Context, name string) (*FoodEntry, error) {
	key := []byte(foodKeyPrefix + strings.ToLower(name))
	if raw, err := s.cache.Get(key); err == nil {
		var entry FoodEntry
		if err := json.Unmarshal(raw, &entry); err == nil {
			s.countLookup("food", "cache_hit")
			return &entry, nil
		}
	}

	entry, err := s.repo.FindFoodByName(ctx, name)
	if err != nil {
		s.countLookup("food", "miss")
		return nil, err
	}
	s.countLookup("food", "hit")

	if raw, err := json.Marshal(entry); err == nil {
		if err := s.cache.Set(key, raw, cacheTTLSeconds); err != nil {
			log.Tracef("failed to cache food entry %q: %s", name, err)
		}
	}
	return entry, nil
}

func (s *Service) GetFood(ctx context.Context, id string) (*FoodEntry, error) {
	return s.repo.GetFood(ctx, id)
}

func (s *Service) SearchExercises(ctx context.Context, query string, limit int) ([]ExerciseEntry, error) {
	return s.repo.SearchExercises(ctx, query, limit)
}

func (s *Service) SearchFoods(ctx context.Context, query string, limit int) ([]FoodEntry, error) {
	return s.repo.SearchFoods(ctx, query, limit)
}
