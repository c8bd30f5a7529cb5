package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * time.Hour
	contextKeyPrefix = "coachbit-edit-context||"
)

var ErrNoSession = errors.New("no session context")

// Defaults is the per-client editing context: the week/day a coach currently
// has open, used to fill in unaddressed targets of modification requests.
type Defaults struct {
	WeekIndex *int `json:"weekIndex,omitempty"`
	DayIndex  *int `json:"dayIndex,omitempty"`
}

// Store keeps editing contexts in redis, one key per client, expiring after
// the TTL so stale UI state never leaks into later requests.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *Store) Set(ctx context.Context, clientID string, defaults Defaults) error {
	if clientID == "" {
		return errors.New("empty client id")
	}

	val, err := json.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshal session context: %w", err)
	}

	cmd := s.redisClient.Set(ctx, contextKeyPrefix+clientID, val, s.ttl)
	return cmd.Err()
}

func (s *Store) Get(ctx context.Context, clientID string) (Defaults, error) {
	cmd := s.redisClient.Get(ctx, contextKeyPrefix+clientID)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Defaults{}, ErrNoSession
		}
		return Defaults{}, err
	}

	var defaults Defaults
	if err := json.Unmarshal([]byte(cmd.Val()), &defaults); err != nil {
		return Defaults{}, fmt.Errorf("unmarshal session context: %w", err)
	}
	return defaults, nil
}

func (s *Store) Clear(ctx context.Context, clientID string) error {
	cmd := s.redisClient.Del(ctx, contextKeyPrefix+clientID)
	return cmd.Err()
}
