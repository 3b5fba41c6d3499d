package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/ports"
)

const redisKeyPrefix = "saarthi:session:"

// RedisStore keeps sessions in Redis with key expiry as the eviction policy.
// Lock is process-local; the service runs as a single instance per deployment.
type RedisStore struct {
	client *redis.Client
	locks  *keyedMutex
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(url string, ttl time.Duration, log *zap.Logger) (ports.SessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	log.Info("Redis session store initialized", zap.Duration("ttl", ttl))
	return &RedisStore{
		client: client,
		locks:  newKeyedMutex(),
		ttl:    ttl,
		log:    log,
	}, nil
}

func (s *RedisStore) GetOrCreate(ctx context.Context, id string) (string, *domain.Session, error) {
	if id != "" {
		data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
		if err == nil {
			var sess domain.Session
			if err := json.Unmarshal(data, &sess); err != nil {
				return "", nil, fmt.Errorf("failed to decode session %s: %w", id, err)
			}
			return id, &sess, nil
		}
		if !errors.Is(err, redis.Nil) {
			return "", nil, err
		}
	}

	// Absent and unknown ids both get a fresh opaque id, matching the
	// in-memory backend.
	id = uuid.NewString()
	fresh := domain.NewSession(id)
	if err := s.Save(ctx, fresh); err != nil {
		return "", nil, err
	}
	return id, fresh, nil
}

func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	session.LastSeenAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, redisKeyPrefix+session.ID, data, s.ttl).Err()
}

func (s *RedisStore) Lock(id string) func() {
	return s.locks.Lock(id)
}

func (s *RedisStore) Ping() error {
	return s.client.Ping(context.Background()).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
