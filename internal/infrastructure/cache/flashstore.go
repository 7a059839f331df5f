package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketdesk/internal/infrastructure/metrics"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashMessage is shown once, on the page after a redirect.
type FlashMessage struct {
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FlashStore holds one-shot messages keyed by an opaque token.
type FlashStore interface {
	Put(ctx context.Context, token string, msg FlashMessage) error
	// Take returns the message and removes it. A missing or expired token
	// yields nil, nil.
	Take(ctx context.Context, token string) (*FlashMessage, error)
}

// RedisFlashStore keeps flash messages in Redis with a TTL. Reads use GETDEL
// so a message is consumed exactly once.
type RedisFlashStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisFlashStore(client *redis.Client, prefix string, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisFlashStore) Put(ctx context.Context, token string, msg FlashMessage) error {
	if token == "" {
		return errors.New("flash token cannot be empty")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal flash message: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store flash message in redis: %w", err)
	}
	metrics.ObserveFlash("redis", "put")
	return nil
}

func (s *RedisFlashStore) Take(ctx context.Context, token string) (*FlashMessage, error) {
	if token == "" {
		return nil, nil
	}

	data, err := s.client.GetDel(ctx, s.buildKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read flash message from redis: %w", err)
	}

	var msg FlashMessage
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flash message: %w", err)
	}
	metrics.ObserveFlash("redis", "take")
	return &msg, nil
}

func (s *RedisFlashStore) buildKey(token string) string {
	return s.prefix + token
}

// MemoryFlashStore is the in-process FlashStore used when Redis is not configured.
type MemoryFlashStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryFlash
}

type memoryFlash struct {
	msg       FlashMessage
	expiresAt time.Time
}

func NewMemoryFlashStore(ttl time.Duration) *MemoryFlashStore {
	return &MemoryFlashStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryFlash),
	}
}

func (s *MemoryFlashStore) Put(_ context.Context, token string, msg FlashMessage) error {
	if token == "" {
		return errors.New("flash token cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.entries[token] = memoryFlash{msg: msg, expiresAt: now.Add(s.ttl)}
	metrics.ObserveFlash("memory", "put")
	return nil
}

func (s *MemoryFlashStore) Take(_ context.Context, token string) (*FlashMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, nil
	}
	delete(s.entries, token)
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		return nil, nil
	}
	metrics.ObserveFlash("memory", "take")
	msg := e.msg
	return &msg, nil
}

// sweep drops expired entries. Caller holds mu.
func (s *MemoryFlashStore) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
