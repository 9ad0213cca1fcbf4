package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// CommandLogEntry is the last command payload posted by a client,
// together with who posted it.
type CommandLogEntry struct {
	Username string          `json:"username"`
	Role     string          `json:"role"`
	Commands json.RawMessage `json:"commands"`
}

// CommandLogStore holds the most recent command-log entry. Last write
// wins. Latest returns nil when nothing has been posted yet.
type CommandLogStore interface {
	Put(ctx context.Context, entry CommandLogEntry) error
	Latest(ctx context.Context) (*CommandLogEntry, error)
}

type MemoryCommandLog struct {
	mu    sync.RWMutex
	entry *CommandLogEntry
}

func NewMemoryCommandLog() *MemoryCommandLog {
	return &MemoryCommandLog{}
}

func (s *MemoryCommandLog) Put(ctx context.Context, entry CommandLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = &entry
	return nil
}

func (s *MemoryCommandLog) Latest(ctx context.Context) (*CommandLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entry == nil {
		return nil, nil
	}
	entry := *s.entry
	return &entry, nil
}

type RedisCommandLog struct {
	client *redis.Client
	key    string
}

func NewRedisCommandLog(client *redis.Client) *RedisCommandLog {
	return &RedisCommandLog{
		client: client,
		key:    "command_log:latest",
	}
}

func (s *RedisCommandLog) Put(ctx context.Context, entry CommandLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal command log entry: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

func (s *RedisCommandLog) Latest(ctx context.Context) (*CommandLogEntry, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var entry CommandLogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal command log entry: %w", err)
	}

	return &entry, nil
}
