// Package kv provides the workspace snapshot stores: a redis-backed one
// for deployments and an in-memory one for tests and ephemeral runs.
package kv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound indicates no blob has been saved for a workspace.
var ErrSnapshotNotFound = errors.New("kv: snapshot not found")

const keyPrefix = "ledgersim:ws:"

// RedisStore keeps one blob per workspace under ledgersim:ws:<name>.
type RedisStore struct {
	client *redis.Client
}

// NewRedis connects a client and verifies the server is reachable.
func NewRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kv: ping: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, workspace string, blob []byte) error {
	return s.client.Set(ctx, keyPrefix+workspace, blob, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context, workspace string) ([]byte, error) {
	blob, err := s.client.Get(ctx, keyPrefix+workspace).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, workspace)
	}
	return blob, err
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is the in-process snapshot store.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, workspace string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[workspace] = cp
	return nil
}

func (s *MemoryStore) Load(_ context.Context, workspace string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[workspace]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, workspace)
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}
