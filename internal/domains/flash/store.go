// Package flash implements the session-scoped one-shot notification store.
// Each session holds at most one pending message: Set overwrites (last write
// wins), Clear removes unconditionally. This is a flash-message pattern, not
// a queue.
package flash

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ander1code/cleanblog/pkg/cache"
)

// Message is the single pending notification for a session.
type Message struct {
	Open    bool   `json:"open"`
	Message string `json:"message"`
}

// Store is the keyed notification store handlers write to. It is injected
// by reference; there is no process-wide singleton.
type Store interface {
	// Set stores the pending message for sessionID, replacing any previous one.
	Set(ctx context.Context, sessionID, message string) error

	// Peek returns the pending message without clearing it.
	// open = false means nothing is pending.
	Peek(ctx context.Context, sessionID string) (bool, string, error)

	// Clear removes any pending message. Clearing an empty slot is a no-op.
	Clear(ctx context.Context, sessionID string) error
}

const (
	flashKeyPrefix = "flash:"

	// Abandoned sessions should not pin messages forever.
	flashTTL = 24 * time.Hour
)

// redisStore keeps flash messages in Redis so they survive process restarts
// and are shared across instances.
type redisStore struct {
	cache cache.Cache
}

// NewRedisStore builds the production Store on the shared cache layer.
func NewRedisStore(c cache.Cache) Store {
	return &redisStore{cache: c}
}

func (s *redisStore) Set(ctx context.Context, sessionID, message string) error {
	msg := Message{Open: true, Message: message}
	if err := s.cache.Set(ctx, flashKeyPrefix+sessionID, msg, flashTTL); err != nil {
		return fmt.Errorf("set flash message: %w", err)
	}
	return nil
}

func (s *redisStore) Peek(ctx context.Context, sessionID string) (bool, string, error) {
	var msg Message
	found, err := s.cache.Get(ctx, flashKeyPrefix+sessionID, &msg)
	if err != nil {
		return false, "", fmt.Errorf("read flash message: %w", err)
	}
	if !found {
		return false, "", nil
	}
	return msg.Open, msg.Message, nil
}

func (s *redisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, flashKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("clear flash message: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store with the same semantics, for tests and
// redis-less development.
type MemoryStore struct {
	mu       sync.Mutex
	messages map[string]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string]Message)}
}

func (s *MemoryStore) Set(_ context.Context, sessionID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[sessionID] = Message{Open: true, Message: message}
	return nil
}

func (s *MemoryStore) Peek(_ context.Context, sessionID string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.messages[sessionID]
	if !ok {
		return false, "", nil
	}
	return msg.Open, msg.Message, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, sessionID)
	return nil
}
