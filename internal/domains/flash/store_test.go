package flash

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory cache.Cache for exercising the redis-backed
// store without a server.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(newFakeCache()),
	}
}

func TestStoreSetPeekClear(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			open, msg, err := store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.False(t, open)
			assert.Empty(t, msg)

			require.NoError(t, store.Set(ctx, "sid-1", "Successfully created."))

			open, msg, err = store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.True(t, open)
			assert.Equal(t, "Successfully created.", msg)

			// Peek does not consume the message.
			open, _, err = store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.True(t, open)

			require.NoError(t, store.Clear(ctx, "sid-1"))

			open, msg, err = store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.False(t, open)
			assert.Empty(t, msg)
		})
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "sid-1", "Successfully created."))
			require.NoError(t, store.Set(ctx, "sid-1", "Successfully deleted."))

			open, msg, err := store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.True(t, open)
			assert.Equal(t, "Successfully deleted.", msg)
		})
	}
}

func TestStoreClearIsIdempotent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Clear(ctx, "sid-1"))
			require.NoError(t, store.Clear(ctx, "sid-1"))
		})
	}
}

func TestStoreKeysAreSessionScoped(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "sid-1", "Successfully edited."))

			open, _, err := store.Peek(ctx, "sid-2")
			require.NoError(t, err)
			assert.False(t, open, "message must not leak across sessions")

			require.NoError(t, store.Clear(ctx, "sid-2"))

			open, msg, err := store.Peek(ctx, "sid-1")
			require.NoError(t, err)
			assert.True(t, open)
			assert.Equal(t, "Successfully edited.", msg)
		})
	}
}
