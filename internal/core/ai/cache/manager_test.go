package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babybites/internal/infrastructure/config"
)

func newTestManager(t *testing.T, ttl time.Duration, maxSize int) *Manager {
	t.Helper()
	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
	m := NewManager(cfg)
	require.NotNil(t, m)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestCacheRoundTrip(t *testing.T) {
	m := newTestManager(t, time.Minute, 10)
	ctx := context.Background()

	_, err := m.Get(ctx, "prompt-a")
	assert.Error(t, err)

	require.NoError(t, m.Set(ctx, "prompt-a", "completion-a"))

	val, err := m.Get(ctx, "prompt-a")
	require.NoError(t, err)
	assert.Equal(t, "completion-a", val)
}

func TestCacheTTLExpiry(t *testing.T) {
	m := newTestManager(t, 10*time.Millisecond, 10)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "prompt-a", "completion-a"))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "prompt-a")
	assert.Error(t, err)
}

func TestCacheLRUEviction(t *testing.T) {
	m := newTestManager(t, time.Minute, 2)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	// touch "a" so "b" is the eviction candidate
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	_, err = m.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "b")
	assert.Error(t, err)
	_, err = m.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestCloseStopsCleanup(t *testing.T) {
	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Millisecond,
		},
	}
	m := NewManager(cfg)
	require.NotNil(t, m)

	require.NoError(t, m.Close())

	// the cleanup goroutine observed the stop signal; a second Close is a no-op
	select {
	case <-m.stop:
	default:
		t.Fatal("stop channel not closed")
	}
	require.NoError(t, m.Close())
}

func TestCacheDisabled(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Enabled: false}}
	m := NewManager(cfg)
	assert.Nil(t, m)

	// nil manager is safe to call
	_, err := m.Get(context.Background(), "prompt")
	assert.Error(t, err)
	assert.NoError(t, m.Set(context.Background(), "prompt", "value"))
	m.Close()
}
