package cache

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, m.Delete(ctx, "k"))
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoader_CachesValue(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(), time.Minute)

	var calls int32
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("snapshot"), nil
	}

	for i := 0; i < 3; i++ {
		val, err := l.GetOrLoad(ctx, "catalog", load)
		require.NoError(t, err)
		assert.Equal(t, []byte("snapshot"), val)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	require.NoError(t, l.Invalidate(ctx, "catalog"))
	_, err := l.GetOrLoad(ctx, "catalog", load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLoader_ZeroTTLDisablesCaching(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(), 0)

	var calls int32
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("x"), nil
	}

	_, _ = l.GetOrLoad(ctx, "k", load)
	_, _ = l.GetOrLoad(ctx, "k", load)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLoader_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(), time.Minute)

	_, err := l.GetOrLoad(ctx, "k", func(ctx context.Context) ([]byte, error) {
		return nil, errors.New("db down")
	})
	assert.ErrorContains(t, err, "db down")

	val, err := l.GetOrLoad(ctx, "k", func(ctx context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), val)
}

func TestLoader_ConcurrentCallersShareLoad(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(), time.Minute)

	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte("v"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err := l.GetOrLoad(ctx, "k", load)
			assert.NoError(t, err)
			assert.Equal(t, []byte("v"), val)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis cache tests")
	}

	ctx := context.Background()
	r, err := NewRedis(Config{RedisAddr: addr})
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(ctx, "test-key", []byte("v"), time.Minute))
	val, ok, err := r.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, r.Delete(ctx, "test-key"))
	_, ok, err = r.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_SelectsBackend(t *testing.T) {
	s, err := New(Config{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = New(Config{RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}
