package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyed_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	k := New(6, 2)
	k.now = func() time.Time { return now }

	require.True(t, k.Allow("a"))
	require.True(t, k.Allow("a"))
	require.False(t, k.Allow("a"))

	// other keys have their own bucket
	require.True(t, k.Allow("b"))

	// six per minute refills one token every ten seconds
	now = now.Add(10 * time.Second)
	require.True(t, k.Allow("a"))
	require.False(t, k.Allow("a"))
}

func TestKeyed_Sweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	k := New(6, 1)
	k.now = func() time.Time { return now }

	require.True(t, k.Allow("a"))
	require.True(t, k.Allow("b"))
	require.Equal(t, 2, k.Len())

	now = now.Add(idleAfter + time.Second)
	require.True(t, k.Allow("c"))
	require.Equal(t, 1, k.Len())
}

func TestKeyed_Disabled(t *testing.T) {
	k := New(0, 0)
	for range 100 {
		require.True(t, k.Allow("a"))
	}
	require.Zero(t, k.Len())
}

func TestKeyed_Concurrent(t *testing.T) {
	k := New(60, 5)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if k.Allow("same") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.GreaterOrEqual(t, allowed, 5)
	require.LessOrEqual(t, allowed, 6)
}
