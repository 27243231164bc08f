package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_ExhaustsBudget(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"), "request over budget should be denied")
	assert.False(t, l.Allow("10.0.0.1"), "denial should persist within the window")
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// a different client must not be affected, and must not refill the first
	assert.True(t, l.Allow("10.0.0.2"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestAllow_WindowElapsedRefills(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	assert.True(t, l.Allow("c"))
	assert.False(t, l.Allow("c"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow("c"), "budget should refill after the window elapses")
}

func TestReset_RefillsAllBudgets(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.False(t, l.Allow("a"))

	l.Reset()

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
}

func TestRun_PeriodicReset(t *testing.T) {
	l := New(1, 15*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	assert.True(t, l.Allow("c"))
	assert.False(t, l.Allow("c"))

	assert.Eventually(t, func() bool { return l.Allow("c") },
		200*time.Millisecond, 5*time.Millisecond, "ticker should refill the budget")
}

func TestAllow_ConcurrentAccountingIsExact(t *testing.T) {
	const limit = 100
	l := New(limit, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 4*limit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, admitted, "no admissions may be lost or duplicated under concurrency")
}
