package trade

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, ParseStatus(" Approved "))
	assert.Equal(t, StatusPending, ParseStatus("pending"))
	assert.Equal(t, Status("in_mediation"), ParseStatus("in_mediation"))
}

func collectUntil(t *testing.T, p *Poller, want func(Event) bool, timeout time.Duration) Event {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case ev := <-p.Events():
			if want(ev) {
				return ev
			}
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestPollerDeliversApprovedOnce(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) (Status, error) {
		if calls.Add(1) < 3 {
			return StatusPending, nil
		}
		return StatusApproved, nil
	})
	p.Start()
	defer p.Stop()

	first := collectUntil(t, p, func(ev Event) bool { return ev.Status == StatusApproved }, time.Second)
	assert.True(t, first.FirstApproved)

	// Later approved observations are no longer "first".
	next := collectUntil(t, p, func(ev Event) bool { return ev.Status == StatusApproved }, time.Second)
	assert.False(t, next.FirstApproved)
}

func TestPollerIgnoresErrorsAndKeepsTicking(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) (Status, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("gateway timeout")
		}
		return StatusPending, nil
	})
	p.Start()
	defer p.Stop()

	errEv := collectUntil(t, p, func(ev Event) bool { return ev.Err != nil }, time.Second)
	assert.Error(t, errEv.Err)

	// A failed tick does not stop the schedule.
	okEv := collectUntil(t, p, func(ev Event) bool { return ev.Err == nil }, time.Second)
	assert.Equal(t, StatusPending, okEv.Status)
}

func TestManualCheckSharesApprovedTransition(t *testing.T) {
	p := NewPoller(time.Hour, func(ctx context.Context) (Status, error) {
		return StatusApproved, nil
	})
	p.Start()
	defer p.Stop()

	ev := p.CheckNow(context.Background())
	require.True(t, ev.Manual)
	assert.Equal(t, StatusApproved, ev.Status)
	assert.True(t, ev.FirstApproved)

	// Second manual check: same status, but not the transition event.
	ev2 := p.CheckNow(context.Background())
	assert.False(t, ev2.FirstApproved)
}

func TestManualCheckReportsError(t *testing.T) {
	p := NewPoller(time.Hour, func(ctx context.Context) (Status, error) {
		return "", errors.New("offline")
	})
	p.Start()
	defer p.Stop()

	ev := p.CheckNow(context.Background())
	assert.Error(t, ev.Err)
	assert.False(t, ev.FirstApproved)
}

func TestStopIsIdempotentAndHaltsTicks(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) (Status, error) {
		calls.Add(1)
		return StatusPending, nil
	})
	p.Start()

	collectUntil(t, p, func(ev Event) bool { return true }, time.Second)
	p.Stop()
	p.Stop()

	n := calls.Load()
	time.Sleep(30 * time.Millisecond)
	// At most one in-flight check may land after Stop; no new ticks fire.
	assert.LessOrEqual(t, calls.Load(), n+1)
}

func TestPollerExpiredIsNotTerminalForTheTicker(t *testing.T) {
	p := NewPoller(5*time.Millisecond, func(ctx context.Context) (Status, error) {
		return StatusExpired, nil
	})
	p.Start()
	defer p.Stop()

	collectUntil(t, p, func(ev Event) bool { return ev.Status == StatusExpired }, time.Second)
	// The poller keeps running; teardown is the owner's decision.
	collectUntil(t, p, func(ev Event) bool { return ev.Status == StatusExpired }, time.Second)
}
