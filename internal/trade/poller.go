package trade

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Status is a payment provider status. Anything beyond the three known
// values is carried through verbatim for generic display.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusExpired  Status = "expired"
)

// ParseStatus normalizes a provider status string.
func ParseStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// CheckFunc queries the current status of the payment being watched.
type CheckFunc func(ctx context.Context) (Status, error)

// Event is one observed status check result.
type Event struct {
	Status Status
	Err    error
	// Manual marks an out-of-band "I already paid" check as opposed to a
	// timer tick.
	Manual bool
	// FirstApproved is set on the single event that first observed
	// "approved", whichever of the timer or a manual check got there first.
	FirstApproved bool
}

// Poller repeatedly checks a payment's status on a fixed interval until the
// owner stops it. Ticks are independent: a slow or failed check never
// delays the next scheduled one. Checks are read-only, so a manual check
// racing a timer tick is harmless; both results are applied idempotently by
// the consumer.
type Poller struct {
	check    CheckFunc
	interval time.Duration

	events   chan Event
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	approved atomic.Bool
}

// NewPoller creates a poller; call Start to begin ticking.
func NewPoller(interval time.Duration, check CheckFunc) *Poller {
	return &Poller{
		check:    check,
		interval: interval,
		events:   make(chan Event, 16),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Events delivers check results. The channel is never closed; consumers
// select on it together with Done.
func (p *Poller) Events() <-chan Event { return p.events }

// Done is closed once Stop has torn the ticking goroutine down.
func (p *Poller) Done() <-chan struct{} { return p.done }

// Start launches the ticking goroutine.
func (p *Poller) Start() {
	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				// Each check runs in its own goroutine so a slow response
				// never delays the next scheduled tick.
				go func() { p.publish(p.runCheck(false)) }()
			}
		}
	}()
}

// CheckNow performs one immediate out-of-band check and returns its result
// directly to the caller. The result also counts toward the
// once-per-transition approved tracking shared with the timer.
func (p *Poller) CheckNow(ctx context.Context) Event {
	ev := Event{Manual: true}
	status, err := p.check(ctx)
	if err != nil {
		ev.Err = err
		return ev
	}
	ev.Status = status
	if status == StatusApproved {
		ev.FirstApproved = p.approved.CompareAndSwap(false, true)
	}
	return ev
}

// Stop tears the poller down. Safe to call more than once; returns after
// the ticking goroutine has exited.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

func (p *Poller) runCheck(manual bool) Event {
	ev := Event{Manual: manual}
	status, err := p.check(context.Background())
	if err != nil {
		ev.Err = err
		return ev
	}
	ev.Status = status
	if status == StatusApproved {
		ev.FirstApproved = p.approved.CompareAndSwap(false, true)
	}
	return ev
}

// publish delivers an event without ever blocking the tick loop. If the
// consumer is gone or lagging, the result is dropped; the next tick will
// re-observe the same read-only status.
func (p *Poller) publish(ev Event) {
	select {
	case p.events <- ev:
	case <-p.stop:
	default:
	}
}
