package discovery

import (
	"context"
	"log"
	"sync"

	"workspark/internal/domain/job"
)

// State is a listing lifecycle state.
//
//	Idle ──► Loading ──► Ready
//	  ▲         │  ▲
//	  │         ▼  │ (criteria changed / retry)
//	  └──────  Error
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is the observable listing state. Jobs is set only when Ready,
// Err only when Error.
type Snapshot struct {
	State      State
	Criteria   Criteria
	Generation uint64
	Jobs       []job.Job
	Err        error
}

// Ticket identifies one issued fetch.
type Ticket struct {
	Generation uint64
	done       chan struct{}
}

// Done is closed once the fetch has finished and its result was either
// committed or discarded.
func (t Ticket) Done() <-chan struct{} {
	return t.done
}

type ComposerOption func(*Composer)

// WithStrict makes Apply panic on invalid criteria instead of entering Error.
func WithStrict(strict bool) ComposerOption {
	return func(c *Composer) { c.strict = strict }
}

// WithOnChange registers a callback invoked after state transitions.
// Calls are serialized, happen outside the composer lock and always carry
// the latest snapshot; an intermediate state may be skipped.
func WithOnChange(fn func(Snapshot)) ComposerOption {
	return func(c *Composer) { c.onChange = fn }
}

func WithLogger(logger *log.Logger) ComposerOption {
	return func(c *Composer) { c.logger = logger }
}

// Composer drives one listing through Idle → Loading → Ready | Error.
// Every Apply bumps the generation; a fetch result is committed only if its
// generation is still the latest, so a slow stale response never overwrites
// a newer one. Superseded fetches are not cancelled.
type Composer struct {
	source JobSource
	strict bool
	logger *log.Logger

	mu   sync.Mutex
	gen  uint64
	snap Snapshot

	notifyMu  sync.Mutex
	onChange  func(Snapshot)
	delivered bool
	lastGen   uint64
	lastState State
}

func NewComposer(source JobSource, opts ...ComposerOption) *Composer {
	c := &Composer{
		source: source,
		snap:   Snapshot{State: StateIdle, Criteria: DefaultCriteria()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state.
func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Apply moves to Loading for the given criteria and starts a fetch.
func (c *Composer) Apply(ctx context.Context, crit Criteria) Ticket {
	if err := crit.Validate(); err != nil {
		if c.strict {
			panic(err)
		}
		return c.reject(crit, err)
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.snap = Snapshot{State: StateLoading, Criteria: crit, Generation: gen}
	c.mu.Unlock()

	c.notify()

	t := Ticket{Generation: gen, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		jobs, err := Compose(ctx, c.source, crit)
		c.commit(gen, crit, jobs, err)
	}()
	return t
}

// Retry re-issues the current criteria. It is the only way out of Error.
func (c *Composer) Retry(ctx context.Context) Ticket {
	c.mu.Lock()
	crit := c.snap.Criteria
	c.mu.Unlock()
	return c.Apply(ctx, crit)
}

func (c *Composer) reject(crit Criteria, err error) Ticket {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.snap = Snapshot{State: StateError, Criteria: crit, Generation: gen, Err: err}
	c.mu.Unlock()

	c.notify()

	t := Ticket{Generation: gen, done: make(chan struct{})}
	close(t.done)
	return t
}

func (c *Composer) commit(gen uint64, crit Criteria, jobs []job.Job, err error) bool {
	c.mu.Lock()
	if gen != c.gen {
		latest := c.gen
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Printf("[Listing] Discarded stale result generation=%d latest=%d", gen, latest)
		}
		return false
	}

	if err != nil {
		c.snap = Snapshot{State: StateError, Criteria: crit, Generation: gen, Err: err}
	} else {
		c.snap = Snapshot{State: StateReady, Criteria: crit, Generation: gen, Jobs: jobs}
	}
	c.mu.Unlock()

	c.notify()
	return true
}

// notify delivers the current snapshot, not the one that triggered it; a
// fetch may commit before its own Loading notification runs.
func (c *Composer) notify() {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	cur := c.Snapshot()
	if c.delivered && cur.Generation == c.lastGen && cur.State == c.lastState {
		return
	}
	c.delivered = true
	c.lastGen = cur.Generation
	c.lastState = cur.State
	c.onChange(cur)
}
