package service

import (
	"fmt"
	"sync"
	"time"

	"docuextract/internal/domain"
)

// Status is a snapshot of the extraction lifecycle.
type Status struct {
	State     domain.ExtractionState `json:"state"`
	LastError string                 `json:"last_error,omitempty"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Lifecycle guards the single in-flight extraction. Every move goes through
// the domain transition table; anything else is rejected.
type Lifecycle struct {
	mu      sync.Mutex
	state   domain.ExtractionState
	lastErr string
	updated time.Time
	now     func() time.Time
}

// NewLifecycle returns a Lifecycle in the idle state.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: domain.StateIdle, updated: time.Now(), now: time.Now}
}

// Begin claims the lifecycle for a new run. It fails with ErrExtractionInProgress
// while another run is validating or awaiting a response.
func (l *Lifecycle) Begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.InFlight() {
		return domain.ErrExtractionInProgress
	}
	if err := l.moveLocked(domain.StateValidating); err != nil {
		return err
	}
	l.lastErr = ""
	return nil
}

// AwaitResponse marks validation complete and the remote call started.
func (l *Lifecycle) AwaitResponse() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.moveLocked(domain.StateAwaitingResponse)
}

// Complete ends the run. A nil err moves to done, anything else to failed.
func (l *Lifecycle) Complete(err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		if mErr := l.moveLocked(domain.StateFailed); mErr != nil {
			return mErr
		}
		l.lastErr = err.Error()
		return nil
	}
	return l.moveLocked(domain.StateDone)
}

// Status returns the current snapshot.
func (l *Lifecycle) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{State: l.state, LastError: l.lastErr, UpdatedAt: l.updated}
}

func (l *Lifecycle) moveLocked(next domain.ExtractionState) error {
	if !l.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, l.state, next)
	}
	l.state = next
	l.updated = l.now()
	return nil
}
