package gate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rcliao/sfx-library/internal/model"
)

// AffirmationStore persists the affirmation record on the client.
// LoadAffirmation returns nil, nil when no usable record exists.
type AffirmationStore interface {
	LoadAffirmation(ctx context.Context) (*model.Affirmation, error)
	SaveAffirmation(ctx context.Context, rec model.Affirmation) error
	ClearAffirmation(ctx context.Context) error
}

// Session holds the gate state for one client and writes affirmation changes
// through to the store. Its lock keeps a replacing Attempt from interleaving
// with the Affirm or Decline that resolves the pending action.
type Session struct {
	mu    sync.Mutex
	store AffirmationStore
	state State
	now   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession loads the stored affirmation and starts Idle.
func NewSession(ctx context.Context, store AffirmationStore, opts ...Option) (*Session, error) {
	s := &Session{store: store, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	rec, err := store.LoadAffirmation(ctx)
	if err != nil {
		return nil, fmt.Errorf("load affirmation: %w", err)
	}
	s.state.Affirmation = rec
	return s, nil
}

// State returns a copy of the current gate state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Verified reports whether a valid affirmation exists, clearing a stale one.
func (s *Session) Verified(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, valid, cleared := Check(s.state, s.now())
	s.state = st
	if cleared {
		if err := s.store.ClearAffirmation(ctx); err != nil {
			return valid, fmt.Errorf("clear affirmation: %w", err)
		}
	}
	return valid, nil
}

// Attempt runs a user action through the gate.
func (s *Session) Attempt(ctx context.Context, items []model.Sound, a Action) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, out := Attempt(s.state, items, a, s.now())
	s.state = st
	return out, s.persist(ctx, out)
}

// Affirm records the affirmation and resumes the pending action.
func (s *Session) Affirm(ctx context.Context, items []model.Sound) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, out := Affirm(s.state, items, s.now())
	s.state = st
	return out, s.persist(ctx, out)
}

// Decline resolves the pending action without affirming.
func (s *Session) Decline(items []model.Sound) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, out := Decline(s.state, items)
	s.state = st
	return out
}

// Dismiss closes the prompt without a choice, which counts as a decline.
func (s *Session) Dismiss(items []model.Sound) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, out := Dismiss(s.state, items)
	s.state = st
	return out
}

// Reset clears the stored affirmation.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reset(s.state)
	if err := s.store.ClearAffirmation(ctx); err != nil {
		return fmt.Errorf("clear affirmation: %w", err)
	}
	return nil
}

func (s *Session) persist(ctx context.Context, out Outcome) error {
	switch {
	case out.AffirmationSet && s.state.Affirmation != nil:
		if err := s.store.SaveAffirmation(ctx, *s.state.Affirmation); err != nil {
			return fmt.Errorf("save affirmation: %w", err)
		}
	case out.AffirmationCleared:
		if err := s.store.ClearAffirmation(ctx); err != nil {
			return fmt.Errorf("clear affirmation: %w", err)
		}
	}
	return nil
}
