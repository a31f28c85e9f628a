// Package gate decides whether a user action may show its results right away
// or must wait for an age affirmation, and resumes the deferred action once
// the user affirms or declines.
//
// All transitions are pure: they take a State and return the next State plus
// an Outcome describing what the caller should render and persist.
package gate

import (
	"time"

	"github.com/rcliao/sfx-library/internal/maturity"
	"github.com/rcliao/sfx-library/internal/model"
)

// State is the whole gate context. A nil Pending means Idle.
type State struct {
	Affirmation *model.Affirmation `json:"affirmation,omitempty"`
	Pending     *Action            `json:"pending,omitempty"`
}

// Awaiting reports whether an action is waiting on the affirmation step.
func (s State) Awaiting() bool {
	return s.Pending != nil
}

// Outcome is the visible effect of a transition.
type Outcome struct {
	Action  Action        `json:"action"`
	Results []model.Sound `json:"results"`
	// Visible is false when nothing should be rendered: the action is
	// suspended, or a declined view-all was discarded.
	Visible  bool `json:"visible"`
	Awaiting bool `json:"awaiting"`

	// AffirmationSet and AffirmationCleared tell the caller what to persist.
	AffirmationSet     bool `json:"affirmation_set,omitempty"`
	AffirmationCleared bool `json:"affirmation_cleared,omitempty"`
}

// Valid reports whether rec is a verified affirmation no older than
// model.AffirmationTTL at now.
func Valid(rec *model.Affirmation, now time.Time) bool {
	if rec == nil || !rec.Verified {
		return false
	}
	return now.Sub(rec.At()) <= model.AffirmationTTL
}

// Check drops a stale affirmation. It returns the cleaned state, whether the
// affirmation is valid, and whether a record was dropped.
func Check(st State, now time.Time) (State, bool, bool) {
	if Valid(st.Affirmation, now) {
		return st, true, false
	}
	if st.Affirmation == nil {
		return st, false, false
	}
	st.Affirmation = nil
	return st, false, true
}

// Attempt handles a new user action. If its candidates include restricted
// sounds and there is no valid affirmation the action becomes the pending
// one, replacing any earlier pending action, and nothing is shown.
// Otherwise the results are shown, filtered unless affirmed, and any stale
// pending action is dropped.
func Attempt(st State, items []model.Sound, a Action, now time.Time) (State, Outcome) {
	st, valid, cleared := Check(st, now)
	out := Outcome{Action: a, AffirmationCleared: cleared}

	candidates := a.Candidates(items)
	if !valid && maturity.ContainsRestricted(candidates) {
		pending := a
		st.Pending = &pending
		out.Awaiting = true
		return st, out
	}

	st.Pending = nil
	out.Results = maturity.FilterRestricted(candidates, valid)
	out.Visible = true
	return st, out
}

// Affirm records a fresh affirmation and runs the pending action, if any,
// without filtering.
func Affirm(st State, items []model.Sound, now time.Time) (State, Outcome) {
	rec := model.NewAffirmation(now)
	st.Affirmation = &rec
	out := Outcome{AffirmationSet: true}

	if st.Pending == nil {
		return st, out
	}
	a := *st.Pending
	st.Pending = nil

	out.Action = a
	out.Results = a.Candidates(items)
	out.Visible = true
	return st, out
}

// Decline leaves the affirmation untouched. A pending view-all is discarded
// with nothing shown; a pending query or tag is shown without restricted
// sounds.
func Decline(st State, items []model.Sound) (State, Outcome) {
	if st.Pending == nil {
		return st, Outcome{}
	}
	a := *st.Pending
	st.Pending = nil

	out := Outcome{Action: a}
	if a.Kind == KindViewAll {
		return st, out
	}
	out.Results = maturity.FilterRestricted(a.Candidates(items), false)
	out.Visible = true
	return st, out
}

// Dismiss closes the gate without a choice, which counts as a decline.
func Dismiss(st State, items []model.Sound) (State, Outcome) {
	return Decline(st, items)
}

// Reset forgets the affirmation.
func Reset(st State) State {
	st.Affirmation = nil
	return st
}
