package model

import "time"

// AffirmationKey is the preference key the age affirmation is stored under.
const AffirmationKey = "sfx_library_age_verified"

// AffirmationTTL is how long an affirmation stays valid.
const AffirmationTTL = 30 * 24 * time.Hour

// Affirmation records the most recent successful age affirmation.
// Timestamp is Unix milliseconds.
type Affirmation struct {
	Verified  bool  `json:"verified"`
	Timestamp int64 `json:"timestamp"`
}

// NewAffirmation returns a verified record stamped at now.
func NewAffirmation(now time.Time) Affirmation {
	return Affirmation{Verified: true, Timestamp: now.UnixMilli()}
}

// At returns the record's timestamp as a time.
func (a Affirmation) At() time.Time {
	return time.UnixMilli(a.Timestamp)
}
