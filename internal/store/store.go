// Package store provides the catalog storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/sfx-library/internal/gate"
	"github.com/rcliao/sfx-library/internal/model"
)

// SoundStore holds the sound records.
type SoundStore interface {
	// CreateSound validates and stores a new sound.
	CreateSound(ctx context.Context, in model.SoundInput) (*model.Sound, error)

	// GetSound returns a sound by ID.
	GetSound(ctx context.Context, id string) (*model.Sound, error)

	// UpdateSound applies a partial edit and returns the result.
	UpdateSound(ctx context.Context, id string, u model.SoundUpdate) (*model.Sound, error)

	// DeleteSound removes a sound.
	DeleteSound(ctx context.Context, id string) error

	// ListSounds returns all sounds, newest first.
	ListSounds(ctx context.Context) ([]model.Sound, error)
}

// SuggestionStore holds visitor suggestions.
type SuggestionStore interface {
	CreateSuggestion(ctx context.Context, in model.SuggestionInput) (*model.Suggestion, error)
	GetSuggestion(ctx context.Context, id string) (*model.Suggestion, error)

	// ListSuggestions returns unread suggestions first, then newest first.
	ListSuggestions(ctx context.Context) ([]model.Suggestion, error)

	MarkSuggestionRead(ctx context.Context, id string, read bool) (*model.Suggestion, error)
	DeleteSuggestion(ctx context.Context, id string) error
}

// TagStore holds the curated tag list.
type TagStore interface {
	CuratedTags(ctx context.Context) ([]string, error)

	// SetCuratedTags replaces the list, dropping empty entries.
	SetCuratedTags(ctx context.Context, tags []string) ([]string, error)
}

// Store is everything the CLI needs from persistent storage.
type Store interface {
	SoundStore
	SuggestionStore
	TagStore
	gate.AffirmationStore

	// Close closes the store.
	Close() error
}
