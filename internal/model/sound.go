// Package model defines the catalog record types.
package model

import (
	"time"
)

// Sound is a catalogued audio asset.
type Sound struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	AudioURL  string    `json:"audioUrl" yaml:"audioUrl"`
	Tags      []string  `json:"tags" yaml:"tags"`
	Equipment *string   `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Format    *string   `json:"format,omitempty" yaml:"format,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// SoundInput is the administrator-supplied shape of a new or edited sound.
type SoundInput struct {
	Title     string   `json:"title" yaml:"title" validate:"required"`
	AudioURL  string   `json:"audioUrl" yaml:"audioUrl" validate:"required"`
	Tags      []string `json:"tags" yaml:"tags" validate:"dive,max=64"`
	Equipment string   `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	Format    string   `json:"format,omitempty" yaml:"format,omitempty"`
}

// SoundUpdate carries a partial edit; nil fields are left unchanged.
type SoundUpdate struct {
	Title     *string
	AudioURL  *string
	Tags      []string
	SetTags   bool
	Equipment *string
	Format    *string
}

// Suggestion is a visitor request for a sound that is not in the library yet.
type Suggestion struct {
	ID          string    `json:"id"`
	SoundName   string    `json:"soundName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submittedAt"`
	IsRead      bool      `json:"isRead"`
}

// SuggestionInput is the submitted shape of a suggestion.
type SuggestionInput struct {
	SoundName   string `json:"soundName" validate:"required,max=200"`
	Category    string `json:"category" validate:"max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
