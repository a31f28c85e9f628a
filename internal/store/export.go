package store

import (
	"context"
	"strings"

	"github.com/rcliao/sfx-library/internal/apperr"
	"github.com/rcliao/sfx-library/internal/model"
)

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ExportSounds returns every sound, oldest first, as importable input.
func (s *SQLiteStore) ExportSounds(ctx context.Context) ([]model.SoundInput, error) {
	sounds, err := s.querySounds(ctx,
		`SELECT id, title, audio_url, tags, equipment, format, created_at
		 FROM sounds ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}

	out := make([]model.SoundInput, 0, len(sounds))
	for _, snd := range sounds {
		in := model.SoundInput{Title: snd.Title, AudioURL: snd.AudioURL, Tags: snd.Tags}
		if snd.Equipment != nil {
			in.Equipment = *snd.Equipment
		}
		if snd.Format != nil {
			in.Format = *snd.Format
		}
		out = append(out, in)
	}
	return out, nil
}

// ImportSounds stores sounds from an export or a hand-written list. Entries
// that fail validation or whose audio URL is already in the library are
// skipped; the import carries on past them.
func (s *SQLiteStore) ImportSounds(ctx context.Context, inputs []model.SoundInput) (*ImportResult, error) {
	existing, err := s.ListSounds(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, snd := range existing {
		seen[snd.AudioURL] = true
	}

	res := &ImportResult{}
	for _, in := range inputs {
		url := strings.TrimSpace(in.AudioURL)
		if seen[url] && url != "" {
			res.Skipped++
			continue
		}
		if _, err := s.CreateSound(ctx, in); err != nil {
			if !apperr.IsCode(err, apperr.CodeValidation) {
				return res, err
			}
			res.Skipped++
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		seen[url] = true
		res.Imported++
	}
	return res, nil
}
