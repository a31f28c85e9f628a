package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcliao/sfx-library/internal/catalog"
	"github.com/rcliao/sfx-library/internal/model"
)

// curatedTagsKey holds the administrator-curated tag list.
const curatedTagsKey = "sfx:tags"

type curatedTagsRecord struct {
	Tags      []string `json:"tags"`
	UpdatedAt string   `json:"updatedAt"`
}

func (s *SQLiteStore) getPref(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get pref %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) setPref(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(timeFormat))
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) deletePref(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prefs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete pref %s: %w", key, err)
	}
	return nil
}

// CuratedTags returns the stored curated tag list, sorted and deduplicated.
func (s *SQLiteStore) CuratedTags(ctx context.Context) ([]string, error) {
	b, ok, err := s.getPref(ctx, curatedTagsKey)
	if err != nil || !ok {
		return []string{}, err
	}
	var rec curatedTagsRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode curated tags: %w", err)
	}
	return catalog.New(rec.Tags).List(), nil
}

// SetCuratedTags replaces the curated tag list.
func (s *SQLiteStore) SetCuratedTags(ctx context.Context, tagList []string) ([]string, error) {
	rec := curatedTagsRecord{
		Tags:      catalog.New(tagList).List(),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := s.setPref(ctx, curatedTagsKey, b); err != nil {
		return nil, err
	}
	return rec.Tags, nil
}

// LoadAffirmation returns the stored affirmation. A missing record reads as
// nil; an unreadable one is deleted and also reads as nil.
func (s *SQLiteStore) LoadAffirmation(ctx context.Context) (*model.Affirmation, error) {
	b, ok, err := s.getPref(ctx, model.AffirmationKey)
	if err != nil || !ok {
		return nil, err
	}
	var rec model.Affirmation
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, s.deletePref(ctx, model.AffirmationKey)
	}
	return &rec, nil
}

// SaveAffirmation stores the affirmation record.
func (s *SQLiteStore) SaveAffirmation(ctx context.Context, rec model.Affirmation) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.setPref(ctx, model.AffirmationKey, b)
}

// ClearAffirmation forgets the affirmation record.
func (s *SQLiteStore) ClearAffirmation(ctx context.Context) error {
	return s.deletePref(ctx, model.AffirmationKey)
}
