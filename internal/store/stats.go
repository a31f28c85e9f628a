package store

import (
	"context"
	"os"

	"github.com/rcliao/sfx-library/internal/catalog"
	"github.com/rcliao/sfx-library/internal/maturity"
)

// Stats holds library statistics.
type Stats struct {
	DBPath            string `json:"db_path"`
	DBSizeBytes       int64  `json:"db_size_bytes"`
	Sounds            int    `json:"sounds"`
	RestrictedSounds  int    `json:"restricted_sounds"`
	ContentTags       int    `json:"content_tags"`
	CuratedTags       int    `json:"curated_tags"`
	Suggestions       int    `json:"suggestions"`
	UnreadSuggestions int    `json:"unread_suggestions"`
}

// Stats returns library statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	sounds, err := s.ListSounds(ctx)
	if err != nil {
		return st, err
	}
	st.Sounds = len(sounds)
	st.RestrictedSounds = maturity.Count(sounds)
	st.ContentTags = len(catalog.ContentTags(sounds))

	curated, err := s.CuratedTags(ctx)
	if err != nil {
		return st, err
	}
	st.CuratedTags = len(curated)

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN is_read = 0 THEN 1 ELSE 0 END), 0) FROM suggestions`).
		Scan(&st.Suggestions, &st.UnreadSuggestions)
	if err != nil {
		return st, err
	}

	return st, nil
}
