package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/sfx-library/internal/apperr"
	"github.com/rcliao/sfx-library/internal/model"
)

const suggestionColumns = `id, sound_name, category, description, submitted_at, is_read`

// CreateSuggestion stores a new, unread suggestion.
func (s *SQLiteStore) CreateSuggestion(ctx context.Context, in model.SuggestionInput) (*model.Suggestion, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sg := model.Suggestion{
		ID:          s.newSuggestionID(),
		SoundName:   strings.TrimSpace(in.SoundName),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		SubmittedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO suggestions (`+suggestionColumns+`) VALUES (?, ?, ?, ?, ?, 0)`,
		sg.ID, sg.SoundName, sg.Category, sg.Description, sg.SubmittedAt.Format(timeFormat))
	if err != nil {
		return nil, fmt.Errorf("insert suggestion: %w", err)
	}
	return &sg, nil
}

// GetSuggestion returns a suggestion by ID.
func (s *SQLiteStore) GetSuggestion(ctx context.Context, id string) (*model.Suggestion, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions WHERE id = ?`, id)
	sg, err := scanSuggestion(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("suggestion not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	return &sg, nil
}

// ListSuggestions returns unread suggestions first, each group newest first.
func (s *SQLiteStore) ListSuggestions(ctx context.Context) ([]model.Suggestion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+suggestionColumns+` FROM suggestions
		 ORDER BY is_read ASC, submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Suggestion{}
	for rows.Next() {
		sg, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sg)
	}
	return out, rows.Err()
}

// MarkSuggestionRead sets the read flag.
func (s *SQLiteStore) MarkSuggestionRead(ctx context.Context, id string, read bool) (*model.Suggestion, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE suggestions SET is_read = ? WHERE id = ?`, read, id)
	if err != nil {
		return nil, fmt.Errorf("update suggestion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.NotFound("suggestion not found: %s", id)
	}
	return s.GetSuggestion(ctx, id)
}

// DeleteSuggestion removes a suggestion.
func (s *SQLiteStore) DeleteSuggestion(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM suggestions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete suggestion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("suggestion not found: %s", id)
	}
	return nil
}

func scanSuggestion(row scanner) (model.Suggestion, error) {
	var sg model.Suggestion
	var submittedAt string
	err := row.Scan(&sg.ID, &sg.SoundName, &sg.Category, &sg.Description, &submittedAt, &sg.IsRead)
	if err != nil {
		return sg, err
	}
	if sg.SubmittedAt, err = time.Parse(timeFormat, submittedAt); err != nil {
		return sg, fmt.Errorf("suggestion %s: parse submitted_at: %w", sg.ID, err)
	}
	return sg, nil
}
