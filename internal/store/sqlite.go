package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/sfx-library/internal/apperr"
	"github.com/rcliao/sfx-library/internal/model"
	"github.com/rcliao/sfx-library/internal/tags"
)

// Fixed-width so stored timestamps sort lexicographically.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newSuggestionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sounds (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		audio_url   TEXT NOT NULL,
		tags        TEXT,
		equipment   TEXT,
		format      TEXT,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sounds_created ON sounds(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sounds_audio_url ON sounds(audio_url);

	CREATE TABLE IF NOT EXISTS suggestions (
		id           TEXT PRIMARY KEY,
		sound_name   TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		submitted_at TEXT NOT NULL,
		is_read      INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_suggestions_order ON suggestions(is_read, submitted_at DESC);

	CREATE TABLE IF NOT EXISTS prefs (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateSound validates and stores a new sound.
func (s *SQLiteStore) CreateSound(ctx context.Context, in model.SoundInput) (*model.Sound, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	snd := model.Sound{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(in.Title),
		AudioURL:  strings.TrimSpace(in.AudioURL),
		Tags:      tags.NormalizeAll(in.Tags),
		Equipment: model.StringPtr(strings.TrimSpace(in.Equipment)),
		Format:    model.StringPtr(strings.TrimSpace(in.Format)),
		CreatedAt: time.Now().UTC(),
	}

	tagsJSON, err := json.Marshal(snd.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sounds (id, title, audio_url, tags, equipment, format, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snd.ID, snd.Title, snd.AudioURL, string(tagsJSON), snd.Equipment, snd.Format,
		snd.CreatedAt.Format(timeFormat))
	if err != nil {
		return nil, fmt.Errorf("insert sound: %w", err)
	}
	return &snd, nil
}

// GetSound returns a sound by ID.
func (s *SQLiteStore) GetSound(ctx context.Context, id string) (*model.Sound, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, audio_url, tags, equipment, format, created_at
		 FROM sounds WHERE id = ?`, id)
	snd, err := scanSound(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("sound not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get sound: %w", err)
	}
	return &snd, nil
}

// UpdateSound applies a partial edit. Title and audio URL may not become empty.
func (s *SQLiteStore) UpdateSound(ctx context.Context, id string, u model.SoundUpdate) (*model.Sound, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT id, title, audio_url, tags, equipment, format, created_at
		 FROM sounds WHERE id = ?`, id)
	snd, err := scanSound(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("sound not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get sound: %w", err)
	}

	if u.Title != nil {
		snd.Title = strings.TrimSpace(*u.Title)
	}
	if u.AudioURL != nil {
		snd.AudioURL = strings.TrimSpace(*u.AudioURL)
	}
	if u.SetTags {
		snd.Tags = tags.NormalizeAll(u.Tags)
	}
	if u.Equipment != nil {
		snd.Equipment = model.StringPtr(strings.TrimSpace(*u.Equipment))
	}
	if u.Format != nil {
		snd.Format = model.StringPtr(strings.TrimSpace(*u.Format))
	}

	in := model.SoundInput{Title: snd.Title, AudioURL: snd.AudioURL, Tags: snd.Tags}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tagsJSON, err := json.Marshal(snd.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE sounds SET title = ?, audio_url = ?, tags = ?, equipment = ?, format = ?
		 WHERE id = ?`,
		snd.Title, snd.AudioURL, string(tagsJSON), snd.Equipment, snd.Format, id)
	if err != nil {
		return nil, fmt.Errorf("update sound: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &snd, nil
}

// DeleteSound removes a sound.
func (s *SQLiteStore) DeleteSound(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sounds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sound: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("sound not found: %s", id)
	}
	return nil
}

// ListSounds returns all sounds, newest first.
func (s *SQLiteStore) ListSounds(ctx context.Context) ([]model.Sound, error) {
	return s.querySounds(ctx,
		`SELECT id, title, audio_url, tags, equipment, format, created_at
		 FROM sounds ORDER BY created_at DESC, rowid DESC`)
}

func (s *SQLiteStore) querySounds(ctx context.Context, query string, args ...interface{}) ([]model.Sound, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sounds := []model.Sound{}
	for rows.Next() {
		snd, err := scanSound(rows)
		if err != nil {
			return nil, err
		}
		sounds = append(sounds, snd)
	}
	return sounds, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSound(row scanner) (model.Sound, error) {
	var snd model.Sound
	var tagsJSON, equipment, format sql.NullString
	var createdAt string

	err := row.Scan(&snd.ID, &snd.Title, &snd.AudioURL, &tagsJSON, &equipment, &format, &createdAt)
	if err != nil {
		return snd, err
	}

	if snd.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return snd, fmt.Errorf("sound %s: parse created_at: %w", snd.ID, err)
	}
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &snd.Tags); err != nil {
			return snd, fmt.Errorf("sound %s: decode tags: %w", snd.ID, err)
		}
	}
	if snd.Tags == nil {
		snd.Tags = []string{}
	}
	if equipment.Valid {
		snd.Equipment = &equipment.String
	}
	if format.Valid {
		snd.Format = &format.String
	}
	return snd, nil
}
