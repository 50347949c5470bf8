package ranking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	_ "modernc.org/sqlite"
)

// ErrClosed is returned when the store is used after Close
var ErrClosed = errors.New("score store is closed")

const schema = `CREATE TABLE IF NOT EXISTS scores (
	id        TEXT PRIMARY KEY,
	player    TEXT NOT NULL,
	score     INTEGER NOT NULL,
	lines     INTEGER NOT NULL,
	pieces    INTEGER NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS scores_by_score ON scores (score DESC, played_at ASC);`

// Store keeps finished games in a SQLite file
type Store struct {
	db *sql.DB
}

// Open opens or creates the score database at path
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open score database %s: %w", path, err)
	}
	// sqlite allows one writer, keep a single connection
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create score table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Insert stores the entry, filling in a missing ID or timestamp
func (s *Store) Insert(ctx context.Context, entry Entry) (Entry, error) {
	if s.db == nil {
		return entry, ErrClosed
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.PlayedAt.IsZero() {
		entry.PlayedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (id, player, score, lines, pieces, played_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Player, entry.Score, entry.Lines, entry.Pieces, entry.PlayedAt.UnixNano())
	if err != nil {
		return entry, fmt.Errorf("failed to save score: %w", err)
	}
	return entry, nil
}

// Top returns the n best entries, highest score first, older first on ties
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, player, score, lines, pieces, played_at FROM scores ORDER BY score DESC, played_at ASC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var entry Entry
		var playedAt int64
		if err := rows.Scan(&entry.ID, &entry.Player, &entry.Score, &entry.Lines, &entry.Pieces, &playedAt); err != nil {
			return nil, fmt.Errorf("failed to read scores: %w", err)
		}
		entry.PlayedAt = time.Unix(0, playedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return entries, nil
}

// Ranking loads the best size entries into a ranking
func (s *Store) Ranking(ctx context.Context, size int) (*Ranking, error) {
	entries, err := s.Top(ctx, size)
	if err != nil {
		return nil, err
	}
	return FromEntries(entries, size), nil
}

// FromEntries ranks entries in any order
func FromEntries(entries []Entry, size int) *Ranking {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b Entry) bool {
		return a.PlayedAt.Before(b.PlayedAt)
	})

	ranking := NewRanking(size)
	for _, entry := range sorted {
		ranking.InsertScore(entry)
	}
	return ranking
}
