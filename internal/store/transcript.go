package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// TranscriptEntry represents one locked gesture in the conversation history.
type TranscriptEntry struct {
	ID         string
	Gesture    string
	Phrase     string
	LockedAtMs int64
	CreatedAt  time.Time
}

// TranscriptRepository provides operations on the conversation transcript.
type TranscriptRepository struct {
	db *sql.DB
}

// Transcript returns the transcript repository for this store.
func (s *Store) Transcript() *TranscriptRepository {
	return &TranscriptRepository{db: s.db}
}

// Append inserts a new entry at the end of the transcript.
func (r *TranscriptRepository) Append(e *TranscriptEntry) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO transcript (id, gesture, phrase, locked_at_ms, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Gesture, e.Phrase, e.LockedAtMs, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a transcript entry by its ID.
func (r *TranscriptRepository) GetByID(id string) (*TranscriptEntry, error) {
	e := &TranscriptEntry{}

	err := r.db.QueryRow(
		`SELECT id, gesture, phrase, locked_at_ms, created_at
		 FROM transcript WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Gesture, &e.Phrase, &e.LockedAtMs, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

// List retrieves transcript entries in lock order, newest first.
// A limit of 0 or less returns the full transcript.
func (r *TranscriptRepository) List(limit int) ([]*TranscriptEntry, error) {
	query := `SELECT id, gesture, phrase, locked_at_ms, created_at
		 FROM transcript ORDER BY locked_at_ms DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*TranscriptEntry
	for rows.Next() {
		e := &TranscriptEntry{}

		err := rows.Scan(&e.ID, &e.Gesture, &e.Phrase, &e.LockedAtMs, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Clear removes every entry from the transcript and returns the number of
// entries removed.
func (r *TranscriptRepository) Clear() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM transcript`)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// Delete removes a single transcript entry by its ID.
func (r *TranscriptRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM transcript WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
