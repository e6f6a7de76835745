package store

import (
	"database/sql"
	"errors"
	"time"
)

// PhraseOverride maps a gesture to custom spoken text, replacing the
// built-in phrase for that gesture.
type PhraseOverride struct {
	Gesture   string
	Phrase    string
	UpdatedAt time.Time
}

// PhraseRepository provides operations on phrase overrides.
type PhraseRepository struct {
	db *sql.DB
}

// Phrases returns the phrase override repository for this store.
func (s *Store) Phrases() *PhraseRepository {
	return &PhraseRepository{db: s.db}
}

// Set stores an override for a gesture, replacing any existing one.
func (r *PhraseRepository) Set(gesture, phrase string) error {
	_, err := r.db.Exec(
		`INSERT INTO phrase_overrides (gesture, phrase, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(gesture) DO UPDATE SET phrase = excluded.phrase, updated_at = excluded.updated_at`,
		gesture, phrase, time.Now(),
	)
	return err
}

// Get retrieves the override for a gesture.
func (r *PhraseRepository) Get(gesture string) (*PhraseOverride, error) {
	o := &PhraseOverride{}

	err := r.db.QueryRow(
		`SELECT gesture, phrase, updated_at FROM phrase_overrides WHERE gesture = ?`,
		gesture,
	).Scan(&o.Gesture, &o.Phrase, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

// List retrieves all phrase overrides.
func (r *PhraseRepository) List() ([]*PhraseOverride, error) {
	rows, err := r.db.Query(
		`SELECT gesture, phrase, updated_at FROM phrase_overrides ORDER BY gesture`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []*PhraseOverride
	for rows.Next() {
		o := &PhraseOverride{}

		if err := rows.Scan(&o.Gesture, &o.Phrase, &o.UpdatedAt); err != nil {
			return nil, err
		}

		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overrides, nil
}

// Delete removes the override for a gesture, restoring the built-in phrase.
func (r *PhraseRepository) Delete(gesture string) error {
	result, err := r.db.Exec(`DELETE FROM phrase_overrides WHERE gesture = ?`, gesture)
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
