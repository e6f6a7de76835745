package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestTranscript_AppendAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Transcript()

	entry := &TranscriptEntry{
		ID:         uuid.New().String(),
		Gesture:    "hello",
		Phrase:     "Hello!",
		LockedAtMs: 1200,
	}
	if err := repo.Append(entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.GetByID(entry.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Gesture != "hello" || got.Phrase != "Hello!" || got.LockedAtMs != 1200 {
		t.Errorf("got %+v, want gesture=hello phrase=Hello! locked_at=1200", got)
	}
}

func TestTranscript_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Transcript().GetByID("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing = %v, want ErrNotFound", err)
	}
}

func TestTranscript_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	repo := s.Transcript()

	for i := 0; i < 5; i++ {
		err := repo.Append(&TranscriptEntry{
			ID:         uuid.New().String(),
			Gesture:    "yes",
			Phrase:     "Yes",
			LockedAtMs: int64(i) * 1000,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].LockedAtMs > entries[i-1].LockedAtMs {
			t.Fatal("entries should be ordered newest first")
		}
	}
}

func TestTranscript_ListLimit(t *testing.T) {
	s := newTestStore(t)
	repo := s.Transcript()

	for i := 0; i < 10; i++ {
		err := repo.Append(&TranscriptEntry{
			ID:         uuid.New().String(),
			Gesture:    "no",
			Phrase:     "No",
			LockedAtMs: int64(i) * 100,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.List(3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
	if len(entries) > 0 && entries[0].LockedAtMs != 900 {
		t.Errorf("first entry locked at %d, want 900 (newest)", entries[0].LockedAtMs)
	}
}

func TestTranscript_Clear(t *testing.T) {
	s := newTestStore(t)
	repo := s.Transcript()

	for i := 0; i < 4; i++ {
		err := repo.Append(&TranscriptEntry{
			ID:         fmt.Sprintf("entry-%d", i),
			Gesture:    "water",
			Phrase:     "I need water",
			LockedAtMs: int64(i),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	removed, err := repo.Clear()
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 4 {
		t.Errorf("cleared %d entries, want 4", removed)
	}

	entries, err := repo.List(0)
	if err != nil {
		t.Fatalf("list after clear: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("transcript should be empty after clear, got %d entries", len(entries))
	}
}

func TestTranscript_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Transcript()

	entry := &TranscriptEntry{
		ID:         uuid.New().String(),
		Gesture:    "stop",
		Phrase:     "Stop",
		LockedAtMs: 42,
	}
	if err := repo.Append(entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := repo.Delete(entry.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
