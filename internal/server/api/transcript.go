// Package api provides HTTP API handlers for the Mudra communicator.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// TranscriptHandler handles HTTP requests for the conversation transcript.
type TranscriptHandler struct {
	store *store.Store
}

// NewTranscriptHandler creates a new TranscriptHandler with the given store.
func NewTranscriptHandler(s *store.Store) *TranscriptHandler {
	return &TranscriptHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *TranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/transcript or /api/transcript/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/transcript")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type transcriptEntryResponse struct {
	ID         string `json:"id"`
	Gesture    string `json:"gesture"`
	Phrase     string `json:"phrase"`
	LockedAtMs int64  `json:"locked_at_ms"`
	CreatedAt  string `json:"created_at"`
}

type listTranscriptResponse struct {
	Entries []transcriptEntryResponse `json:"entries"`
}

type clearTranscriptResponse struct {
	Removed int64 `json:"removed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toEntryResponse(e *store.TranscriptEntry) transcriptEntryResponse {
	return transcriptEntryResponse{
		ID:         e.ID,
		Gesture:    e.Gesture,
		Phrase:     e.Phrase,
		LockedAtMs: e.LockedAtMs,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/transcript and returns entries newest first.
// An optional ?limit= query parameter caps the number of entries.
func (h *TranscriptHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.store.Transcript().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list transcript")
		return
	}

	response := listTranscriptResponse{
		Entries: make([]transcriptEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// clear handles DELETE /api/transcript and removes every entry.
func (h *TranscriptHandler) clear(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.Transcript().Clear()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear transcript")
		return
	}

	writeJSON(w, http.StatusOK, clearTranscriptResponse{Removed: removed})
}

// delete handles DELETE /api/transcript/{id} and removes a single entry.
func (h *TranscriptHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Transcript().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete transcript entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
