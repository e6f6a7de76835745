package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/track"
)

// PhraseHandler handles HTTP requests for the gesture-to-phrase mapping.
type PhraseHandler struct {
	store *store.Store
}

// NewPhraseHandler creates a new PhraseHandler with the given store.
func NewPhraseHandler(s *store.Store) *PhraseHandler {
	return &PhraseHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *PhraseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/phrases or /api/phrases/{gesture}
	path := strings.TrimPrefix(r.URL.Path, "/api/phrases")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	gesture := track.GestureID(path)
	if !gesture.Valid() {
		writeError(w, http.StatusNotFound, "Unknown gesture")
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.update(w, r, gesture)
	case http.MethodDelete:
		h.reset(w, r, gesture)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type phraseResponse struct {
	Gesture    string `json:"gesture"`
	Phrase     string `json:"phrase"`
	Overridden bool   `json:"overridden"`
}

type listPhrasesResponse struct {
	Phrases []phraseResponse `json:"phrases"`
}

type updatePhraseRequest struct {
	Phrase string `json:"phrase"`
}

// list handles GET /api/phrases and returns the effective phrase for every
// gesture, with overrides applied on top of the built-in defaults.
func (h *PhraseHandler) list(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.store.Phrases().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list phrases")
		return
	}

	overrideMap := make(map[string]string, len(overrides))
	for _, o := range overrides {
		overrideMap[o.Gesture] = o.Phrase
	}

	response := listPhrasesResponse{}
	for _, g := range track.AllGestures() {
		p := phraseResponse{
			Gesture: string(g),
			Phrase:  track.Phrase(g),
		}
		if custom, ok := overrideMap[string(g)]; ok {
			p.Phrase = custom
			p.Overridden = true
		}
		response.Phrases = append(response.Phrases, p)
	}

	writeJSON(w, http.StatusOK, response)
}

// update handles PUT /api/phrases/{gesture} and stores a custom phrase.
func (h *PhraseHandler) update(w http.ResponseWriter, r *http.Request, gesture track.GestureID) {
	var req updatePhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Phrase) == "" {
		writeError(w, http.StatusBadRequest, "Phrase is required")
		return
	}

	if err := h.store.Phrases().Set(string(gesture), req.Phrase); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update phrase")
		return
	}

	writeJSON(w, http.StatusOK, phraseResponse{
		Gesture:    string(gesture),
		Phrase:     req.Phrase,
		Overridden: true,
	})
}

// reset handles DELETE /api/phrases/{gesture} and restores the built-in phrase.
func (h *PhraseHandler) reset(w http.ResponseWriter, r *http.Request, gesture track.GestureID) {
	err := h.store.Phrases().Delete(string(gesture))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to reset phrase")
		return
	}

	writeJSON(w, http.StatusOK, phraseResponse{
		Gesture: string(gesture),
		Phrase:  track.Phrase(gesture),
	})
}
