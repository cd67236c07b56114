package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dgallion1/readaloud/internal/tts"
)

// handleSynthesize synthesizes arbitrary text to speech.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req tts.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Empty text is a schema-level rejection, not a synthesis failure.
	if strings.TrimSpace(req.Text) == "" {
		jsonError(w, "text cannot be empty", http.StatusUnprocessableEntity)
		return
	}

	if req.Voice == "" {
		req.Voice = s.cfg.DefaultVoice
	}
	if req.Rate == "" {
		req.Rate = s.cfg.DefaultRate
	}
	if req.Volume == "" {
		req.Volume = s.cfg.DefaultVolume
	}

	audio, err := s.synth.Synthesize(r.Context(), req)
	switch {
	case errors.Is(err, tts.ErrEmptyText):
		jsonError(w, "text cannot be empty", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, tts.ErrInvalidParameter):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.log.Error("synthesis failed", "error", err)
		jsonError(w, "error generating audio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}
