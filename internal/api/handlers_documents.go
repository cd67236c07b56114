package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/readaloud/internal/extract"
	"github.com/dgallion1/readaloud/internal/session"
	"github.com/dgallion1/readaloud/internal/tts"
	"github.com/go-chi/chi/v5"
)

// handleUpload accepts a document upload, chunks its text, and creates
// a read session over the chunks.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !extract.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		jsonError(w, "empty file", http.StatusBadRequest)
		return
	}

	chunks, err := s.processor.Process(bytes.NewReader(data), filename)
	if err != nil {
		var exErr *extract.ExtractionError
		if errors.As(err, &exErr) {
			s.log.Warn("extraction failed", "filename", filename, "page", exErr.Page, "error", err)
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("document processing failed", "filename", filename, "error", err)
		jsonError(w, "failed to process document", http.StatusInternalServerError)
		return
	}
	if len(chunks) == 0 {
		jsonError(w, "no extractable text found in document", http.StatusBadRequest)
		return
	}

	id, err := s.sessions.Create(chunks)
	if err != nil {
		jsonError(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	s.log.Info("session created", "session_id", id, "filename", filename, "chunks", len(chunks))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id":   id,
		"total_chunks": len(chunks),
	})
}

// handleReadChunk moves the session cursor and streams the chunk as
// synthesized audio. The cursor update commits before synthesis starts,
// so a client timeout mid-synthesis cannot corrupt the session.
func (s *Server) handleReadChunk(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	index, err := strconv.Atoi(chi.URLParam(r, "chunkIndex"))
	if err != nil {
		jsonError(w, "invalid chunk index", http.StatusBadRequest)
		return
	}

	c, err := s.sessions.ReadChunk(sessionID, index)
	switch {
	case errors.Is(err, session.ErrNotFound):
		jsonError(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, session.ErrIndexOutOfRange):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		jsonError(w, "failed to read chunk", http.StatusInternalServerError)
		return
	}

	req := tts.Request{
		Text:   c.Text,
		Voice:  s.cfg.DefaultVoice,
		Rate:   s.cfg.DefaultRate,
		Volume: s.cfg.DefaultVolume,
	}
	// Per-request voice overrides.
	q := r.URL.Query()
	if v := q.Get("voice"); v != "" {
		req.Voice = v
	}
	if v := q.Get("rate"); v != "" {
		req.Rate = v
	}
	if v := q.Get("volume"); v != "" {
		req.Volume = v
	}

	audio, err := s.synth.Synthesize(r.Context(), req)
	switch {
	case errors.Is(err, tts.ErrInvalidParameter):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.log.Error("synthesis failed", "session_id", sessionID, "chunk", index, "error", err)
		jsonError(w, "error generating audio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}

// handleStatus reports the session's current read position.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	st, err := s.sessions.Status(sessionID)
	switch {
	case errors.Is(err, session.ErrNotFound):
		jsonError(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, session.ErrNoContent):
		jsonError(w, "session has no content", http.StatusNotFound)
		return
	case err != nil:
		jsonError(w, "failed to read session status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(st)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
