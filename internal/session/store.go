// Package session tracks per-document read sessions over immutable
// chunk lists.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/readaloud/internal/chunk"
	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrIndexOutOfRange = errors.New("chunk index out of range")
	ErrNoContent       = errors.New("session has no content")
	ErrNoChunks        = errors.New("cannot create session without chunks")
)

// Session pairs an immutable chunk list with a mutable read cursor. The
// chunk slice is never modified after creation; only currentIndex and
// lastAccessed change, under the session's own lock.
type Session struct {
	mu           sync.Mutex
	id           string
	chunks       []chunk.Chunk
	currentIndex int
	lastAccessed time.Time
}

// Status is a consistent snapshot of a session's read position.
type Status struct {
	CurrentIndex int `json:"current_index"`
	TotalChunks  int `json:"total_chunks"`
	CurrentPage  int `json:"current_page"`
}

// Store is a thread-safe in-memory session registry with TTL eviction.
// The store lock guards only the map; cursor updates take the session's
// lock, so operations on different sessions never serialize against
// each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create inserts a new session over the given chunks and returns its id.
// Empty chunk lists are rejected; the store never contains a session
// without content.
func (s *Store) Create(chunks []chunk.Chunk) (string, error) {
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}
	sess := &Session{
		id:           uuid.NewString(),
		chunks:       chunks,
		lastAccessed: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess.id, nil
}

func (s *Store) get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// ReadChunk moves the session cursor to index and returns that chunk.
// The cursor and timestamp update commit together before returning, so
// a caller cancelling downstream work cannot leave the session in a
// half-updated state.
func (s *Store) ReadChunk(id string, index int) (chunk.Chunk, error) {
	sess := s.get(id)
	if sess == nil {
		return chunk.Chunk{}, ErrNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if index < 0 || index >= len(sess.chunks) {
		return chunk.Chunk{}, fmt.Errorf("%w: index %d, total %d", ErrIndexOutOfRange, index, len(sess.chunks))
	}
	sess.currentIndex = index
	sess.lastAccessed = time.Now()
	return sess.chunks[index], nil
}

// Status reports the session's current read position.
func (s *Store) Status(id string) (Status, error) {
	sess := s.get(id)
	if sess == nil {
		return Status{}, ErrNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	// Creation rejects empty chunk lists, but check anyway.
	if len(sess.chunks) == 0 {
		return Status{}, ErrNoContent
	}
	return Status{
		CurrentIndex: sess.currentIndex,
		TotalChunks:  len(sess.chunks),
		CurrentPage:  sess.chunks[sess.currentIndex].PageNumber,
	}, nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup evicts sessions idle longer than the TTL and returns how many
// were removed.
func (s *Store) Cleanup() int {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastAccessed.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
