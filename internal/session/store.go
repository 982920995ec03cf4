// Package session persists the bearer credential between runs. It is
// the only durable shared resource in the client: every API call reads
// the token before the request, and a 401 handler may clear it
// concurrently from another in-flight request, so readers must tolerate
// its absence.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"locker-rental/internal/data/entity"

	"go.uber.org/zap"
)

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      entity.User `json:"user"`
	SavedAt   time.Time   `json:"savedAt"`
}

// Store is a file-backed session store. The zero token means
// "unauthenticated"; no operation fails just because no session exists.
type Store struct {
	mu          sync.Mutex
	path        string
	current     *Session
	loaded      bool
	subscribers []func()
	log         *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With(zap.String("store", "session")),
	}
}

// Subscribe registers a callback fired whenever the session is cleared,
// so consumers can route to the unauthenticated flow without polling.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Token returns the persisted bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.loadLocked()
	if sess == nil {
		return ""
	}
	return sess.Token
}

// Current returns the cached session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.loadLocked()
	if sess == nil {
		return nil
	}
	cp := *sess
	return &cp
}

// Save persists the session to disk.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.SavedAt = time.Now()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(&sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err), zap.String("path", s.path))
		return err
	}

	s.current = &sess
	s.loaded = true
	return nil
}

// Clear removes the persisted token and cached user record, then fires
// the invalidation subscribers. Clearing an already-empty store is a
// no-op and does not notify.
func (s *Store) Clear() {
	s.mu.Lock()
	had := s.loadLocked() != nil
	s.current = nil
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("Failed to remove session file", zap.Error(err), zap.String("path", s.path))
	}
	subs := append([]func(){}, s.subscribers...)
	s.mu.Unlock()

	if !had {
		return
	}
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) loadLocked() *Session {
	if s.loaded {
		return s.current
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("Failed to read session file", zap.Error(err), zap.String("path", s.path))
		}
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn("Corrupt session file, discarding", zap.Error(err), zap.String("path", s.path))
		return nil
	}
	if sess.Token == "" {
		return nil
	}
	s.current = &sess
	return s.current
}
