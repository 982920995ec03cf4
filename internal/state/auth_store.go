package state

import (
	"sync"

	"locker-rental/internal/data/entity"
)

// AuthStore tracks the one authenticated user the client holds at a
// time.
type AuthStore struct {
	mu   sync.Mutex
	user Async[*entity.User]
}

func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

func (s *AuthStore) StartAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = s.user.Start()
}

func (s *AuthStore) AuthSucceeded(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = s.user.Succeed(user)
}

func (s *AuthStore) AuthFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = s.user.Fail(msg)
}

// SessionCleared drops the cached user; wired to the session store's
// invalidation event so a 401 anywhere routes the UI to the
// unauthenticated flow.
func (s *AuthStore) SessionCleared() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = Async[*entity.User]{}
}

func (s *AuthStore) User() Async[*entity.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
