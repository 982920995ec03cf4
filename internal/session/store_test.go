package session

import (
	"path/filepath"
	"testing"
	"time"

	"locker-rental/internal/data/entity"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if tok := s.Token(); tok != "" {
		t.Fatalf("fresh store should be unauthenticated, got token %q", tok)
	}

	sess := Session{
		Token:     "tok-123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		User:      entity.User{Base: entity.Base{ID: "u1"}, Name: "Alice", Email: "alice@example.com"},
	}
	if err := s.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok := s.Token(); tok != "tok-123" {
		t.Fatalf("expected saved token, got %q", tok)
	}

	// A second store over the same file sees the persisted session.
	reopened := NewStore(s.path, zap.NewNop())
	cur := reopened.Current()
	if cur == nil || cur.User.Email != "alice@example.com" {
		t.Fatalf("expected persisted session, got %+v", cur)
	}
}

func TestClearNotifiesSubscribers(t *testing.T) {
	s := newTestStore(t)

	fired := 0
	s.Subscribe(func() { fired++ })

	// Clearing an empty store is a no-op.
	s.Clear()
	if fired != 0 {
		t.Fatalf("clear of empty store should not notify, fired %d", fired)
	}

	if err := s.Save(Session{Token: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Clear()
	if fired != 1 {
		t.Fatalf("expected one invalidation event, got %d", fired)
	}
	if s.Token() != "" {
		t.Fatal("token should be gone after clear")
	}
	if s.Current() != nil {
		t.Fatal("cached user should be gone after clear")
	}
}
