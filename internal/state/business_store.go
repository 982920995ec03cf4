package state

import (
	"sync"

	"locker-rental/internal/data/entity"
)

// BusinessStore keeps explicit-search results and ambient nearby
// results as two independent lists so consumers can tell them apart and
// fall back from one to the other.
type BusinessStore struct {
	mu       sync.Mutex
	search   Async[[]entity.Business]
	nearby   Async[[]entity.Business]
	selected Async[*entity.Business]
}

func NewBusinessStore() *BusinessStore {
	return &BusinessStore{}
}

func (s *BusinessStore) StartSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = s.search.Start()
}

func (s *BusinessStore) SearchSucceeded(results []entity.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = s.search.Succeed(results)
}

func (s *BusinessStore) SearchFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = s.search.Fail(msg)
}

func (s *BusinessStore) StartNearby() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = s.nearby.Start()
}

func (s *BusinessStore) NearbySucceeded(results []entity.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = s.nearby.Succeed(results)
}

func (s *BusinessStore) NearbyFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nearby = s.nearby.Fail(msg)
}

func (s *BusinessStore) StartDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected.Start()
}

func (s *BusinessStore) DetailSucceeded(b *entity.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected.Succeed(b)
}

func (s *BusinessStore) DetailFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected.Fail(msg)
}

func (s *BusinessStore) Search() Async[[]entity.Business] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

func (s *BusinessStore) Nearby() Async[[]entity.Business] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nearby
}

func (s *BusinessStore) Selected() Async[*entity.Business] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// DisplayResults is the home-screen list: ambient nearby results when
// present, otherwise the latest explicit search.
func (s *BusinessStore) DisplayResults() []entity.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.nearby.Data) > 0 {
		return s.nearby.Data
	}
	return s.search.Data
}
