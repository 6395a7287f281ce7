package scheduling

import "sync"

// scheduleLocks serializes the read-annotate-write sequence per conflict
// scope key. Without it, two concurrent bookings for overlapping times can
// both read the active set before either writes and both land with a clear
// conflict flag.
type scheduleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newScheduleLocks() *scheduleLocks {
	return &scheduleLocks{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a given key, creating one if it doesn't exist.
func (s *scheduleLocks) get(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
