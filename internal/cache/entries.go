package cache

import "sync"

// syncMap is a mutex-guarded entry map. Entries are read far more often than
// written, so reads take the shared lock.
type syncMap struct {
	mu sync.RWMutex
	m  map[string]entry
}

func (s *syncMap) load(key string) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.m[key]
	return e, ok
}

func (s *syncMap) store(key string, e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]entry)
	}
	s.m[key] = e
}

func (s *syncMap) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = nil
}

func (s *syncMap) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
