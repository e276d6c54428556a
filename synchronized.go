package probably

import "sync"

// Synchronized guards a Filter with a read/write mutex so that it can be
// shared between goroutines.
type Synchronized[K Key] struct {
	mu sync.RWMutex
	f  *Filter[K]
}

// NewSynchronized wraps f. f must not be used directly afterwards.
func NewSynchronized[K Key](f *Filter[K]) *Synchronized[K] {
	return &Synchronized[K]{f: f}
}

// Set marks item as present.
func (s *Synchronized[K]) Set(item K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Set(item)
}

// Check reports whether item may be present.
func (s *Synchronized[K]) Check(item K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.Check(item)
}

// CheckAndSet holds the write lock across the check and the set, so exactly
// one of several concurrent callers for the same new item sees false.
func (s *Synchronized[K]) CheckAndSet(item K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.CheckAndSet(item)
}

// Clear resets every bit of the wrapped Filter.
func (s *Synchronized[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Clear()
}

// Count returns the number of set bits.
func (s *Synchronized[K]) Count() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.Count()
}
