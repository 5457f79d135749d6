package view

import "sync"

// Latest holds the most recent result of a sequence of overlapping requests.
// Each request takes a generation from Begin; Apply keeps a result only when
// its generation is newer than the last applied one, so a slow response can
// never overwrite a faster, newer one.
type Latest[T any] struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	value   T
}

// Begin starts a request and returns its generation
func (l *Latest[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// Apply stores v if gen is newer than the applied generation. It reports
// whether v was kept.
func (l *Latest[T]) Apply(gen uint64, v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen <= l.applied || gen > l.issued {
		return false
	}
	l.applied = gen
	l.value = v
	return true
}

// IsCurrent reports whether gen is the newest generation handed out
func (l *Latest[T]) IsCurrent(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.issued
}

// Snapshot returns the applied value and its generation; zero means nothing
// has been applied yet.
func (l *Latest[T]) Snapshot() (T, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.applied
}
