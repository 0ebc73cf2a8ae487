// Package index abstracts where the cache's existence index lives.
//
// The index records key names that have been observed written at least once.
// It is unbounded and deliberately decoupled from payload eviction: a name
// staying in the index after its payload was evicted is expected, because
// membership means "ever observed", not "currently resident". The cache read
// path never assumes index membership implies residency.
//
// Use Local (default) for in-process indexes, or the redis subpackage to
// share observations across replicas.
package index

import (
	"context"
	"sync"
)

type Index interface {
	// Contains reports whether name has been observed.
	Contains(ctx context.Context, name string) (bool, error)

	// Add records name as observed. Adding an existing name is a no-op.
	Add(ctx context.Context, name string) error

	// Close releases resources (no-op ok).
	Close(context.Context) error
}

// Local keeps the index in-process.
type Local struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

var _ Index = (*Local)(nil)

func NewLocal() *Local {
	return &Local{names: make(map[string]struct{})}
}

func (l *Local) Contains(_ context.Context, name string) (bool, error) {
	l.mu.RLock()
	_, ok := l.names[name]
	l.mu.RUnlock()
	return ok, nil
}

func (l *Local) Add(_ context.Context, name string) error {
	l.mu.Lock()
	l.names[name] = struct{}{}
	l.mu.Unlock()
	return nil
}

func (l *Local) Close(context.Context) error { return nil }

// Len returns the number of observed names.
func (l *Local) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.names)
}
