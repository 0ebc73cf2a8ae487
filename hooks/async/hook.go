// Package asynchook decouples hook consumers from the cache hot path: events
// are queued to worker goroutines and dropped when the queue is full, so a
// slow consumer can never block a cache operation.
//
//	raw := myMetricsHooks{}
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := objcache.New(objcache.Options{Sink: s, Hooks: hooks})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/objcache"
)

type Hooks struct {
	inner objcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ objcache.Hooks = (*Hooks)(nil)

func New(inner objcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events arriving after Close
// panic (send on closed channel); stop the cache first.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheHit(k string)        { h.try(func() { h.inner.CacheHit(k) }) }
func (h *Hooks) CacheMiss(k string)       { h.try(func() { h.inner.CacheMiss(k) }) }
func (h *Hooks) Evicted(k string)         { h.try(func() { h.inner.Evicted(k) }) }
func (h *Hooks) PayloadRejected(k string) { h.try(func() { h.inner.PayloadRejected(k) }) }
func (h *Hooks) IndexError(op, k string, err error) {
	h.try(func() { h.inner.IndexError(op, k, err) })
}
