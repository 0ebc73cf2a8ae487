package objcache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the cache calls them on
// hot paths. Wrap with hooks/async to offload expensive consumers.
type Hooks interface {
	// A read was served from the resident payload cache (no sink call).
	CacheHit(key string)

	// A read had to fall through to the sink (never written, evicted, or
	// dropped by the payload store).
	CacheMiss(key string)

	// The least-recently-used entry was dropped on capacity overflow.
	// Eviction is local: the sink object and the existence index are intact.
	Evicted(key string)

	// The payload store returned ok=false or an error on Set
	// (backpressure/admission). The key stays non-resident.
	PayloadRejected(key string)

	// The existence index failed an operation (possible with remote indexes).
	IndexError(op, key string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) CacheHit(string)                  {}
func (NopHooks) CacheMiss(string)                 {}
func (NopHooks) Evicted(string)                   {}
func (NopHooks) PayloadRejected(string)           {}
func (NopHooks) IndexError(string, string, error) {}
