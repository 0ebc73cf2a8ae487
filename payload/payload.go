// Package payload defines where the cache keeps resident payload bytes.
//
// The cache owns all bookkeeping itself (recency order, capacity, existence
// index); a Store only holds bytes for currently-resident keys. That split
// lets admission-controlled or time-windowed engines serve as residence:
// a Store is allowed to reject a Set or silently drop an entry, because the
// cache read path always falls back to the authoritative sink on a payload
// miss.
//
// Stores MUST be byte-for-byte transparent: Get must return exactly the
// []byte previously passed to Set for a key.
package payload

// Store is a minimal local byte store. All operations are synchronous and
// in-process; no call may block on I/O.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	Get(key string) ([]byte, bool, error)

	// Set stores value. Returns ok=false when the store rejected the write
	// under pressure (admission policy, size limits).
	Set(key string, value []byte) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(key string) error

	// Close releases resources.
	Close() error
}

// Map is the default in-heap store: a plain map that accepts every write.
type Map struct {
	m map[string][]byte
}

var _ Store = (*Map)(nil)

func NewMap() *Map { return &Map{m: make(map[string][]byte)} }

func (p *Map) Get(key string) ([]byte, bool, error) {
	v, ok := p.m[key]
	return v, ok, nil
}

func (p *Map) Set(key string, value []byte) (bool, error) {
	p.m[key] = value
	return true, nil
}

func (p *Map) Del(key string) error {
	delete(p.m, key)
	return nil
}

func (p *Map) Close() error { return nil }

// Len returns the number of resident payloads.
func (p *Map) Len() int { return len(p.m) }
