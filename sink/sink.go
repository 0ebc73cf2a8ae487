// Package sink defines the byte-level backend contract used by objcache.
//
// A Sink is the authoritative store for objects: a flat namespace of
// `/`-delimited key names mapping to byte payloads with an advisory content
// type. Implementations MUST be byte-for-byte transparent: GetBytes must
// return exactly the []byte previously passed to PutBytes for a key (no
// prepended/appended metadata, no re-encoding, no mutation).
//
// Listing is delimiter-aware everywhere: every implementation must produce
// the same one-level rollup for the same key universe, so switching sinks is
// observably transparent to listing clients. Remote stores with native
// prefix/delimiter queries (S3) do the rollup server-side; local stores
// emulate it with Rollup.
package sink

import (
	"context"
	"sort"
)

// ListKeys is the result of a delimiter-aware listing: a set of object names
// and one-level "directory" rollups (names ending in the delimiter).
// Duplicate rollups from multiple objects collapse to one entry.
type ListKeys map[string]struct{}

// Has reports whether name is part of the listing.
func (l ListKeys) Has(name string) bool {
	_, ok := l[name]
	return ok
}

// Sorted returns the listing as a sorted slice, for stable output.
func (l ListKeys) Sorted() []string {
	out := make([]string, 0, len(l))
	for name := range l {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Sink is the uniform backend contract. All calls take a context because
// remote implementations suspend on network I/O; local implementations are
// synchronous logic behind the same signatures.
//
// Absence is never an error: Exists returns (false, nil) and GetBytes
// returns (nil, false, nil) for a name that was never written. Errors are
// reserved for genuine transport or protocol failures.
type Sink interface {
	// Exists reports whether an object with that name currently exists.
	Exists(ctx context.Context, key string) (bool, error)

	// PutBytes unconditionally overwrites the object at key, creating it if
	// absent. contentType is advisory and may be ignored by stores that
	// cannot persist it.
	PutBytes(ctx context.Context, key, contentType string, value []byte) error

	// GetBytes returns (payload, true, nil) when the object exists and
	// (nil, false, nil) when it does not.
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)

	// List returns the one-level delimiter rollup of all names under prefix.
	List(ctx context.Context, prefix string) (ListKeys, error)
}
