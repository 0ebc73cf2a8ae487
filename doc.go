// Package objcache implements a key/value object-storage abstraction with a
// bounded, read-through/write-through cache layered in front of a pluggable
// byte-object sink.
//
// Components:
//   - Key: semantic identifier rendered to a hierarchical `/`-delimited name.
//   - codec.Codec[V]: (de)serializes V <-> []byte and names the content type.
//   - sink.Sink: authoritative byte store (memory, S3, Redis). All sinks
//     produce identical delimiter-rollup listings for the same key universe.
//   - Cache: sink decorator holding a bounded recency-ordered payload cache
//     and an existence index. Writes go through to the sink first; reads are
//     served locally when resident and healed from the sink otherwise.
//
// Typed operations are generic functions over any sink.Sink, so they work
// identically against a bare sink and against a Cache:
//
//	users := objcache.With[User](objcache.StringKey("users/1"), codec.JSON[User]{})
//	if err := objcache.PutObject(ctx, cache, users, u); err != nil { ... }
//	u, ok, err := objcache.GetObject(ctx, cache, users)
//
// The sink is the single source of truth. The cache is a performance
// accelerant: any entry missing locally can always be rehydrated from the
// sink, and nothing the cache does (including eviction) mutates the sink
// beyond explicit writes.
package objcache
