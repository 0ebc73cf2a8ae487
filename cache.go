package objcache

import (
	"container/list"
	"context"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/objcache/index"
	"github.com/unkn0wn-root/objcache/payload"
	"github.com/unkn0wn-root/objcache/sink"
)

// DefaultCapacity bounds the resident payload count when Options.Capacity
// is zero.
const DefaultCapacity = 1024

// Options tune the cache decorator. Only Sink is required; others have
// sensible defaults.
type Options struct {
	// Required. The authoritative backend being decorated.
	Sink sink.Sink

	// Capacity is the maximum number of resident payloads; the
	// least-recently-used entry is evicted on overflow. 0 => DefaultCapacity.
	Capacity int

	// Payload is where resident bytes live. nil => payload.NewMap().
	Payload payload.Store

	// Index is the existence index. nil => index.NewLocal().
	Index index.Index

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

// Cache decorates a sink with a bounded recency-ordered payload cache and an
// existence index.
//
// Policy: write-through (the sink is written first; local state reflects the
// write only after the sink confirms, so this process never serves data the
// sink rejected) and read-through (a payload miss falls back to the sink and
// repopulates, healing eviction and index staleness). The index is unbounded
// and records names ever observed; eviction drops payloads only and never
// touches the index or the sink.
//
// Cache implements sink.Sink, so the typed operations and nested decoration
// work unchanged on top of it.
//
// Cache provides no internal locking for its composite state. Callers must
// guarantee single-writer access per key or wrap the whole cache in their
// own mutex; uncoordinated concurrent writers get last-write-wins.
type Cache struct {
	sink  sink.Sink
	store payload.Store
	idx   index.Index

	capacity int
	order    *list.List               // front = most recently used; values are key names
	resident map[string]*list.Element // names with payload residence

	log   Logger
	hooks Hooks
}

var _ sink.Sink = (*Cache)(nil)

func New(opts Options) (*Cache, error) {
	if opts.Sink == nil {
		return nil, fmt.Errorf("objcache: sink is required")
	}
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("objcache: capacity must be >= 0, got %d", opts.Capacity)
	}

	c := &Cache{
		sink:     opts.Sink,
		store:    opts.Payload,
		idx:      opts.Index,
		capacity: coalesce(opts.Capacity, DefaultCapacity),
		order:    list.New(),
		resident: make(map[string]*list.Element),
		log:      opts.Logger,
		hooks:    opts.Hooks,
	}
	if c.store == nil {
		c.store = payload.NewMap()
	}
	if c.idx == nil {
		c.idx = index.NewLocal()
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}
	return c, nil
}

// Len returns the number of resident payloads.
func (c *Cache) Len() int { return len(c.resident) }

// Exists consults the existence index only; no sink call is made. Membership
// means the name was observed written at least once by this cache (or by a
// peer sharing a remote index), not that the payload is resident.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := c.idx.Contains(ctx, key)
	if err != nil {
		c.hooks.IndexError("contains", key, err)
		return false, err
	}
	return ok, nil
}

// PutBytes writes through: the sink first, local state only after the sink
// confirmed. A sink failure leaves payload, recency and index untouched.
func (c *Cache) PutBytes(ctx context.Context, key, contentType string, value []byte) error {
	if err := c.sink.PutBytes(ctx, key, contentType, value); err != nil {
		return err
	}
	c.admit(ctx, key, value)
	return nil
}

// GetBytes serves resident payloads locally and falls back to the sink on
// any local miss, repopulating payload and index from the result. The
// fallback covers three states that look identical here: never written by
// this process, evicted, and dropped by the payload store.
func (c *Cache) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	if _, ok := c.resident[key]; ok {
		b, hit, err := c.store.Get(key)
		if err == nil && hit {
			c.touch(key)
			c.hooks.CacheHit(key)
			return b, true, nil
		}
		// The store lost or refused the entry on its own (expiry, admission,
		// corruption). Drop our residence claim and heal from the sink.
		if err != nil {
			c.log.Warn("payload store read failed", Fields{"key": key, "err": err})
		}
		c.forget(key)
	}

	c.hooks.CacheMiss(key)
	b, ok, err := c.sink.GetBytes(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	c.admit(ctx, key, b)
	return b, true, nil
}

// List delegates to the sink: only the authoritative store can produce a
// complete listing, since resident keys are a bounded subset of the
// namespace. Use ListCached for the resident-only view.
func (c *Cache) List(ctx context.Context, prefix string) (sink.ListKeys, error) {
	return c.sink.List(ctx, prefix)
}

// ListCached returns the delimiter rollup over resident keys only, without
// touching the sink. It can under-report names that were evicted;
// over-reporting is not possible.
func (c *Cache) ListCached(prefix string) sink.ListKeys {
	names := make([]string, 0, len(c.resident))
	for name := range c.resident {
		names = append(names, name)
	}
	return sink.Rollup(prefix, names)
}

// Close releases the payload store and the index. The sink is not owned by
// the cache and stays open.
func (c *Cache) Close(ctx context.Context) error {
	return errors.Join(c.store.Close(), c.idx.Close(ctx))
}

// admit records a confirmed sink value locally: payload residence (unless
// the store rejects it), recency, existence index, and capacity eviction.
func (c *Cache) admit(ctx context.Context, key string, value []byte) {
	ok, err := c.store.Set(key, value)
	if err != nil || !ok {
		if err != nil {
			c.log.Warn("payload store write failed", Fields{"key": key, "err": err})
		}
		c.hooks.PayloadRejected(key)
		// A rejected write may leave a stale older payload behind; make sure
		// the key reads as non-resident.
		c.forget(key)
	} else {
		c.touch(key)
		c.evictOverflow()
	}

	if err := c.idx.Add(ctx, key); err != nil {
		// Not fatal: the read path treats a missing index entry like a cache
		// miss and heals from the sink.
		c.hooks.IndexError("add", key, err)
		c.log.Warn("existence index add failed", Fields{"key": key, "err": err})
	}
}

// touch moves key to the most-recently-used position, inserting it if new.
func (c *Cache) touch(key string) {
	if el, ok := c.resident[key]; ok {
		c.order.MoveToFront(el)
		return
	}
	c.resident[key] = c.order.PushFront(key)
}

// forget drops residence bookkeeping and the stored payload. The existence
// index is deliberately left alone.
func (c *Cache) forget(key string) {
	if el, ok := c.resident[key]; ok {
		c.order.Remove(el)
		delete(c.resident, key)
	}
	_ = c.store.Del(key)
}

// evictOverflow drops least-recently-used entries until the resident count
// fits the capacity. Local only: no sink call, no index change.
func (c *Cache) evictOverflow() {
	for len(c.resident) > c.capacity {
		el := c.order.Back()
		if el == nil {
			return
		}
		name := el.Value.(string)
		c.order.Remove(el)
		delete(c.resident, name)
		_ = c.store.Del(name)
		c.hooks.Evicted(name)
		c.log.Debug("evicted least-recently-used payload", Fields{"key": name})
	}
}
