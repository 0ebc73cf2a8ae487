// Package ristretto keeps resident payloads in dgraph-io/ristretto. Its
// TinyLFU admission policy may reject writes for cold keys; the cache treats
// a rejected Set as non-resident and serves the key from the sink.
package ristretto

import (
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/objcache/payload"
)

type Store struct {
	c *rc.Cache
}

var _ payload.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // total payload bytes
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (p *Store) Get(key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Store) Set(key string, value []byte) (bool, error) {
	return p.c.SetWithTTL(key, value, int64(len(value)), 0), nil
}

func (p *Store) Del(key string) error {
	p.c.Del(key)
	return nil
}

func (p *Store) Close() error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes the engine's counters when Config.Metrics was set
// (not part of payload.Store).
func (p *Store) Metrics() *rc.Metrics { return p.c.Metrics }
