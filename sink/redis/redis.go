// Package redis provides a sink backed by a Redis server. Objects live as
// plain string values under namespaced keys; listing SCANs the namespace and
// applies the shared delimiter rollup client-side, since Redis has no native
// hierarchical listing.
//
// Redis cannot persist a content type next to a value, so PutBytes accepts
// and discards it (same as the in-process sink).
package redis

import (
	"context"
	"errors"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/objcache/sink"
)

var ErrNilClient = errors.New("redis sink: nil client")

// DefaultNamespace prefixes every stored key so the sink can share a server
// with other tenants.
const DefaultNamespace = "objcache:"

type Config struct {
	Client    goredis.UniversalClient
	Namespace string // defaults to DefaultNamespace
	// CloseClient releases the client on Close. Set true only if this sink
	// exclusively owns it.
	CloseClient bool
}

type Sink struct {
	rdb         goredis.UniversalClient
	ns          string
	closeClient bool
}

var _ sink.Sink = (*Sink)(nil)

func New(cfg Config) (*Sink, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	ns := cfg.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	return &Sink{rdb: cfg.Client, ns: ns, closeClient: cfg.CloseClient}, nil
}

func (s *Sink) storageKey(key string) string { return s.ns + key }

func (s *Sink) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.storageKey(key)).Result()
	if err != nil {
		return false, &sink.OpError{Op: "exists", Key: key, Err: err}
	}
	return n > 0, nil
}

func (s *Sink) PutBytes(ctx context.Context, key, _ string, value []byte) error {
	if err := s.rdb.Set(ctx, s.storageKey(key), value, 0).Err(); err != nil {
		return &sink.OpError{Op: "put_bytes", Key: key, Err: err}
	}
	return nil
}

func (s *Sink) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.storageKey(key)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &sink.OpError{Op: "get_bytes", Key: key, Err: err}
	}
	return b, true, nil
}

func (s *Sink) List(ctx context.Context, prefix string) (sink.ListKeys, error) {
	var names []string
	iter := s.rdb.Scan(ctx, 0, s.ns+prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.ns))
	}
	if err := iter.Err(); err != nil {
		return nil, &sink.ListError{Op: "list", Prefix: prefix, Err: err}
	}
	return sink.Rollup(prefix, names), nil
}

// Close releases the underlying redis client only when this sink owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Sink) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
