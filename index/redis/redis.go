// Package redis shares the existence index across replicas via a Redis SET.
// One process observing a write makes the name visible to every replica's
// Exists, which keeps bootstrap write-once guards effective fleet-wide.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/objcache/index"
)

var ErrNilClient = errors.New("redis index: nil client")

// DefaultSetKey is the Redis key holding the observed-name set.
const DefaultSetKey = "objcache:index"

type Config struct {
	Client goredis.UniversalClient
	SetKey string // defaults to DefaultSetKey
	// CloseClient releases the client on Close. Set true only if this index
	// exclusively owns it.
	CloseClient bool
}

type Index struct {
	rdb         goredis.UniversalClient
	setKey      string
	closeClient bool
}

var _ index.Index = (*Index)(nil)

func New(cfg Config) (*Index, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	setKey := cfg.SetKey
	if setKey == "" {
		setKey = DefaultSetKey
	}
	return &Index{rdb: cfg.Client, setKey: setKey, closeClient: cfg.CloseClient}, nil
}

func (i *Index) Contains(ctx context.Context, name string) (bool, error) {
	return i.rdb.SIsMember(ctx, i.setKey, name).Result()
}

func (i *Index) Add(ctx context.Context, name string) error {
	return i.rdb.SAdd(ctx, i.setKey, name).Err()
}

func (i *Index) Close(context.Context) error {
	if i.closeClient {
		if err := i.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
