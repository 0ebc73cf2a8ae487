package redis

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "localhost:6379"

func redisAvailable() bool {
	conn, err := net.DialTimeout("tcp", testAddr, time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{Addr: testAddr})
	ns := fmt.Sprintf("objcache-test-%d:", time.Now().UnixNano())
	s, err := New(Config{Client: client, Namespace: ns, CloseClient: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestRedisSink_Integration(t *testing.T) {
	if !redisAvailable() {
		t.Skip("Redis not reachable on localhost:6379; skipping integration tests")
	}
	ctx := context.Background()
	s := newTestSink(t)

	t.Run("absence", func(t *testing.T) {
		ok, err := s.Exists(ctx, "never/written")
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = s.GetBytes(ctx, "never/written")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put get exists", func(t *testing.T) {
		payload := []byte(`{"id":"1"}`)
		require.NoError(t, s.PutBytes(ctx, "users/1", "application/json", payload))

		ok, err := s.Exists(ctx, "users/1")
		require.NoError(t, err)
		assert.True(t, ok)

		got, ok, err := s.GetBytes(ctx, "users/1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, payload, got)
	})

	t.Run("delimiter listing", func(t *testing.T) {
		for _, name := range []string{"one", "long/qux", "long/baz", "long/verylong/buz"} {
			require.NoError(t, s.PutBytes(ctx, name, "text/plain; charset=utf-8", []byte(name)))
		}

		tests := []struct {
			prefix string
			want   []string
		}{
			{"", []string{"long/", "one", "users/"}},
			{"long/", []string{"long/baz", "long/qux", "long/verylong/"}},
			{"long/verylong/", []string{"long/verylong/buz"}},
			{"long", []string{}},
		}
		for _, tc := range tests {
			got, err := s.List(ctx, tc.prefix)
			require.NoError(t, err, "List(%q)", tc.prefix)
			assert.Equal(t, tc.want, got.Sorted(), "List(%q)", tc.prefix)
		}
	})
}
