package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/objcache/sink"
)

func TestS3FromEnv(t *testing.T) {
	t.Setenv("OBJCACHE_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("OBJCACHE_S3_BUCKET", "objects")
	t.Setenv("OBJCACHE_S3_ACCESS_KEY_ID", "minioadmin")
	t.Setenv("OBJCACHE_S3_SECRET_ACCESS_KEY", "minioadmin")

	l, err := Load("")
	require.NoError(t, err)

	cfg, err := l.S3()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", cfg.Endpoint)
	assert.Equal(t, "objects", cfg.Bucket)
	assert.Equal(t, "us-east-1", cfg.Region, "region defaults when unset")
	assert.Equal(t, "minioadmin", cfg.AccessKeyID)
}

func TestS3MissingEndpointIsConfigError(t *testing.T) {
	t.Setenv("OBJCACHE_S3_BUCKET", "objects")

	l, err := Load("")
	require.NoError(t, err)

	_, err = l.S3()
	var cerr *sink.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "s3.endpoint", cerr.Var)
}

func TestRedisDefaultsAndOverride(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)

	opts, err := l.Redis()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)

	t.Setenv("OBJCACHE_REDIS_URL", "redis://:secret@cache.internal:6380/2")
	l, err = Load("")
	require.NoError(t, err)
	opts, err = l.Redis()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "secret", opts.Password)
}

func TestMissingConfigFileIsError(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}
