package s3

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/objcache/sink"
)

const (
	testEndpoint = "http://localhost:9000"
	testHost     = "localhost:9000"
)

func minioAvailable(t *testing.T) bool {
	t.Helper()
	conn, err := net.DialTimeout("tcp", testHost, time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	ctx := context.Background()
	bucket := fmt.Sprintf("objcache-test-%d", time.Now().UnixNano())

	s, err := New(ctx, Config{
		Endpoint:        testEndpoint,
		Bucket:          bucket,
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
	})
	require.NoError(t, err)

	_, err = s.client.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String(bucket)})
	require.NoError(t, err, "create test bucket")
	return s
}

func TestConfigValidation(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, Config{Bucket: "b"})
	var cerr *sink.ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "s3.endpoint", cerr.Var)

	_, err = New(ctx, Config{Endpoint: testEndpoint})
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "s3.bucket", cerr.Var)
}

func TestS3Sink_Integration(t *testing.T) {
	if !minioAvailable(t) {
		t.Skip("MinIO not reachable on localhost:9000; skipping S3 integration tests")
	}
	ctx := context.Background()
	s := newTestSink(t)

	t.Run("absence", func(t *testing.T) {
		ok, err := s.Exists(ctx, "never/written")
		require.NoError(t, err)
		assert.False(t, ok, "Exists must map NotFound to false, not an error")

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

		// Content-Type header round-trips through the store.
		head, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String("users/1"),
		})
		require.NoError(t, err)
		assert.Equal(t, "application/json", aws.ToString(head.ContentType))
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

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.PutBytes(ctx, "users/1", "application/json", []byte(`{"id":"1","v":2}`)))
		got, ok, err := s.GetBytes(ctx, "users/1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"id":"1","v":2}`, string(got))
	})
}
