package sink

import (
	"errors"
	"fmt"
)

// ErrMalformedList marks a listing response that came back without the
// fields the protocol promises (distinct from a transport failure).
var ErrMalformedList = errors.New("objcache: malformed list response")

// OpError reports a backend-level failure on a single-object operation.
// It carries the operation and key so callers can diagnose without the
// underlying transport's types leaking into their error handling.
type OpError struct {
	Op  string // e.g. "exists", "put_bytes", "get_bytes"
	Key string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("sink: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// ListError reports a backend-level failure during a prefix listing.
type ListError struct {
	Op     string
	Prefix string
	Err    error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("sink: %s prefix %q: %v", e.Op, e.Prefix, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// ConfigError reports a required configuration value that was absent at
// sink construction time. Construction fails; it is never retried.
type ConfigError struct {
	Var string // missing variable, e.g. "s3.endpoint"
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("objcache: missing required configuration %q", e.Var)
}
