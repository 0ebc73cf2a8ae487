package objcache

import (
	"context"

	"github.com/unkn0wn-root/objcache/codec"
	"github.com/unkn0wn-root/objcache/sink"
)

// Key produces the stable storage name for an entity. Name must be pure and
// deterministic: no I/O, no panics, and the same string on every call for
// the same logical key, since it is used as the storage address. Names are
// `/`-delimited hierarchical paths; name uniqueness implies object
// uniqueness.
type Key interface {
	Name() string
}

// StringKey is the trivial Key: the string is the name.
type StringKey string

func (k StringKey) Name() string { return string(k) }

// KeyWithCodec pairs a Key with the Codec for one typed operation. It is a
// per-call value with no lifecycle of its own; storage keeps no reference to
// it beyond the call.
type KeyWithCodec[V any] struct {
	Key   Key
	Codec codec.Codec[V]
}

// With builds the pairing.
func With[V any](key Key, c codec.Codec[V]) KeyWithCodec[V] {
	return KeyWithCodec[V]{Key: key, Codec: c}
}

// PutObject encodes value and writes it through s under kc's key name with
// the codec's content type. An encode failure returns a *codec.Error and
// leaves the sink untouched.
func PutObject[V any](ctx context.Context, s sink.Sink, kc KeyWithCodec[V], value V) error {
	name := kc.Key.Name()
	payload, err := kc.Codec.Encode(value)
	if err != nil {
		return &codec.Error{Op: "put_object", Key: name, Err: err}
	}
	return s.PutBytes(ctx, name, kc.Codec.ContentType(), payload)
}

// GetObject reads kc's key from s and decodes it. A never-written key is
// (zero, false, nil), not an error.
func GetObject[V any](ctx context.Context, s sink.Sink, kc KeyWithCodec[V]) (V, bool, error) {
	var zero V
	name := kc.Key.Name()
	payload, ok, err := s.GetBytes(ctx, name)
	if err != nil || !ok {
		return zero, false, err
	}
	value, err := kc.Codec.Decode(payload)
	if err != nil {
		return zero, false, &codec.Error{Op: "get_object", Key: name, Err: err}
	}
	return value, true, nil
}

// PutObjectIfAbsent writes value only when the key does not exist yet, and
// reports whether it wrote. The exists-check and the write are not atomic:
// two uncoordinated callers racing on the same unwritten key may both
// observe "absent" and both write, last write wins. That makes this a
// best-effort guard for idempotent write-once bootstrap records, not a
// locking primitive.
func PutObjectIfAbsent[V any](ctx context.Context, s sink.Sink, kc KeyWithCodec[V], value V) (bool, error) {
	exists, err := s.Exists(ctx, kc.Key.Name())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := PutObject(ctx, s, kc, value); err != nil {
		return false, err
	}
	return true, nil
}
