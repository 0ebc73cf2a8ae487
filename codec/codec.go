// Package codec defines the serialization strategy used to turn typed values
// into the byte payloads a sink stores.
//
// A Codec must round-trip: Decode(Encode(v)) yields a value equal to v for
// every v valid for that codec. ContentType is advisory metadata attached to
// the written object (e.g. the S3 Content-Type header); it carries no
// behavioral contract beyond being stored alongside the payload.
//
// The encoding is chosen per call, not per key: the same key may be written
// with one codec and later rewritten with another.
package codec

import "fmt"

// Codec encodes/decodes values V to []byte for storage and names the payload
// content type.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)

	// ContentType returns the MIME type attached to objects written with
	// this codec, e.g. "application/json".
	ContentType() string
}

// Error reports a serialization failure during a typed storage operation.
// Encode failures never touch the sink: the payload is produced before any
// backend call, so a failed encode leaves storage exactly as it was.
type Error struct {
	Op  string // storage operation, e.g. "put_object"
	Key string // key name the operation addressed
	Err error  // underlying codec error
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
