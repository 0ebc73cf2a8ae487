package codec

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type record struct {
	ID    string `json:"id" msgpack:"id" cbor:"id"`
	Count int    `json:"count" msgpack:"count" cbor:"count"`
}

func sample() record {
	return record{ID: "r-1", Count: 42}
}

func roundTrip[V comparable](t *testing.T, c Codec[V], v V) {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != v {
		t.Fatalf("round trip: got %+v, want %+v", got, v)
	}
	if c.ContentType() == "" {
		t.Fatalf("empty content type")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	roundTrip[record](t, JSON[record]{}, sample())
	if got := (JSON[record]{}).ContentType(); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	roundTrip[record](t, MustCBOR[record](false), sample())
	roundTrip[record](t, MustCBOR[record](true), sample())
}

// TestCBORDeterministic: canonical mode must emit identical bytes for
// identical values.
func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR[record](true)
	a, err := c.Encode(sample())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := c.Encode(sample())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("deterministic encoding differs between calls")
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	roundTrip[record](t, Msgpack[record]{}, sample())
}

func TestStringRoundTrip(t *testing.T) {
	roundTrip[string](t, String{}, "héllo/wörld")
}

func TestBytesIdentity(t *testing.T) {
	in := []byte{0x00, 0xff, 0x10}
	b, err := Bytes{}.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Bytes{}.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("identity broken: %v != %v", out, in)
	}
}

func TestProtobufRoundTrip(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	v := wrapperspb.String("payload")
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !proto.Equal(got, v) {
		t.Fatalf("round trip: got %v, want %v", got, v)
	}
}

func TestLimitRejectsOversized(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}
	if _, err := c.Decode([]byte("too long")); err == nil {
		t.Fatalf("oversized payload accepted")
	}
	got, err := c.Decode([]byte("ok"))
	if err != nil || got != "ok" {
		t.Fatalf("small payload: got=%q err=%v", got, err)
	}
	if c.ContentType() != (String{}).ContentType() {
		t.Fatalf("Limit must forward the inner content type")
	}
}
