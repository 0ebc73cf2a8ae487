// Package memory provides the in-process sink: a map from key name to
// payload bytes behind the asynchronous sink contract. No I/O errors are
// possible; the content type is accepted and discarded since a map has
// nowhere to keep it.
package memory

import (
	"context"
	"strings"

	"github.com/unkn0wn-root/objcache/sink"
)

type Sink struct {
	data map[string][]byte
}

var _ sink.Sink = (*Sink)(nil)

func New() *Sink {
	return &Sink{data: make(map[string][]byte)}
}

// Len returns the number of stored objects.
func (s *Sink) Len() int { return len(s.data) }

func (s *Sink) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.data[key]
	return ok, nil
}

func (s *Sink) PutBytes(_ context.Context, key, _ string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *Sink) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Sink) List(_ context.Context, prefix string) (sink.ListKeys, error) {
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return sink.Rollup(prefix, names), nil
}
