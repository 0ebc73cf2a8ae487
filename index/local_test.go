package index

import (
	"context"
	"testing"
)

func TestLocal(t *testing.T) {
	ctx := context.Background()
	idx := NewLocal()

	if ok, err := idx.Contains(ctx, "a"); err != nil || ok {
		t.Fatalf("Contains on empty index: ok=%v err=%v", ok, err)
	}
	if err := idx.Add(ctx, "a"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := idx.Add(ctx, "a"); err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if ok, _ := idx.Contains(ctx, "a"); !ok {
		t.Fatalf("Contains false after Add")
	}
	if idx.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (Add is idempotent)", idx.Len())
	}
	if err := idx.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
