package payload

import "testing"

func TestMap(t *testing.T) {
	p := NewMap()

	if _, ok, err := p.Get("k"); ok || err != nil {
		t.Fatalf("Get on empty map: ok=%v err=%v", ok, err)
	}

	ok, err := p.Set("k", []byte("v"))
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v (Map must accept every write)", ok, err)
	}
	b, ok, err := p.Get("k")
	if err != nil || !ok || string(b) != "v" {
		t.Fatalf("Get: ok=%v err=%v b=%s", ok, err, b)
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}

	if err := p.Del("k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get("k"); ok {
		t.Fatalf("Get after Del: hit")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
