package buffer

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool(8)

	b := p.Get()
	if b.Len() != 8 || p.Length() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}

	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool(4)

	b := p.Get()
	b.Samples()[0] = 42
	b.Samples()[1] = 43
	p.Put(b)

	b2 := p.Get()
	for i, v := range b2.Samples() {
		if v != 0 {
			t.Fatalf("reused Samples()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool(1)
	p.Put(nil) // must not panic
}
