package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New[float64](8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
	if New[float32](-1).Len() != 0 {
		t.Fatal("negative length should give an empty buffer")
	}
}

func TestResizeZeroesReusedStorage(t *testing.T) {
	b := New[float32](8)
	for i := range b.Samples() {
		b.Samples()[i] = 7
	}
	b.Resize(4)
	if b.Len() != 4 || b.Cap() < 8 {
		t.Fatalf("Len=%d Cap=%d", b.Len(), b.Cap())
	}
	b.Resize(8)
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v after Resize", i, v)
		}
	}
}

func TestPool(t *testing.T) {
	p := NewPool[float64]()
	b := p.Get(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	b.Samples()[3] = 1
	p.Put(b)
	p.Put(nil)

	c := p.Get(16)
	for i, v := range c.Samples() {
		if v != 0 {
			t.Fatalf("pooled Samples()[%d] = %v, want 0", i, v)
		}
	}
}
