package tensor

import (
	"errors"
	"sync"
	"testing"
)

func TestBufferRefCount(t *testing.T) {
	buf := NewBuffer(16)
	if !buf.IsUnique() {
		t.Fatal("new buffer should be unique")
	}

	buf.AddRef()
	if buf.IsUnique() || buf.RefCount() != 2 {
		t.Errorf("RefCount = %d, want 2", buf.RefCount())
	}

	buf.Release()
	if buf.Len() != 16 {
		t.Error("buffer freed while still referenced")
	}

	buf.Release()
	if buf.Len() != 0 {
		t.Error("buffer should be freed after last release")
	}
}

func TestBufferConcurrentRefs(t *testing.T) {
	buf := NewBuffer(8)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf.AddRef()
			buf.Release()
		}()
	}
	wg.Wait()
	if buf.RefCount() != 1 {
		t.Errorf("RefCount = %d, want 1", buf.RefCount())
	}
}

func TestLongBufferConstant(t *testing.T) {
	b := NewLongBuffer(3)
	for i := 0; i < 3; i++ {
		if err := b.Put(i, int64(i+10)); err != nil {
			t.Fatalf("Put(%d): %v", i, err)
		}
	}
	if err := b.Put(3, 1); err == nil {
		t.Error("Put out of range should fail")
	}
	if b.SizeInBytes() != 24 {
		t.Errorf("SizeInBytes = %d, want 24", b.SizeInBytes())
	}

	b.SetConstant()
	if !b.IsConstant() {
		t.Fatal("buffer should be constant")
	}
	if err := b.Put(0, 99); !errors.Is(err, ErrConstantBuffer) {
		t.Errorf("Put on constant buffer = %v, want ErrConstantBuffer", err)
	}
	if b.Get(0) != 10 {
		t.Errorf("Get(0) = %d, want 10", b.Get(0))
	}

	words := b.AsLong()
	words[0] = -1
	if b.Get(0) != 10 {
		t.Error("AsLong should return a copy")
	}
}
