package tensor

import (
	"math"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate() should reject zero dimension")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate() should reject negative dimension")
	}
}

func TestShapeEqual(t *testing.T) {
	s := Shape{2, 3}
	if !s.Equal(Shape{2, 3}) || s.Equal(Shape{2, 3, 1}) || s.Equal(Shape{2, 4}) {
		t.Error("Equal returned wrong result")
	}
}

func TestShapeInt64RoundTrip(t *testing.T) {
	s := Shape{4, 84, 84}
	back, err := ShapeFromInt64(s.Int64())
	if err != nil {
		t.Fatalf("ShapeFromInt64: %v", err)
	}
	if !back.Equal(s) {
		t.Errorf("round trip = %v, want %v", back, s)
	}
}

func TestShapeFromInt64Overflow(t *testing.T) {
	if math.MaxInt == math.MaxInt64 {
		t.Skip("int is 64 bits wide")
	}
	if _, err := ShapeFromInt64([]int64{math.MaxInt64}); err == nil {
		t.Error("expected out of range error")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}
	for _, tt := range tests {
		got, bc, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v) expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.want) || bc != tt.broadcast {
			t.Errorf("BroadcastShapes(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, bc, tt.want, tt.broadcast)
		}
	}
}
