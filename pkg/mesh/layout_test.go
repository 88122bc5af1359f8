package mesh

import (
	"errors"
	"testing"
	"unsafe"
)

func TestSchemaOffsetsAndStride(t *testing.T) {
	s, err := NewSchema(
		Channel{Semantic: Position, Format: Float32, Count: 3},
		Channel{Semantic: Normal, Format: Float32, Count: 3},
		Channel{Semantic: TexCoord, Format: Float32, Count: 2},
	)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	if s.Stride() != 32 {
		t.Errorf("expected stride 32, got %d", s.Stride())
	}

	wantOffsets := []int{0, 12, 24}
	for i, want := range wantOffsets {
		if got := s.OffsetAt(i); got != want {
			t.Errorf("channel %d offset = %d, want %d", i, got, want)
		}
	}

	off, ok := s.Offset(Normal)
	if !ok || off != 12 {
		t.Errorf("Offset(Normal) = %d, %v, want 12, true", off, ok)
	}
	if _, ok := s.Offset(Color); ok {
		t.Error("Offset(Color) should report missing channel")
	}
}

func TestSchemaRejectsBadChannels(t *testing.T) {
	tests := []struct {
		name     string
		channels []Channel
	}{
		{"empty", nil},
		{"zero components", []Channel{{Semantic: Position, Format: Float32, Count: 0}}},
		{"too many components", []Channel{{Semantic: Position, Format: Float32, Count: 5}}},
		{"unknown format", []Channel{{Semantic: Position, Format: Format(9), Count: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchema(tt.channels...); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestDefaultSchemaMatchesVertex(t *testing.T) {
	s := DefaultSchema()
	if got := int(unsafe.Sizeof(Vertex{})); got != s.Stride() {
		t.Errorf("Vertex is %d bytes but DefaultSchema stride is %d", got, s.Stride())
	}
}
