package mesh

import (
	"errors"
	"testing"
)

func TestNewTopology(t *testing.T) {
	topo, err := NewTopology([][]uint32{
		{0, 1, 2, 3},
		{4, 5, 6},
		{7, 8, 9, 10, 11},
	})
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}

	if topo.FaceCount() != 3 {
		t.Errorf("expected 3 faces, got %d", topo.FaceCount())
	}
	if topo.IndexCount() != 12 {
		t.Errorf("expected 12 indices, got %d", topo.IndexCount())
	}

	// sum(sizes) == len(flattened indices)
	sum := 0
	for i := 0; i < topo.FaceCount(); i++ {
		sum += topo.FaceSize(i)
	}
	if sum != topo.IndexCount() {
		t.Errorf("sizes sum to %d, want %d", sum, topo.IndexCount())
	}

	wantOffsets := []int{0, 4, 7}
	for i, want := range wantOffsets {
		if got := topo.OffsetOf(i); got != want {
			t.Errorf("OffsetOf(%d) = %d, want %d", i, got, want)
		}
	}

	face := topo.Face(2)
	if len(face) != 5 || face[0] != 7 || face[4] != 11 {
		t.Errorf("Face(2) = %v, want [7 8 9 10 11]", face)
	}
}

func TestNewTopologyRejectsSmallFace(t *testing.T) {
	_, err := NewTopology([][]uint32{{0, 1, 2}, {3, 4}})
	if !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology, got %v", err)
	}
}

func TestNewTopologyFlat(t *testing.T) {
	// A degenerate zero-size face in the middle is tolerated here; the
	// triangulator skips it.
	topo, err := NewTopologyFlat([]uint32{0, 1, 2, 3, 4, 5, 6}, []int{4, 0, 3})
	if err != nil {
		t.Fatalf("NewTopologyFlat failed: %v", err)
	}
	if topo.FaceCount() != 3 {
		t.Errorf("expected 3 faces, got %d", topo.FaceCount())
	}
	if topo.FaceSize(1) != 0 {
		t.Errorf("expected face 1 to be empty, got size %d", topo.FaceSize(1))
	}
	if topo.OffsetOf(2) != 4 {
		t.Errorf("OffsetOf(2) = %d, want 4", topo.OffsetOf(2))
	}
}

func TestNewTopologyFlatRejectsMismatch(t *testing.T) {
	if _, err := NewTopologyFlat([]uint32{0, 1, 2}, []int{4}); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology for size mismatch, got %v", err)
	}
	if _, err := NewTopologyFlat([]uint32{0, 1, 2}, []int{-1, 4}); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology for negative size, got %v", err)
	}
}

func TestNewUniformTopology(t *testing.T) {
	topo, err := NewUniformTopology(4, []uint32{0, 1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatalf("NewUniformTopology failed: %v", err)
	}
	if topo.FaceCount() != 2 {
		t.Errorf("expected 2 faces, got %d", topo.FaceCount())
	}
	if topo.OffsetOf(1) != 4 {
		t.Errorf("OffsetOf(1) = %d, want 4", topo.OffsetOf(1))
	}

	if _, err := NewUniformTopology(4, []uint32{0, 1, 2}); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology for non-divisible index count, got %v", err)
	}
	if _, err := NewUniformTopology(2, []uint32{0, 1}); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("expected ErrInvalidTopology for face size 2, got %v", err)
	}
}

func TestTopologyValidate(t *testing.T) {
	topo, err := NewTopology([][]uint32{{0, 1, 5}})
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}
	if err := topo.Validate(6); err != nil {
		t.Errorf("Validate(6) failed: %v", err)
	}
	if err := topo.Validate(5); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("Validate(5) should fail, got %v", err)
	}
}
