// Package mesh builds GPU-ready triangle mesh buffers from polygonal face
// descriptions: attribute layout, face topology, triangulation, normal
// generation, and an indexed buffer builder with a parallel build pipeline.
package mesh

import "fmt"

// Semantic identifies what a vertex attribute channel contains.
type Semantic uint8

const (
	Position Semantic = iota
	Normal
	TexCoord
	Color
)

// String returns the OBJ-style lowercase channel name.
func (s Semantic) String() string {
	switch s {
	case Position:
		return "position"
	case Normal:
		return "normal"
	case TexCoord:
		return "texcoord"
	case Color:
		return "color"
	}
	return fmt.Sprintf("semantic(%d)", uint8(s))
}

// Format is the numeric storage format of one attribute component.
type Format uint8

const (
	// Float32 is a 4-byte IEEE 754 float, the only format the builder
	// currently emits.
	Float32 Format = iota
)

// Size returns the byte size of one component, or 0 for unknown formats.
func (f Format) Size() int {
	if f == Float32 {
		return 4
	}
	return 0
}

// Channel describes one vertex attribute: what it is, how each component
// is stored, and how many components it has.
type Channel struct {
	Semantic Semantic
	Format   Format
	Count    int
}

// Schema is the immutable binary layout of one vertex record: an ordered
// channel list with cumulative byte offsets. Field order in the vertex
// struct must match channel order exactly.
type Schema struct {
	channels []Channel
	offsets  []int
	stride   int
}

// NewSchema validates the channel list and computes offsets and stride.
// Component counts must be 1..4 and each format must be supported.
func NewSchema(channels ...Channel) (*Schema, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: schema needs at least one channel", ErrInvalidArgument)
	}

	s := &Schema{
		channels: make([]Channel, len(channels)),
		offsets:  make([]int, len(channels)),
	}
	copy(s.channels, channels)

	for i, c := range channels {
		if c.Format.Size() == 0 {
			return nil, fmt.Errorf("%w: unsupported format %d in channel %s", ErrInvalidArgument, c.Format, c.Semantic)
		}
		if c.Count < 1 || c.Count > 4 {
			return nil, fmt.Errorf("%w: channel %s has %d components, want 1..4", ErrInvalidArgument, c.Semantic, c.Count)
		}
		s.offsets[i] = s.stride
		s.stride += c.Count * c.Format.Size()
	}

	return s, nil
}

// Stride returns the total byte size of one vertex record.
func (s *Schema) Stride() int {
	return s.stride
}

// Channels returns a copy of the ordered channel list.
func (s *Schema) Channels() []Channel {
	out := make([]Channel, len(s.channels))
	copy(out, s.channels)
	return out
}

// OffsetAt returns the byte offset of channel i.
func (s *Schema) OffsetAt(i int) int {
	return s.offsets[i]
}

// Offset returns the byte offset of the first channel with the given
// semantic, and whether the schema has one.
func (s *Schema) Offset(sem Semantic) (int, bool) {
	for i, c := range s.channels {
		if c.Semantic == sem {
			return s.offsets[i], true
		}
	}
	return 0, false
}
