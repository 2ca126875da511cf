package pattern

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// Type is the numeric component type of a generated buffer.
type Type int

const (
	Uint8 Type = iota
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Float32
)

// Size returns the byte size of one component.
func (t Type) Size() int {
	switch t {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	default:
		return 4
	}
}

func (t Type) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// BufferSpec describes a synthetic vertex or attribute buffer:
// how many elements, how each element is laid out, and the value
// range components are drawn from.
type BufferSpec struct {
	// Count is the number of elements.
	Count int

	// Components is the number of components per element, 1 to 4.
	Components int

	// Type is the component type.
	Type Type

	// Stride is the byte distance between consecutive elements.
	// 0 means tightly packed. Bytes between the packed components and
	// the next element are left zero.
	Stride int

	// Min and Max bound the generated component values, inclusive.
	Min, Max float64
}

// ElementSize returns the packed byte size of one element.
func (s BufferSpec) ElementSize() int {
	return s.Components * s.Type.Size()
}

// stride returns the effective stride.
func (s BufferSpec) stride() int {
	if s.Stride == 0 {
		return s.ElementSize()
	}
	return s.Stride
}

// ByteSize returns the total size of the generated buffer.
func (s BufferSpec) ByteSize() int {
	if s.Count == 0 {
		return 0
	}
	// The final element is packed; stride padding only separates
	// elements.
	return (s.Count-1)*s.stride() + s.ElementSize()
}

// validate rejects specs that cannot describe a buffer.
func (s BufferSpec) validate() error {
	if s.Count < 0 {
		return fmt.Errorf("pattern: negative element count %d", s.Count)
	}
	if s.Components < 1 || s.Components > 4 {
		return fmt.Errorf("pattern: %d components per element, want 1..4", s.Components)
	}
	if s.Stride != 0 && s.Stride < s.ElementSize() {
		return fmt.Errorf("pattern: stride %d smaller than element size %d", s.Stride, s.ElementSize())
	}
	if s.Max < s.Min {
		return fmt.Errorf("pattern: empty value range [%v, %v]", s.Min, s.Max)
	}
	return nil
}

// Seed hashes a test-case name into a 64-bit generator seed, so every
// case gets its own reproducible data stream.
func Seed(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// Vertices materializes the spec into a little-endian byte buffer,
// drawing component values uniformly from [spec.Min, spec.Max] with a
// generator seeded by seed. Integer types round to nearest and clamp
// to the type's range.
func Vertices(spec BufferSpec, seed uint64) ([]byte, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	out := make([]byte, spec.ByteSize())
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))

	stride := spec.stride()
	compSize := spec.Type.Size()
	for elem := 0; elem < spec.Count; elem++ {
		base := elem * stride
		for comp := 0; comp < spec.Components; comp++ {
			v := spec.Min + rng.Float64()*(spec.Max-spec.Min)
			writeComponent(out[base+comp*compSize:], spec.Type, v)
		}
	}
	return out, nil
}

func writeComponent(dst []byte, t Type, v float64) {
	switch t {
	case Float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case Uint8:
		dst[0] = uint8(clampRound(v, 0, math.MaxUint8))
	case Int8:
		dst[0] = uint8(int8(clampRound(v, math.MinInt8, math.MaxInt8)))
	case Uint16:
		binary.LittleEndian.PutUint16(dst, uint16(clampRound(v, 0, math.MaxUint16)))
	case Int16:
		binary.LittleEndian.PutUint16(dst, uint16(int16(clampRound(v, math.MinInt16, math.MaxInt16))))
	case Uint32:
		binary.LittleEndian.PutUint32(dst, uint32(clampRound(v, 0, math.MaxUint32)))
	case Int32:
		binary.LittleEndian.PutUint32(dst, uint32(int32(clampRound(v, math.MinInt32, math.MaxInt32))))
	}
}

func clampRound(v, lo, hi float64) int64 {
	v = math.Round(v)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int64(v)
}
