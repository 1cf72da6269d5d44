package vecd

import "golang.org/x/exp/constraints"

// A Tuple is a read-only view of a fixed-length list of scalars.
//
// Every kernel function takes its operands as Tuples, so a *Vec3, a raw
// slice, a model3d.Coord3D or a getter can be mixed freely.
type Tuple[F constraints.Float] interface {
	Len() int
	At(i int) F
}

// A Writable is a Tuple whose components can be overwritten in place.
type Writable[F constraints.Float] interface {
	Tuple[F]
	SetAt(i int, x F)
}

// A Slice is a Tuple backed by a raw scalar array.
type Slice[F constraints.Float] []F

// Of creates a Tuple from discrete scalar arguments.
func Of[F constraints.Float](values ...F) Slice[F] {
	return Slice[F](values)
}

func (s Slice[F]) Len() int {
	return len(s)
}

func (s Slice[F]) At(i int) F {
	checkIndex(i, len(s))
	return s[i]
}

func (s Slice[F]) SetAt(i int, x F) {
	checkIndex(i, len(s))
	s[i] = x
}

// A List is a Tuple with an arbitrary getter.
// This can be useful for viewing interleaved storage without copying.
type List[F constraints.Float] struct {
	Size int
	Get  func(int) F
}

func NewListSlice[F constraints.Float](s []F) List[F] {
	return List[F]{
		Size: len(s),
		Get: func(i int) F {
			return s[i]
		},
	}
}

// NewListStrided views n scalars of buf starting at offset and separated by
// stride elements, such as the normals of an interleaved vertex buffer.
func NewListStrided[F constraints.Float](buf []F, offset, stride, n int) List[F] {
	return List[F]{
		Size: n,
		Get: func(i int) F {
			return buf[offset+i*stride]
		},
	}
}

func (l List[F]) Len() int {
	return l.Size
}

func (l List[F]) At(i int) F {
	checkIndex(i, l.Size)
	return l.Get(i)
}

type splat[F constraints.Float] struct {
	n     int
	value F
}

// Splat creates a Tuple of n copies of s, for broadcasting a scalar against a
// tuple operand.
func Splat[F constraints.Float](n int, s F) Tuple[F] {
	return splat[F]{n: n, value: s}
}

func (s splat[F]) Len() int {
	return s.n
}

func (s splat[F]) At(i int) F {
	checkIndex(i, s.n)
	return s.value
}
