package vecd

import "golang.org/x/exp/constraints"

// MaxLen is the longest tuple the kernel operates on.
const MaxLen = 3

// A Result is a tuple computed by a kernel function, waiting to be delivered
// to a Sink.
//
// Kernel functions read every operand component before building a Result, so
// a Sink may safely write into one of the operands.
type Result[F constraints.Float] struct {
	n int
	c [MaxLen]F
}

func newResult[F constraints.Float](n int) Result[F] {
	if n < 2 || n > MaxLen {
		panic(&LengthError{Got: n, Want: MaxLen})
	}
	return Result[F]{n: n}
}

func (r Result[F]) Len() int {
	return r.n
}

func (r Result[F]) At(i int) F {
	checkIndex(i, r.n)
	return r.c[i]
}

// A Sink delivers a Result and returns the destination in its own type.
type Sink[F constraints.Float, R any] interface {
	Commit(r Result[F]) R
}

type writableSink[F constraints.Float, W Writable[F]] struct {
	w W
}

// Into creates a Sink which overwrites the components of w and returns w.
//
// When w is one of the operands, this is the self mode of the kernel.
func Into[F constraints.Float, W Writable[F]](w W) Sink[F, W] {
	return writableSink[F, W]{w: w}
}

func (s writableSink[F, W]) Commit(r Result[F]) W {
	checkLen(s.w.Len(), r.n)
	for i := 0; i < r.n; i++ {
		s.w.SetAt(i, r.c[i])
	}
	return s.w
}

type bufferSink[F constraints.Float] []F

// Buffer creates a Sink which writes the result into the first components of
// buf and returns buf.
//
// The buffer must hold at least as many scalars as the result.
func Buffer[F constraints.Float](buf []F) Sink[F, []F] {
	return bufferSink[F](buf)
}

func (b bufferSink[F]) Commit(r Result[F]) []F {
	if len(b) < r.n {
		panic(&IndexError{Index: r.n - 1, Len: len(b)})
	}
	copy(b, r.c[:r.n])
	return []F(b)
}

type factory2Sink[F constraints.Float, T any] func(x, y F) T

// New2 creates a Sink which builds a new value from a 2-component result.
func New2[F constraints.Float, T any](f func(x, y F) T) Sink[F, T] {
	return factory2Sink[F, T](f)
}

func (f factory2Sink[F, T]) Commit(r Result[F]) T {
	checkLen(r.n, 2)
	return f(r.c[0], r.c[1])
}

type factory3Sink[F constraints.Float, T any] func(x, y, z F) T

// New3 creates a Sink which builds a new value from a 3-component result.
func New3[F constraints.Float, T any](f func(x, y, z F) T) Sink[F, T] {
	return factory3Sink[F, T](f)
}

func (f factory3Sink[F, T]) Commit(r Result[F]) T {
	checkLen(r.n, 3)
	return f(r.c[0], r.c[1], r.c[2])
}

func unaryOp[F constraints.Float, R any](t Tuple[F], out Sink[F, R], f func(x F) F) R {
	res := newResult[F](t.Len())
	for i := 0; i < res.n; i++ {
		res.c[i] = f(t.At(i))
	}
	return out.Commit(res)
}

func binaryOp[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R], f func(x, y F) F) R {
	checkLen(b.Len(), a.Len())
	res := newResult[F](a.Len())
	for i := 0; i < res.n; i++ {
		res.c[i] = f(a.At(i), b.At(i))
	}
	return out.Commit(res)
}

func ternaryOp[F constraints.Float, R any](a, b, c Tuple[F], out Sink[F, R],
	f func(x, y, z F) F) R {
	checkLen(b.Len(), a.Len())
	checkLen(c.Len(), a.Len())
	res := newResult[F](a.Len())
	for i := 0; i < res.n; i++ {
		res.c[i] = f(a.At(i), b.At(i), c.At(i))
	}
	return out.Commit(res)
}
