package vecd

import "golang.org/x/exp/constraints"

// An IndexValue identifies an extreme component of a tuple and its index.
type IndexValue[F constraints.Float] struct {
	Index int
	Value F
}

// Min computes the component-wise minimum of a and b.
func Min[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return min(x, y)
	})
}

// Max computes the component-wise maximum of a and b.
func Max[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return max(x, y)
	})
}

// MinComponent finds the smallest component of t.
//
// Ties are resolved in favor of the earliest index.
func MinComponent[F constraints.Float](t Tuple[F]) IndexValue[F] {
	var res IndexValue[F]
	MinComponentInto(t, &res)
	return res
}

// MinComponentInto is like MinComponent, but stores the result in dst.
func MinComponentInto[F constraints.Float](t Tuple[F], dst *IndexValue[F]) *IndexValue[F] {
	return extremeComponent(t, dst, func(x, best F) bool {
		return x < best
	})
}

// MaxComponent finds the largest component of t.
//
// Ties are resolved in favor of the earliest index.
func MaxComponent[F constraints.Float](t Tuple[F]) IndexValue[F] {
	var res IndexValue[F]
	MaxComponentInto(t, &res)
	return res
}

// MaxComponentInto is like MaxComponent, but stores the result in dst.
func MaxComponentInto[F constraints.Float](t Tuple[F], dst *IndexValue[F]) *IndexValue[F] {
	return extremeComponent(t, dst, func(x, best F) bool {
		return x > best
	})
}

func extremeComponent[F constraints.Float](t Tuple[F], dst *IndexValue[F],
	better func(x, best F) bool) *IndexValue[F] {
	dst.Index = 0
	dst.Value = t.At(0)
	for i := 1; i < t.Len(); i++ {
		if x := t.At(i); better(x, dst.Value) {
			dst.Index = i
			dst.Value = x
		}
	}
	return dst
}

func Abs[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return unaryOp(t, out, abs[F])
}

// Sign maps each component to -1, 0 or 1.
func Sign[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return unaryOp(t, out, sign[F])
}

func Neg[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return unaryOp(t, out, func(x F) F {
		return -x
	})
}

// Recip computes 1/x for each component.
func Recip[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return unaryOp(t, out, func(x F) F {
		return 1 / x
	})
}

// Trunc rounds each component toward zero.
func Trunc[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return unaryOp(t, out, trunc[F])
}

// Swizzle reorders the components of t, so that component i of the result is
// component indices[i] of t.
//
// There must be exactly one index per component. All components are read
// before any are written, so the destination may be t itself.
func Swizzle[F constraints.Float, R any](t Tuple[F], indices []int, out Sink[F, R]) R {
	checkLen(len(indices), t.Len())
	res := newResult[F](t.Len())
	for i, idx := range indices {
		checkIndex(idx, res.n)
		res.c[i] = t.At(idx)
	}
	return out.Commit(res)
}

// Swap exchanges components i and j of t.
func Swap[F constraints.Float, R any](t Tuple[F], i, j int, out Sink[F, R]) R {
	res := newResult[F](t.Len())
	checkIndex(i, res.n)
	checkIndex(j, res.n)
	for k := 0; k < res.n; k++ {
		res.c[k] = t.At(k)
	}
	res.c[i], res.c[j] = res.c[j], res.c[i]
	return out.Commit(res)
}
