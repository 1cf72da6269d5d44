package vecd

import "golang.org/x/exp/constraints"

// Dot computes the sum of pairwise component products.
func Dot[F constraints.Float](a, b Tuple[F]) F {
	checkLen(b.Len(), a.Len())
	var res F
	for i := 0; i < a.Len(); i++ {
		res += a.At(i) * b.At(i)
	}
	return res
}

// LenSq computes the squared Euclidean length of t.
func LenSq[F constraints.Float](t Tuple[F]) F {
	var res F
	for i := 0; i < t.Len(); i++ {
		x := t.At(i)
		res += x * x
	}
	return res
}

// Len computes the Euclidean length of t.
//
// The result is exactly 0 when the squared length is zero.
func Len[F constraints.Float](t Tuple[F]) F {
	return lenOfSq(LenSq(t))
}

// LenTolerance is like Len, but treats any squared length within
// [0, tolerance] as zero.
func LenTolerance[F constraints.Float](t Tuple[F], tolerance F) F {
	return lenOfSqTolerance(LenSq(t), tolerance)
}

// InvLen computes 1 / Len(t).
func InvLen[F constraints.Float](t Tuple[F]) F {
	return invSqrt(LenSq(t))
}

func lenOfSq[F constraints.Float](sq F) F {
	if sq == 0 {
		return 0
	}
	return sqrt(sq)
}

func lenOfSqTolerance[F constraints.Float](sq, tolerance F) F {
	if sq >= 0 && sq <= tolerance {
		return 0
	}
	return sqrt(sq)
}

// Normalize scales t to unit length.
//
// If every component is within DefaultTolerance of zero, the result is the
// exact zero vector rather than NaN.
func Normalize[F constraints.Float, R any](t Tuple[F], out Sink[F, R]) R {
	return NormalizeTolerance(t, DefaultTolerance, out)
}

// NormalizeTolerance is like Normalize with a caller-supplied zero band.
func NormalizeTolerance[F constraints.Float, R any](t Tuple[F], tolerance F,
	out Sink[F, R]) R {
	res := newResult[F](t.Len())
	zero := true
	for i := 0; i < res.n; i++ {
		res.c[i] = t.At(i)
		if abs(res.c[i]) > tolerance {
			zero = false
		}
	}
	if zero {
		return out.Commit(newResult[F](res.n))
	}
	scale := invSqrt(LenSq[F](res))
	for i := 0; i < res.n; i++ {
		res.c[i] *= scale
	}
	return out.Commit(res)
}

// Cross computes the cross product of two 3-component tuples.
func Cross[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	checkLen(a.Len(), 3)
	checkLen(b.Len(), 3)
	ax, ay, az := a.At(0), a.At(1), a.At(2)
	bx, by, bz := b.At(0), b.At(1), b.At(2)
	res := newResult[F](3)
	res.c[0] = ay*bz - az*by
	res.c[1] = az*bx - ax*bz
	res.c[2] = ax*by - ay*bx
	return out.Commit(res)
}

// Project computes the orthogonal projection of v onto t as t * dot(v, t).
//
// The axis t is not normalized; callers should pass a unit vector.
func Project[F constraints.Float, R any](v, t Tuple[F], out Sink[F, R]) R {
	return Scale(t, Dot(v, t), out)
}

// Reflect reflects v about the surface normal n, computing v - 2*(v·n)*n.
//
// The normal must already have unit length.
func Reflect[F constraints.Float, R any](v, n Tuple[F], out Sink[F, R]) R {
	d := 2 * Dot(v, n)
	return binaryOp(v, n, out, func(x, y F) F {
		return x - d*y
	})
}

// HalfVector computes (b - a) * 0.5.
func HalfVector[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return (y - x) * 0.5
	})
}

// MidPoint computes the point halfway between a and b, (a + b) * 0.5.
func MidPoint[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return (x + y) * 0.5
	})
}

// DistSq computes the squared Euclidean distance between points a and b.
func DistSq[F constraints.Float](a, b Tuple[F]) F {
	checkLen(b.Len(), a.Len())
	var res F
	for i := 0; i < a.Len(); i++ {
		d := b.At(i) - a.At(i)
		res += d * d
	}
	return res
}

// Dist computes the Euclidean distance between points a and b.
func Dist[F constraints.Float](a, b Tuple[F]) F {
	return lenOfSq(DistSq(a, b))
}

// DistTolerance is like Dist, but treats any squared distance within
// [0, tolerance] as zero.
func DistTolerance[F constraints.Float](a, b Tuple[F], tolerance F) F {
	return lenOfSqTolerance(DistSq(a, b), tolerance)
}

// InvDist computes 1 / Dist(a, b).
func InvDist[F constraints.Float](a, b Tuple[F]) F {
	return invSqrt(DistSq(a, b))
}
