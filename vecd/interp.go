package vecd

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates between a and b.
//
// The result is exactly a when alpha is 0 and exactly b when alpha is 1.
func Lerp[F constraints.Float, R any](alpha F, a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return lerp(alpha, x, y)
	})
}

// Step selects a when alpha < midpoint, and b otherwise.
func Step[F constraints.Float, R any](alpha, midpoint F, a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		if alpha < midpoint {
			return x
		}
		return y
	})
}

// SmoothStep blends between a and b with the cubic 3t^2 - 2t^3, where t is
// alpha clamped to [0, 1].
func SmoothStep[F constraints.Float, R any](alpha F, a, b Tuple[F], out Sink[F, R]) R {
	t := clamp01(alpha)
	return Lerp(t*t*(3-2*t), a, b, out)
}

// SmootherStep blends between a and b with the quintic 6t^5 - 15t^4 + 10t^3,
// where t is alpha clamped to [0, 1].
func SmootherStep[F constraints.Float, R any](alpha F, a, b Tuple[F], out Sink[F, R]) R {
	t := clamp01(alpha)
	return Lerp(t*t*t*(t*(6*t-15)+10), a, b, out)
}

// IntLerp is like Lerp, but truncates each component toward zero.
func IntLerp[F constraints.Float, R any](alpha F, a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return trunc(lerp(alpha, x, y))
	})
}

func lerp[F constraints.Float](alpha, x, y F) F {
	return (1-alpha)*x + alpha*y
}
