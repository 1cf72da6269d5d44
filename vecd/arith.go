package vecd

import "golang.org/x/exp/constraints"

// Add computes a + b.
func Add[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return x + y
	})
}

// Sub computes a - b.
func Sub[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return x - y
	})
}

// RevSub computes b - a, for when a is the right-hand operand.
func RevSub[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return y - x
	})
}

// Mul computes the component-wise product of a and b.
func Mul[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return x * y
	})
}

// Div computes the component-wise quotient a / b.
//
// Division by zero follows IEEE-754 and yields infinities or NaN.
func Div[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return x / y
	})
}

// RevDiv computes the component-wise quotient b / a.
func RevDiv[F constraints.Float, R any](a, b Tuple[F], out Sink[F, R]) R {
	return binaryOp(a, b, out, func(x, y F) F {
		return y / x
	})
}

// MulAdd computes a*b + c per component, fused when HasFMA is set.
func MulAdd[F constraints.Float, R any](a, b, c Tuple[F], out Sink[F, R]) R {
	return ternaryOp(a, b, c, out, fma[F])
}

func AddScalar[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return x + s
	})
}

func SubScalar[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return x - s
	})
}

// RevSubScalar computes s - a per component.
func RevSubScalar[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return s - x
	})
}

// Scale multiplies every component of a by s.
func Scale[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return x * s
	})
}

func DivScalar[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return x / s
	})
}

// RevDivScalar computes s / a per component.
func RevDivScalar[F constraints.Float, R any](a Tuple[F], s F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return s / x
	})
}

// MulAddScalar computes a*m + c per component.
func MulAddScalar[F constraints.Float, R any](a Tuple[F], m, c F, out Sink[F, R]) R {
	return unaryOp(a, out, func(x F) F {
		return fma(x, m, c)
	})
}
