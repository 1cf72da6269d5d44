package vecd

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
)

const (
	// DefaultTolerance is the zero band used by Normalize.
	DefaultTolerance = 1e-6

	// Epsilon is the per-component difference allowed by ApproxEqual.
	Epsilon = 1e-6

	// RoughEpsilon is the per-component difference allowed by RoughlyEqual.
	RoughEpsilon = 1e-3
)

// HasFMA reports whether the CPU performs fused multiply-add in hardware.
// When it does not, MulAdd falls back to a separate multiply and add.
var HasFMA = cpu.X86.HasFMA || runtime.GOARCH == "arm64" ||
	runtime.GOARCH == "ppc64" || runtime.GOARCH == "ppc64le" ||
	runtime.GOARCH == "s390x" || runtime.GOARCH == "riscv64"

func is32[F constraints.Float](x F) bool {
	return unsafe.Sizeof(x) == 4
}

func fma[F constraints.Float](a, b, c F) F {
	if HasFMA {
		return F(math.FMA(float64(a), float64(b), float64(c)))
	}
	return a*b + c
}

func sqrt[F constraints.Float](x F) F {
	if is32(x) {
		return F(math32.Sqrt(float32(x)))
	}
	return F(math.Sqrt(float64(x)))
}

func invSqrt[F constraints.Float](x F) F {
	return 1 / sqrt(x)
}

func abs[F constraints.Float](x F) F {
	if is32(x) {
		return F(math32.Abs(float32(x)))
	}
	return F(math.Abs(float64(x)))
}

func trunc[F constraints.Float](x F) F {
	if is32(x) {
		return F(math32.Trunc(float32(x)))
	}
	return F(math.Trunc(float64(x)))
}

// sign keeps zeros (with their sign bit) and NaN unchanged.
func sign[F constraints.Float](x F) F {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return x
}

func clamp01[F constraints.Float](x F) F {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}
