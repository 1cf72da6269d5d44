package vecd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	a := XYZ(1.0, 5.0, -3.0)
	b := XYZ(2.0, -1.0, -3.0)
	assert.Equal(t, [3]float64{1, -1, -3}, a.Min(b).Array())
	assert.Equal(t, [3]float64{2, 5, -3}, a.Max(b).Array())

	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		a := XY(gen.NormFloat64(), gen.NormFloat64())
		b := XY(gen.NormFloat64(), gen.NormFloat64())
		lo, hi := a.Min(b), a.Max(b)
		require.True(t, lo.Add(hi).ApproxEqual(a.Add(b)))
	}
}

func TestExtremeComponent(t *testing.T) {
	v := XYZ[float32](5, -2, 7)
	assert.Equal(t, IndexValue[float32]{Index: 1, Value: -2}, v.MinComponent())
	assert.Equal(t, IndexValue[float32]{Index: 2, Value: 7}, v.MaxComponent())

	ties := Of(4.0, 1.0, 1.0)
	assert.Equal(t, 1, MinComponent[float64](ties).Index)
	assert.Equal(t, 0, MaxComponent[float64](Of(4.0, 4.0, 1.0)).Index)
	assert.Equal(t, 0, MinComponent[float64](Of(2.0, 2.0)).Index)

	var dst IndexValue[float64]
	res := MaxComponentInto[float64](Of(-1.0, 3.0), &dst)
	assert.Same(t, &dst, res)
	assert.Equal(t, IndexValue[float64]{Index: 1, Value: 3}, dst)
	MinComponentInto[float64](Of(-1.0, 3.0), &dst)
	assert.Equal(t, IndexValue[float64]{Index: 0, Value: -1}, dst)
}

func TestUnaryComponents(t *testing.T) {
	v := XYZ(-2.5, 0.0, 3.75)
	assert.Equal(t, [3]float64{2.5, 0, 3.75}, v.Abs().Array())
	assert.Equal(t, [3]float64{-1, 0, 1}, v.Sign().Array())
	assert.Equal(t, [3]float64{2.5, 0, -3.75}, v.Neg().Array())
	assert.Equal(t, [3]float64{-2, 0, 3}, v.Trunc().Array())
	assert.Equal(t, [3]float64{-2.5, 0, 3.75}, v.Array())

	r := XY[float32](4, -0.5).Recip()
	assert.Equal(t, [2]float32{0.25, -2}, r.Array())

	nan := XY(math.NaN(), math.Copysign(0, -1)).Sign()
	assert.True(t, math.IsNaN(nan.X()))
	assert.True(t, math.Signbit(nan.Y()))

	f := XYZ[float32](-1.9, 1.9, -0.1).TruncSelf()
	assert.Equal(t, [3]float32{-1, 1, 0}, f.Array())
}

func TestSwizzle(t *testing.T) {
	v := XYZ(1.0, 2.0, 3.0)
	assert.Equal(t, [3]float64{3, 1, 2}, v.Swizzle(2, 0, 1).Array())
	assert.Equal(t, [3]float64{1, 1, 1}, v.Swizzle(0, 0, 0).Array())

	// In-place swizzles read every component before writing any.
	res := v.SwizzleSelf(2, 0, 1)
	assert.Same(t, v, res)
	assert.Equal(t, [3]float64{3, 1, 2}, v.Array())

	w := XY[float32](1, 2)
	w.SwizzleSelf(1, 0)
	assert.Equal(t, [2]float32{2, 1}, w.Array())

	buf := Swizzle[float64](Of(1.0, 2.0, 3.0), []int{1, 1, 2}, Buffer(make([]float64, 4)))
	assert.Equal(t, []float64{2, 2, 3, 0}, buf)

	assert.PanicsWithError(t, (&IndexError{Index: 3, Len: 3}).Error(), func() {
		v.Swizzle(0, 3, 1)
	})
	assert.PanicsWithError(t, (&IndexError{Index: -1, Len: 2}).Error(), func() {
		w.Swizzle(-1, 0)
	})
	assert.PanicsWithError(t, (&LengthError{Got: 2, Want: 3}).Error(), func() {
		Swizzle[float64](v, []int{0, 1}, Vec3Sink[float64]())
	})
}

func TestSwap(t *testing.T) {
	v := XYZ(1.0, 2.0, 3.0)
	assert.Equal(t, [3]float64{2, 1, 3}, v.SwapXY().Array())
	assert.Equal(t, [3]float64{3, 2, 1}, v.SwapXZ().Array())
	assert.Equal(t, [3]float64{1, 3, 2}, v.SwapYZ().Array())
	assert.Equal(t, [3]float64{1, 2, 3}, v.Swap(1, 1).Array())

	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		v := XYZ(gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64())
		a, b := gen.Intn(3), gen.Intn(3)
		require.True(t, v.Swap(a, b).SwapSelf(a, b).Equal(v))
	}

	w := XY[float32](1, 2)
	w.SwapXYSelf()
	assert.Equal(t, [2]float32{2, 1}, w.Array())

	assert.PanicsWithError(t, (&IndexError{Index: 2, Len: 2}).Error(), func() {
		w.Swap(0, 2)
	})
}
