package vecd

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Constructors(t *testing.T) {
	assert.Equal(t, [3]float64{0, 0, 0}, NewVec3[float64]().Array())
	assert.Equal(t, [3]float64{4, 5, 6}, NewVec3From[float64](Of(4.0, 5.0, 6.0)).Array())
	assert.Equal(t, [3]float32{1, 2, 3}, NewVec3Slice([]float32{1, 2, 3, 4}).Array())

	assert.PanicsWithError(t, (&IndexError{Index: 2, Len: 2}).Error(), func() {
		NewVec3Slice([]float32{1, 2})
	})
	assert.PanicsWithError(t, (&LengthError{Got: 2, Want: 3}).Error(), func() {
		NewVec3From[float64](Of(1.0, 2.0))
	})
}

func TestVec3Accessors(t *testing.T) {
	v := NewVec3[float32]()
	assert.Same(t, v, v.SetX(1).SetY(2).SetZ(3))
	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(2), v.At(1))

	v.SetAt(2, 7)
	assert.Equal(t, float32(7), v.Z())
	v.Set(4, 5, 6)
	assert.Equal(t, [3]float32{4, 5, 6}, v.Array())
	v.SetTuple(Of[float32](-1, -2, -3))
	assert.Equal(t, [3]float32{-1, -2, -3}, v.Array())

	assert.Equal(t, "(1, 2.5, -3)", XYZ(1.0, 2.5, -3.0).String())
}

func TestVec3Immutable(t *testing.T) {
	v := XYZ(1.0, 2.0, 3.0)
	o := XYZ(-1.0, 4.0, 0.5)
	ops := map[string]func() *Vec3[float64]{
		"Sub":       func() *Vec3[float64] { return v.Sub(o) },
		"MulAdd":    func() *Vec3[float64] { return v.MulAdd(o, o) },
		"Normalize": func() *Vec3[float64] { return v.Normalize() },
		"Cross":     func() *Vec3[float64] { return v.Cross(o) },
		"Reflect":   func() *Vec3[float64] { return v.Reflect(o) },
		"Abs":       func() *Vec3[float64] { return v.Abs() },
		"Swizzle":   func() *Vec3[float64] { return v.Swizzle(1, 2, 0) },
		"SwapXZ":    func() *Vec3[float64] { return v.SwapXZ() },
		"Lerp":      func() *Vec3[float64] { return v.Lerp(0.3, o) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			res := op()
			assert.NotSame(t, v, res)
			assert.Equal(t, [3]float64{1, 2, 3}, v.Array())
			assert.Equal(t, [3]float64{-1, 4, 0.5}, o.Array())
		})
	}
}

func TestVec3MutableMatchesImmutable(t *testing.T) {
	o := XYZ(-1.0, 4.0, 0.5)
	pairs := map[string][2]func(v *Vec3[float64]) *Vec3[float64]{
		"RevSub": {
			func(v *Vec3[float64]) *Vec3[float64] { return v.RevSub(o) },
			func(v *Vec3[float64]) *Vec3[float64] { return v.RevSubSelf(o) },
		},
		"RevDivScalar": {
			func(v *Vec3[float64]) *Vec3[float64] { return v.RevDivScalar(2) },
			func(v *Vec3[float64]) *Vec3[float64] { return v.RevDivScalarSelf(2) },
		},
		"Project": {
			func(v *Vec3[float64]) *Vec3[float64] { return v.Project(o) },
			func(v *Vec3[float64]) *Vec3[float64] { return v.ProjectSelf(o) },
		},
		"MidPoint": {
			func(v *Vec3[float64]) *Vec3[float64] { return v.MidPoint(o) },
			func(v *Vec3[float64]) *Vec3[float64] { return v.MidPointSelf(o) },
		},
		"SmootherStep": {
			func(v *Vec3[float64]) *Vec3[float64] { return v.SmootherStep(0.25, o) },
			func(v *Vec3[float64]) *Vec3[float64] { return v.SmootherStepSelf(0.25, o) },
		},
	}
	for name, pair := range pairs {
		t.Run(name, func(t *testing.T) {
			v := XYZ(1.0, 2.0, 3.0)
			expected := pair[0](v)
			actual := pair[1](v)
			assert.Same(t, v, actual)
			assert.Equal(t, expected.Array(), actual.Array())
		})
	}
}

func TestVec3Equality(t *testing.T) {
	v := XYZ(1.0, 2.0, 3.0)
	assert.True(t, v.Equal(Of(1.0, 2.0, 3.0)))
	assert.False(t, v.Equal(Of(1.0, 2.0)))
	assert.False(t, v.Equal(XYZ(1.0, 2.0, 3.0000001)))

	assert.True(t, v.ApproxEqual(XYZ(1.0, 2.0, 3.0000001)))
	assert.False(t, v.ApproxEqual(XYZ(1.0, 2.0, 3.0001)))
	assert.True(t, v.RoughlyEqual(XYZ(1.0, 2.0, 3.0001)))
	assert.False(t, v.RoughlyEqual(XYZ(1.0, 2.0, 3.01)))

	assert.True(t, v.EqualWithin(XYZ(1.5, 2.0, 2.5), 0.5))
	assert.False(t, v.EqualWithin(XYZ(1.5, 2.0, 2.5), 0.4))
	assert.True(t, v.EqualWithinEach(XYZ(1.5, 2.1, 3.0), 0.5, 0.1+1e-9, 0))
	assert.False(t, v.EqualWithinEach(XYZ(1.5, 2.1, 3.0), 0.1, 0.5, 0))

	nan := XYZ(math.NaN(), 0, 0)
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.EqualWithin(nan, math.Inf(1)))
}

func TestVec3Hash(t *testing.T) {
	a := XYZ(1.0, -0.0, 3.0)
	b := XYZ(1.0, math.Copysign(0, -1), 3.0)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), Hash[float64](Of(1.0, 0.0, 3.0)))
	assert.NotEqual(t, a.Hash(), XYZ(3.0, 0.0, 1.0).Hash())

	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		seen[XYZ[float32](float32(i), 0, 0).Hash()] = true
	}
	assert.Len(t, seen, 100)
}

func TestVec3Buffer(t *testing.T) {
	buf := make([]float32, 8)
	v := XYZ[float32](1, 2, 3)
	res := v.WriteBuffer(buf, 4)
	assert.Same(t, &buf[0], &res[0])
	assert.Equal(t, []float32{0, 0, 0, 0, 1, 2, 3, 0}, buf)

	w := NewVec3[float32]()
	assert.Same(t, w, w.ReadBuffer(buf, 4))
	assert.True(t, w.Equal(v))

	assert.PanicsWithError(t, (&IndexError{Index: 8, Len: 8}).Error(), func() {
		v.WriteBuffer(buf, 6)
	})
	assert.PanicsWithError(t, (&IndexError{Index: 1, Len: 8}).Error(), func() {
		w.ReadBuffer(buf, -1)
	})
}

func TestVec3JSON(t *testing.T) {
	v := XYZ(1.5, -2.0, 3.0)
	data, err := json.Marshal(v)
	require.Nil(t, err)
	assert.Equal(t, "[1.5,-2,3]", string(data))

	var w Vec3D
	require.Nil(t, json.Unmarshal(data, &w))
	assert.True(t, w.Equal(v))
}
