package vecd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/model3d/model3d"
)

func TestSinkModesAgree(t *testing.T) {
	a := XYZ[float32](1, 2, 3)
	b := Of[float32](4, 5, 6)
	want := [3]float32{5, 7, 9}

	t.Run("Self", func(t *testing.T) {
		v := a.Copy()
		res := Add(v, b, Into[float32](v))
		assert.Same(t, v, res)
		assert.Equal(t, want, v.Array())
	})

	t.Run("Buffer", func(t *testing.T) {
		buf := make([]float32, 5)
		res := Add(a, b, Buffer(buf))
		assert.Equal(t, []float32{5, 7, 9, 0, 0}, res)
		assert.Same(t, &buf[0], &res[0])
	})

	t.Run("Writable", func(t *testing.T) {
		dst := NewVec3[float32]()
		res := Add(a, b, Into[float32](dst))
		assert.Same(t, dst, res)
		assert.Equal(t, want, dst.Array())

		var slice Slice[float32] = make([]float32, 3)
		Add(a, b, Into[float32](slice))
		assert.Equal(t, want[:], []float32(slice))
	})

	t.Run("Factory", func(t *testing.T) {
		res := Add(a, b, Vec3Sink[float32]())
		assert.Equal(t, want, res.Array())
		assert.NotSame(t, a, res)
		assert.Equal(t, [3]float32{1, 2, 3}, a.Array())

		arr := Add(a, b, New3(func(x, y, z float32) [3]float32 {
			return [3]float32{x, y, z}
		}))
		assert.Equal(t, want, arr)
	})

	t.Run("ModelTarget", func(t *testing.T) {
		var c model3d.Coord3D
		Add(a, b, Into[float32](Coord3DTarget[float32]{C: &c}))
		assert.Equal(t, model3d.XYZ(5, 7, 9), c)
	})
}

func TestSinkAliasing(t *testing.T) {
	// Writing into the second operand must not affect the computation.
	a := XYZ(1.0, 2.0, 3.0)
	b := XYZ(4.0, 5.0, 6.0)
	Cross(a, b, Into[float64](b))
	assert.Equal(t, [3]float64{-3, 6, -3}, b.Array())
}

func TestSinkErrors(t *testing.T) {
	a := XYZ[float32](1, 2, 3)

	assert.PanicsWithError(t, (&IndexError{Index: 2, Len: 2}).Error(), func() {
		Neg(a, Buffer(make([]float32, 2)))
	})
	assert.PanicsWithError(t, (&LengthError{Got: 2, Want: 3}).Error(), func() {
		Neg(a, Into[float32](NewVec2[float32]()))
	})
	assert.PanicsWithError(t, (&LengthError{Got: 3, Want: 2}).Error(), func() {
		Neg(a, Vec2Sink[float32]())
	})
	assert.PanicsWithError(t, (&LengthError{Got: 2, Want: 3}).Error(), func() {
		Add(a, XY[float32](1, 2), Vec3Sink[float32]())
	})
}

func TestResultSnapshot(t *testing.T) {
	res := Scale(Of(1.0, 2.0), 3, New2(func(x, y float64) Result[float64] {
		r := newResult[float64](2)
		r.c[0], r.c[1] = x, y
		return r
	}))
	require.Equal(t, 2, res.Len())
	assert.Equal(t, 6.0, res.At(1))
}
