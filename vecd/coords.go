package vecd

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// Coord3D views a model3d coordinate as a Tuple, converting its components
// to F.
func Coord3D[F constraints.Float](c model3d.Coord3D) Tuple[F] {
	return coord3DTuple[F](c)
}

type coord3DTuple[F constraints.Float] model3d.Coord3D

func (c coord3DTuple[F]) Len() int {
	return 3
}

func (c coord3DTuple[F]) At(i int) F {
	return F(coord3DAt((*model3d.Coord3D)(&c), i))
}

// Coord3DTarget is a Writable which stores results in a model3d coordinate.
type Coord3DTarget[F constraints.Float] struct {
	C *model3d.Coord3D
}

func (c Coord3DTarget[F]) Len() int {
	return 3
}

func (c Coord3DTarget[F]) At(i int) F {
	return F(coord3DAt(c.C, i))
}

func (c Coord3DTarget[F]) SetAt(i int, x F) {
	switch i {
	case 0:
		c.C.X = float64(x)
	case 1:
		c.C.Y = float64(x)
	case 2:
		c.C.Z = float64(x)
	default:
		panic(&IndexError{Index: i, Len: 3})
	}
}

func coord3DAt(c *model3d.Coord3D, i int) float64 {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.Z
	}
	panic(&IndexError{Index: i, Len: 3})
}

// Coord3D converts v to a model3d coordinate.
func (v *Vec3[F]) Coord3D() model3d.Coord3D {
	return model3d.XYZ(float64(v.c[0]), float64(v.c[1]), float64(v.c[2]))
}

// Coord2D views a model2d coordinate as a Tuple, converting its components
// to F.
func Coord2D[F constraints.Float](c model2d.Coord) Tuple[F] {
	return coord2DTuple[F](c)
}

type coord2DTuple[F constraints.Float] model2d.Coord

func (c coord2DTuple[F]) Len() int {
	return 2
}

func (c coord2DTuple[F]) At(i int) F {
	return F(coord2DAt((*model2d.Coord)(&c), i))
}

// Coord2DTarget is a Writable which stores results in a model2d coordinate.
type Coord2DTarget[F constraints.Float] struct {
	C *model2d.Coord
}

func (c Coord2DTarget[F]) Len() int {
	return 2
}

func (c Coord2DTarget[F]) At(i int) F {
	return F(coord2DAt(c.C, i))
}

func (c Coord2DTarget[F]) SetAt(i int, x F) {
	switch i {
	case 0:
		c.C.X = float64(x)
	case 1:
		c.C.Y = float64(x)
	default:
		panic(&IndexError{Index: i, Len: 2})
	}
}

func coord2DAt(c *model2d.Coord, i int) float64 {
	switch i {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	panic(&IndexError{Index: i, Len: 2})
}

func (v *Vec2[F]) Coord2D() model2d.Coord {
	return model2d.XY(float64(v.c[0]), float64(v.c[1]))
}
