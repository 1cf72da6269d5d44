package vecd

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec3 is a mutable 3-component vector.
//
// Each kernel operation is available as a method ending in Self, which
// stores the result in v and returns v, and as a method without the suffix,
// which leaves v untouched and returns a new vector. To write a result into
// any other destination, call the package-level function with a Sink.
type Vec3[F constraints.Float] struct {
	c [3]F
}

type (
	Vec3F = Vec3[float32]
	Vec3D = Vec3[float64]
)

// NewVec3 creates a zero vector.
func NewVec3[F constraints.Float]() *Vec3[F] {
	return &Vec3[F]{}
}

func XYZ[F constraints.Float](x, y, z F) *Vec3[F] {
	return &Vec3[F]{c: [3]F{x, y, z}}
}

// NewVec3From copies a 3-component tuple.
func NewVec3From[F constraints.Float](t Tuple[F]) *Vec3[F] {
	checkLen(t.Len(), 3)
	return XYZ(t.At(0), t.At(1), t.At(2))
}

// NewVec3Slice copies the first three entries of s.
func NewVec3Slice[F constraints.Float](s []F) *Vec3[F] {
	if len(s) < 3 {
		panic(&IndexError{Index: 2, Len: len(s)})
	}
	return XYZ(s[0], s[1], s[2])
}

// Vec3Sink creates a Sink which builds new vectors.
func Vec3Sink[F constraints.Float]() Sink[F, *Vec3[F]] {
	return New3(XYZ[F])
}

func (v *Vec3[F]) Len() int {
	return 3
}

func (v *Vec3[F]) At(i int) F {
	checkIndex(i, 3)
	return v.c[i]
}

func (v *Vec3[F]) SetAt(i int, x F) {
	checkIndex(i, 3)
	v.c[i] = x
}

func (v *Vec3[F]) X() F {
	return v.c[0]
}

func (v *Vec3[F]) Y() F {
	return v.c[1]
}

func (v *Vec3[F]) Z() F {
	return v.c[2]
}

func (v *Vec3[F]) SetX(x F) *Vec3[F] {
	v.c[0] = x
	return v
}

func (v *Vec3[F]) SetY(y F) *Vec3[F] {
	v.c[1] = y
	return v
}

func (v *Vec3[F]) SetZ(z F) *Vec3[F] {
	v.c[2] = z
	return v
}

func (v *Vec3[F]) Set(x, y, z F) *Vec3[F] {
	v.c = [3]F{x, y, z}
	return v
}

// SetTuple copies the components of a 3-component tuple into v.
func (v *Vec3[F]) SetTuple(t Tuple[F]) *Vec3[F] {
	checkLen(t.Len(), 3)
	return v.Set(t.At(0), t.At(1), t.At(2))
}

// Array returns a copy of the components.
func (v *Vec3[F]) Array() [3]F {
	return v.c
}

func (v *Vec3[F]) Copy() *Vec3[F] {
	return &Vec3[F]{c: v.c}
}

func (v *Vec3[F]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.c[0], v.c[1], v.c[2])
}

func (v *Vec3[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.c)
}

func (v *Vec3[F]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.c)
}

func (v *Vec3[F]) self() Sink[F, *Vec3[F]] {
	return Into[F](v)
}

func (v *Vec3[F]) AddSelf(o Tuple[F]) *Vec3[F] {
	return Add(v, o, v.self())
}

func (v *Vec3[F]) Add(o Tuple[F]) *Vec3[F] {
	return v.Copy().AddSelf(o)
}

func (v *Vec3[F]) SubSelf(o Tuple[F]) *Vec3[F] {
	return Sub(v, o, v.self())
}

func (v *Vec3[F]) Sub(o Tuple[F]) *Vec3[F] {
	return v.Copy().SubSelf(o)
}

// RevSubSelf sets v to o - v.
func (v *Vec3[F]) RevSubSelf(o Tuple[F]) *Vec3[F] {
	return RevSub(v, o, v.self())
}

func (v *Vec3[F]) RevSub(o Tuple[F]) *Vec3[F] {
	return v.Copy().RevSubSelf(o)
}

func (v *Vec3[F]) MulSelf(o Tuple[F]) *Vec3[F] {
	return Mul(v, o, v.self())
}

func (v *Vec3[F]) Mul(o Tuple[F]) *Vec3[F] {
	return v.Copy().MulSelf(o)
}

func (v *Vec3[F]) DivSelf(o Tuple[F]) *Vec3[F] {
	return Div(v, o, v.self())
}

func (v *Vec3[F]) Div(o Tuple[F]) *Vec3[F] {
	return v.Copy().DivSelf(o)
}

// RevDivSelf sets v to o / v.
func (v *Vec3[F]) RevDivSelf(o Tuple[F]) *Vec3[F] {
	return RevDiv(v, o, v.self())
}

func (v *Vec3[F]) RevDiv(o Tuple[F]) *Vec3[F] {
	return v.Copy().RevDivSelf(o)
}

// MulAddSelf sets v to v*m + a.
func (v *Vec3[F]) MulAddSelf(m, a Tuple[F]) *Vec3[F] {
	return MulAdd(v, m, a, v.self())
}

func (v *Vec3[F]) MulAdd(m, a Tuple[F]) *Vec3[F] {
	return v.Copy().MulAddSelf(m, a)
}

func (v *Vec3[F]) AddScalarSelf(s F) *Vec3[F] {
	return AddScalar(v, s, v.self())
}

func (v *Vec3[F]) AddScalar(s F) *Vec3[F] {
	return v.Copy().AddScalarSelf(s)
}

func (v *Vec3[F]) SubScalarSelf(s F) *Vec3[F] {
	return SubScalar(v, s, v.self())
}

func (v *Vec3[F]) SubScalar(s F) *Vec3[F] {
	return v.Copy().SubScalarSelf(s)
}

func (v *Vec3[F]) RevSubScalarSelf(s F) *Vec3[F] {
	return RevSubScalar(v, s, v.self())
}

func (v *Vec3[F]) RevSubScalar(s F) *Vec3[F] {
	return v.Copy().RevSubScalarSelf(s)
}

func (v *Vec3[F]) ScaleSelf(s F) *Vec3[F] {
	return Scale(v, s, v.self())
}

func (v *Vec3[F]) Scale(s F) *Vec3[F] {
	return v.Copy().ScaleSelf(s)
}

func (v *Vec3[F]) DivScalarSelf(s F) *Vec3[F] {
	return DivScalar(v, s, v.self())
}

func (v *Vec3[F]) DivScalar(s F) *Vec3[F] {
	return v.Copy().DivScalarSelf(s)
}

func (v *Vec3[F]) RevDivScalarSelf(s F) *Vec3[F] {
	return RevDivScalar(v, s, v.self())
}

func (v *Vec3[F]) RevDivScalar(s F) *Vec3[F] {
	return v.Copy().RevDivScalarSelf(s)
}

func (v *Vec3[F]) MulAddScalarSelf(m, a F) *Vec3[F] {
	return MulAddScalar(v, m, a, v.self())
}

func (v *Vec3[F]) MulAddScalar(m, a F) *Vec3[F] {
	return v.Copy().MulAddScalarSelf(m, a)
}

func (v *Vec3[F]) Dot(o Tuple[F]) F {
	return Dot[F](v, o)
}

func (v *Vec3[F]) Norm() F {
	return Len[F](v)
}

func (v *Vec3[F]) NormSquared() F {
	return LenSq[F](v)
}

// NormTolerance is like Norm, but returns 0 when the squared norm is within
// [0, tolerance].
func (v *Vec3[F]) NormTolerance(tolerance F) F {
	return LenTolerance[F](v, tolerance)
}

func (v *Vec3[F]) InvNorm() F {
	return InvLen[F](v)
}

func (v *Vec3[F]) Dist(o Tuple[F]) F {
	return Dist[F](v, o)
}

func (v *Vec3[F]) SquaredDist(o Tuple[F]) F {
	return DistSq[F](v, o)
}

func (v *Vec3[F]) InvDist(o Tuple[F]) F {
	return InvDist[F](v, o)
}

func (v *Vec3[F]) NormalizeSelf() *Vec3[F] {
	return Normalize(v, v.self())
}

func (v *Vec3[F]) Normalize() *Vec3[F] {
	return v.Copy().NormalizeSelf()
}

func (v *Vec3[F]) NormalizeToleranceSelf(tolerance F) *Vec3[F] {
	return NormalizeTolerance(v, tolerance, v.self())
}

func (v *Vec3[F]) NormalizeTolerance(tolerance F) *Vec3[F] {
	return v.Copy().NormalizeToleranceSelf(tolerance)
}

func (v *Vec3[F]) CrossSelf(o Tuple[F]) *Vec3[F] {
	return Cross(v, o, v.self())
}

func (v *Vec3[F]) Cross(o Tuple[F]) *Vec3[F] {
	return v.Copy().CrossSelf(o)
}

// ProjectSelf projects v onto the unit axis t.
func (v *Vec3[F]) ProjectSelf(t Tuple[F]) *Vec3[F] {
	return Project(v, t, v.self())
}

func (v *Vec3[F]) Project(t Tuple[F]) *Vec3[F] {
	return v.Copy().ProjectSelf(t)
}

// ReflectSelf reflects v about the unit normal n.
func (v *Vec3[F]) ReflectSelf(n Tuple[F]) *Vec3[F] {
	return Reflect(v, n, v.self())
}

func (v *Vec3[F]) Reflect(n Tuple[F]) *Vec3[F] {
	return v.Copy().ReflectSelf(n)
}

// HalfVectorSelf sets v to half of the vector from v to o.
func (v *Vec3[F]) HalfVectorSelf(o Tuple[F]) *Vec3[F] {
	return HalfVector(v, o, v.self())
}

func (v *Vec3[F]) HalfVector(o Tuple[F]) *Vec3[F] {
	return v.Copy().HalfVectorSelf(o)
}

func (v *Vec3[F]) MidPointSelf(o Tuple[F]) *Vec3[F] {
	return MidPoint(v, o, v.self())
}

func (v *Vec3[F]) MidPoint(o Tuple[F]) *Vec3[F] {
	return v.Copy().MidPointSelf(o)
}

func (v *Vec3[F]) MinSelf(o Tuple[F]) *Vec3[F] {
	return Min(v, o, v.self())
}

func (v *Vec3[F]) Min(o Tuple[F]) *Vec3[F] {
	return v.Copy().MinSelf(o)
}

func (v *Vec3[F]) MaxSelf(o Tuple[F]) *Vec3[F] {
	return Max(v, o, v.self())
}

func (v *Vec3[F]) Max(o Tuple[F]) *Vec3[F] {
	return v.Copy().MaxSelf(o)
}

func (v *Vec3[F]) MinComponent() IndexValue[F] {
	return MinComponent[F](v)
}

func (v *Vec3[F]) MaxComponent() IndexValue[F] {
	return MaxComponent[F](v)
}

func (v *Vec3[F]) AbsSelf() *Vec3[F] {
	return Abs(v, v.self())
}

func (v *Vec3[F]) Abs() *Vec3[F] {
	return v.Copy().AbsSelf()
}

func (v *Vec3[F]) SignSelf() *Vec3[F] {
	return Sign(v, v.self())
}

func (v *Vec3[F]) Sign() *Vec3[F] {
	return v.Copy().SignSelf()
}

func (v *Vec3[F]) NegSelf() *Vec3[F] {
	return Neg(v, v.self())
}

func (v *Vec3[F]) Neg() *Vec3[F] {
	return v.Copy().NegSelf()
}

func (v *Vec3[F]) RecipSelf() *Vec3[F] {
	return Recip(v, v.self())
}

func (v *Vec3[F]) Recip() *Vec3[F] {
	return v.Copy().RecipSelf()
}

func (v *Vec3[F]) TruncSelf() *Vec3[F] {
	return Trunc(v, v.self())
}

func (v *Vec3[F]) Trunc() *Vec3[F] {
	return v.Copy().TruncSelf()
}

func (v *Vec3[F]) SwizzleSelf(i, j, k int) *Vec3[F] {
	return Swizzle(v, []int{i, j, k}, v.self())
}

func (v *Vec3[F]) Swizzle(i, j, k int) *Vec3[F] {
	return v.Copy().SwizzleSelf(i, j, k)
}

func (v *Vec3[F]) SwapSelf(i, j int) *Vec3[F] {
	return Swap(v, i, j, v.self())
}

func (v *Vec3[F]) Swap(i, j int) *Vec3[F] {
	return v.Copy().SwapSelf(i, j)
}

func (v *Vec3[F]) SwapXYSelf() *Vec3[F] {
	return v.SwapSelf(0, 1)
}

func (v *Vec3[F]) SwapXY() *Vec3[F] {
	return v.Swap(0, 1)
}

func (v *Vec3[F]) SwapXZSelf() *Vec3[F] {
	return v.SwapSelf(0, 2)
}

func (v *Vec3[F]) SwapXZ() *Vec3[F] {
	return v.Swap(0, 2)
}

func (v *Vec3[F]) SwapYZSelf() *Vec3[F] {
	return v.SwapSelf(1, 2)
}

func (v *Vec3[F]) SwapYZ() *Vec3[F] {
	return v.Swap(1, 2)
}

func (v *Vec3[F]) LerpSelf(alpha F, o Tuple[F]) *Vec3[F] {
	return Lerp(alpha, v, o, v.self())
}

func (v *Vec3[F]) Lerp(alpha F, o Tuple[F]) *Vec3[F] {
	return v.Copy().LerpSelf(alpha, o)
}

func (v *Vec3[F]) StepSelf(alpha, midpoint F, o Tuple[F]) *Vec3[F] {
	return Step(alpha, midpoint, v, o, v.self())
}

func (v *Vec3[F]) Step(alpha, midpoint F, o Tuple[F]) *Vec3[F] {
	return v.Copy().StepSelf(alpha, midpoint, o)
}

func (v *Vec3[F]) SmoothStepSelf(alpha F, o Tuple[F]) *Vec3[F] {
	return SmoothStep(alpha, v, o, v.self())
}

func (v *Vec3[F]) SmoothStep(alpha F, o Tuple[F]) *Vec3[F] {
	return v.Copy().SmoothStepSelf(alpha, o)
}

func (v *Vec3[F]) SmootherStepSelf(alpha F, o Tuple[F]) *Vec3[F] {
	return SmootherStep(alpha, v, o, v.self())
}

func (v *Vec3[F]) SmootherStep(alpha F, o Tuple[F]) *Vec3[F] {
	return v.Copy().SmootherStepSelf(alpha, o)
}

func (v *Vec3[F]) IntLerpSelf(alpha F, o Tuple[F]) *Vec3[F] {
	return IntLerp(alpha, v, o, v.self())
}

func (v *Vec3[F]) IntLerp(alpha F, o Tuple[F]) *Vec3[F] {
	return v.Copy().IntLerpSelf(alpha, o)
}

// Equal checks for exact component equality with o.
func (v *Vec3[F]) Equal(o Tuple[F]) bool {
	return Equal[F](v, o)
}

// ApproxEqual checks for equality up to Epsilon per component.
func (v *Vec3[F]) ApproxEqual(o Tuple[F]) bool {
	return EqualWithin[F](v, o, Epsilon)
}

// RoughlyEqual checks for equality up to RoughEpsilon per component.
func (v *Vec3[F]) RoughlyEqual(o Tuple[F]) bool {
	return EqualWithin[F](v, o, RoughEpsilon)
}

func (v *Vec3[F]) EqualWithin(o Tuple[F], eps F) bool {
	return EqualWithin[F](v, o, eps)
}

func (v *Vec3[F]) EqualWithinEach(o Tuple[F], epsX, epsY, epsZ F) bool {
	return EqualWithinEach[F](v, o, Of(epsX, epsY, epsZ))
}

func (v *Vec3[F]) Hash() uint64 {
	return Hash[F](v)
}

// WriteBuffer copies the components into buf at the given element offset.
func (v *Vec3[F]) WriteBuffer(buf []F, offset int) []F {
	return WriteBuffer[F](v, buf, offset)
}

// ReadBuffer sets the components from buf at the given element offset.
func (v *Vec3[F]) ReadBuffer(buf []F, offset int) *Vec3[F] {
	return ReadBuffer[F](v, buf, offset)
}
