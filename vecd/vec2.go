package vecd

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec2 is a mutable 2-component vector.
//
// Methods follow the same Self and copying conventions as Vec3.
type Vec2[F constraints.Float] struct {
	c [2]F
}

type (
	Vec2F = Vec2[float32]
	Vec2D = Vec2[float64]
)

// NewVec2 creates a zero vector.
func NewVec2[F constraints.Float]() *Vec2[F] {
	return &Vec2[F]{}
}

func XY[F constraints.Float](x, y F) *Vec2[F] {
	return &Vec2[F]{c: [2]F{x, y}}
}

// NewVec2From copies a 2-component tuple.
func NewVec2From[F constraints.Float](t Tuple[F]) *Vec2[F] {
	checkLen(t.Len(), 2)
	return XY(t.At(0), t.At(1))
}

// NewVec2Slice copies the first two entries of s.
func NewVec2Slice[F constraints.Float](s []F) *Vec2[F] {
	if len(s) < 2 {
		panic(&IndexError{Index: 1, Len: len(s)})
	}
	return XY(s[0], s[1])
}

// Vec2Sink creates a Sink which builds new vectors.
func Vec2Sink[F constraints.Float]() Sink[F, *Vec2[F]] {
	return New2(XY[F])
}

func (v *Vec2[F]) Len() int {
	return 2
}

func (v *Vec2[F]) At(i int) F {
	checkIndex(i, 2)
	return v.c[i]
}

func (v *Vec2[F]) SetAt(i int, x F) {
	checkIndex(i, 2)
	v.c[i] = x
}

func (v *Vec2[F]) X() F {
	return v.c[0]
}

func (v *Vec2[F]) Y() F {
	return v.c[1]
}

func (v *Vec2[F]) SetX(x F) *Vec2[F] {
	v.c[0] = x
	return v
}

func (v *Vec2[F]) SetY(y F) *Vec2[F] {
	v.c[1] = y
	return v
}

func (v *Vec2[F]) Set(x, y F) *Vec2[F] {
	v.c = [2]F{x, y}
	return v
}

// SetTuple copies the components of a 2-component tuple into v.
func (v *Vec2[F]) SetTuple(t Tuple[F]) *Vec2[F] {
	checkLen(t.Len(), 2)
	return v.Set(t.At(0), t.At(1))
}

func (v *Vec2[F]) Array() [2]F {
	return v.c
}

func (v *Vec2[F]) Copy() *Vec2[F] {
	return &Vec2[F]{c: v.c}
}

func (v *Vec2[F]) String() string {
	return fmt.Sprintf("(%v, %v)", v.c[0], v.c[1])
}

func (v *Vec2[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.c)
}

func (v *Vec2[F]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.c)
}

func (v *Vec2[F]) self() Sink[F, *Vec2[F]] {
	return Into[F](v)
}

func (v *Vec2[F]) AddSelf(o Tuple[F]) *Vec2[F] {
	return Add(v, o, v.self())
}

func (v *Vec2[F]) Add(o Tuple[F]) *Vec2[F] {
	return v.Copy().AddSelf(o)
}

func (v *Vec2[F]) SubSelf(o Tuple[F]) *Vec2[F] {
	return Sub(v, o, v.self())
}

func (v *Vec2[F]) Sub(o Tuple[F]) *Vec2[F] {
	return v.Copy().SubSelf(o)
}

func (v *Vec2[F]) RevSubSelf(o Tuple[F]) *Vec2[F] {
	return RevSub(v, o, v.self())
}

func (v *Vec2[F]) RevSub(o Tuple[F]) *Vec2[F] {
	return v.Copy().RevSubSelf(o)
}

func (v *Vec2[F]) MulSelf(o Tuple[F]) *Vec2[F] {
	return Mul(v, o, v.self())
}

func (v *Vec2[F]) Mul(o Tuple[F]) *Vec2[F] {
	return v.Copy().MulSelf(o)
}

func (v *Vec2[F]) DivSelf(o Tuple[F]) *Vec2[F] {
	return Div(v, o, v.self())
}

func (v *Vec2[F]) Div(o Tuple[F]) *Vec2[F] {
	return v.Copy().DivSelf(o)
}

func (v *Vec2[F]) RevDivSelf(o Tuple[F]) *Vec2[F] {
	return RevDiv(v, o, v.self())
}

func (v *Vec2[F]) RevDiv(o Tuple[F]) *Vec2[F] {
	return v.Copy().RevDivSelf(o)
}

func (v *Vec2[F]) MulAddSelf(m, a Tuple[F]) *Vec2[F] {
	return MulAdd(v, m, a, v.self())
}

func (v *Vec2[F]) MulAdd(m, a Tuple[F]) *Vec2[F] {
	return v.Copy().MulAddSelf(m, a)
}

func (v *Vec2[F]) AddScalarSelf(s F) *Vec2[F] {
	return AddScalar(v, s, v.self())
}

func (v *Vec2[F]) AddScalar(s F) *Vec2[F] {
	return v.Copy().AddScalarSelf(s)
}

func (v *Vec2[F]) SubScalarSelf(s F) *Vec2[F] {
	return SubScalar(v, s, v.self())
}

func (v *Vec2[F]) SubScalar(s F) *Vec2[F] {
	return v.Copy().SubScalarSelf(s)
}

func (v *Vec2[F]) RevSubScalarSelf(s F) *Vec2[F] {
	return RevSubScalar(v, s, v.self())
}

func (v *Vec2[F]) RevSubScalar(s F) *Vec2[F] {
	return v.Copy().RevSubScalarSelf(s)
}

func (v *Vec2[F]) ScaleSelf(s F) *Vec2[F] {
	return Scale(v, s, v.self())
}

func (v *Vec2[F]) Scale(s F) *Vec2[F] {
	return v.Copy().ScaleSelf(s)
}

func (v *Vec2[F]) DivScalarSelf(s F) *Vec2[F] {
	return DivScalar(v, s, v.self())
}

func (v *Vec2[F]) DivScalar(s F) *Vec2[F] {
	return v.Copy().DivScalarSelf(s)
}

func (v *Vec2[F]) RevDivScalarSelf(s F) *Vec2[F] {
	return RevDivScalar(v, s, v.self())
}

func (v *Vec2[F]) RevDivScalar(s F) *Vec2[F] {
	return v.Copy().RevDivScalarSelf(s)
}

func (v *Vec2[F]) MulAddScalarSelf(m, a F) *Vec2[F] {
	return MulAddScalar(v, m, a, v.self())
}

func (v *Vec2[F]) MulAddScalar(m, a F) *Vec2[F] {
	return v.Copy().MulAddScalarSelf(m, a)
}

func (v *Vec2[F]) Dot(o Tuple[F]) F {
	return Dot[F](v, o)
}

func (v *Vec2[F]) Norm() F {
	return Len[F](v)
}

func (v *Vec2[F]) NormSquared() F {
	return LenSq[F](v)
}

func (v *Vec2[F]) NormTolerance(tolerance F) F {
	return LenTolerance[F](v, tolerance)
}

func (v *Vec2[F]) InvNorm() F {
	return InvLen[F](v)
}

func (v *Vec2[F]) Dist(o Tuple[F]) F {
	return Dist[F](v, o)
}

func (v *Vec2[F]) SquaredDist(o Tuple[F]) F {
	return DistSq[F](v, o)
}

func (v *Vec2[F]) InvDist(o Tuple[F]) F {
	return InvDist[F](v, o)
}

func (v *Vec2[F]) NormalizeSelf() *Vec2[F] {
	return Normalize(v, v.self())
}

func (v *Vec2[F]) Normalize() *Vec2[F] {
	return v.Copy().NormalizeSelf()
}

func (v *Vec2[F]) NormalizeToleranceSelf(tolerance F) *Vec2[F] {
	return NormalizeTolerance(v, tolerance, v.self())
}

func (v *Vec2[F]) NormalizeTolerance(tolerance F) *Vec2[F] {
	return v.Copy().NormalizeToleranceSelf(tolerance)
}

func (v *Vec2[F]) ProjectSelf(t Tuple[F]) *Vec2[F] {
	return Project(v, t, v.self())
}

func (v *Vec2[F]) Project(t Tuple[F]) *Vec2[F] {
	return v.Copy().ProjectSelf(t)
}

// ReflectSelf reflects v about the unit normal n.
func (v *Vec2[F]) ReflectSelf(n Tuple[F]) *Vec2[F] {
	return Reflect(v, n, v.self())
}

func (v *Vec2[F]) Reflect(n Tuple[F]) *Vec2[F] {
	return v.Copy().ReflectSelf(n)
}

func (v *Vec2[F]) HalfVectorSelf(o Tuple[F]) *Vec2[F] {
	return HalfVector(v, o, v.self())
}

func (v *Vec2[F]) HalfVector(o Tuple[F]) *Vec2[F] {
	return v.Copy().HalfVectorSelf(o)
}

func (v *Vec2[F]) MidPointSelf(o Tuple[F]) *Vec2[F] {
	return MidPoint(v, o, v.self())
}

func (v *Vec2[F]) MidPoint(o Tuple[F]) *Vec2[F] {
	return v.Copy().MidPointSelf(o)
}

func (v *Vec2[F]) MinSelf(o Tuple[F]) *Vec2[F] {
	return Min(v, o, v.self())
}

func (v *Vec2[F]) Min(o Tuple[F]) *Vec2[F] {
	return v.Copy().MinSelf(o)
}

func (v *Vec2[F]) MaxSelf(o Tuple[F]) *Vec2[F] {
	return Max(v, o, v.self())
}

func (v *Vec2[F]) Max(o Tuple[F]) *Vec2[F] {
	return v.Copy().MaxSelf(o)
}

func (v *Vec2[F]) MinComponent() IndexValue[F] {
	return MinComponent[F](v)
}

func (v *Vec2[F]) MaxComponent() IndexValue[F] {
	return MaxComponent[F](v)
}

func (v *Vec2[F]) AbsSelf() *Vec2[F] {
	return Abs(v, v.self())
}

func (v *Vec2[F]) Abs() *Vec2[F] {
	return v.Copy().AbsSelf()
}

func (v *Vec2[F]) SignSelf() *Vec2[F] {
	return Sign(v, v.self())
}

func (v *Vec2[F]) Sign() *Vec2[F] {
	return v.Copy().SignSelf()
}

func (v *Vec2[F]) NegSelf() *Vec2[F] {
	return Neg(v, v.self())
}

func (v *Vec2[F]) Neg() *Vec2[F] {
	return v.Copy().NegSelf()
}

func (v *Vec2[F]) RecipSelf() *Vec2[F] {
	return Recip(v, v.self())
}

func (v *Vec2[F]) Recip() *Vec2[F] {
	return v.Copy().RecipSelf()
}

func (v *Vec2[F]) TruncSelf() *Vec2[F] {
	return Trunc(v, v.self())
}

func (v *Vec2[F]) Trunc() *Vec2[F] {
	return v.Copy().TruncSelf()
}

func (v *Vec2[F]) SwizzleSelf(i, j int) *Vec2[F] {
	return Swizzle(v, []int{i, j}, v.self())
}

func (v *Vec2[F]) Swizzle(i, j int) *Vec2[F] {
	return v.Copy().SwizzleSelf(i, j)
}

func (v *Vec2[F]) SwapSelf(i, j int) *Vec2[F] {
	return Swap(v, i, j, v.self())
}

func (v *Vec2[F]) Swap(i, j int) *Vec2[F] {
	return v.Copy().SwapSelf(i, j)
}

func (v *Vec2[F]) SwapXYSelf() *Vec2[F] {
	return v.SwapSelf(0, 1)
}

func (v *Vec2[F]) SwapXY() *Vec2[F] {
	return v.Swap(0, 1)
}

func (v *Vec2[F]) LerpSelf(alpha F, o Tuple[F]) *Vec2[F] {
	return Lerp(alpha, v, o, v.self())
}

func (v *Vec2[F]) Lerp(alpha F, o Tuple[F]) *Vec2[F] {
	return v.Copy().LerpSelf(alpha, o)
}

func (v *Vec2[F]) StepSelf(alpha, midpoint F, o Tuple[F]) *Vec2[F] {
	return Step(alpha, midpoint, v, o, v.self())
}

func (v *Vec2[F]) Step(alpha, midpoint F, o Tuple[F]) *Vec2[F] {
	return v.Copy().StepSelf(alpha, midpoint, o)
}

func (v *Vec2[F]) SmoothStepSelf(alpha F, o Tuple[F]) *Vec2[F] {
	return SmoothStep(alpha, v, o, v.self())
}

func (v *Vec2[F]) SmoothStep(alpha F, o Tuple[F]) *Vec2[F] {
	return v.Copy().SmoothStepSelf(alpha, o)
}

func (v *Vec2[F]) SmootherStepSelf(alpha F, o Tuple[F]) *Vec2[F] {
	return SmootherStep(alpha, v, o, v.self())
}

func (v *Vec2[F]) SmootherStep(alpha F, o Tuple[F]) *Vec2[F] {
	return v.Copy().SmootherStepSelf(alpha, o)
}

func (v *Vec2[F]) IntLerpSelf(alpha F, o Tuple[F]) *Vec2[F] {
	return IntLerp(alpha, v, o, v.self())
}

func (v *Vec2[F]) IntLerp(alpha F, o Tuple[F]) *Vec2[F] {
	return v.Copy().IntLerpSelf(alpha, o)
}

// Equal checks for exact component equality with o.
func (v *Vec2[F]) Equal(o Tuple[F]) bool {
	return Equal[F](v, o)
}

// ApproxEqual checks for equality up to Epsilon per component.
func (v *Vec2[F]) ApproxEqual(o Tuple[F]) bool {
	return EqualWithin[F](v, o, Epsilon)
}

// RoughlyEqual checks for equality up to RoughEpsilon per component.
func (v *Vec2[F]) RoughlyEqual(o Tuple[F]) bool {
	return EqualWithin[F](v, o, RoughEpsilon)
}

func (v *Vec2[F]) EqualWithin(o Tuple[F], eps F) bool {
	return EqualWithin[F](v, o, eps)
}

func (v *Vec2[F]) EqualWithinEach(o Tuple[F], epsX, epsY F) bool {
	return EqualWithinEach[F](v, o, Of(epsX, epsY))
}

func (v *Vec2[F]) Hash() uint64 {
	return Hash[F](v)
}

// WriteBuffer copies the components into buf at the given element offset.
func (v *Vec2[F]) WriteBuffer(buf []F, offset int) []F {
	return WriteBuffer[F](v, buf, offset)
}

func (v *Vec2[F]) ReadBuffer(buf []F, offset int) *Vec2[F] {
	return ReadBuffer[F](v, buf, offset)
}
