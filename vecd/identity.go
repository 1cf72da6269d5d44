package vecd

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Equal checks if a and b have the same length and exactly equal components.
func Equal[F constraints.Float](a, b Tuple[F]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// EqualWithin checks if every component of a is within eps of the
// corresponding component of b.
func EqualWithin[F constraints.Float](a, b Tuple[F], eps F) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !(abs(a.At(i)-b.At(i)) <= eps) {
			return false
		}
	}
	return true
}

// EqualWithinEach is like EqualWithin, but with a separate epsilon for each
// component.
func EqualWithinEach[F constraints.Float](a, b, eps Tuple[F]) bool {
	if a.Len() != b.Len() {
		return false
	}
	checkLen(eps.Len(), a.Len())
	for i := 0; i < a.Len(); i++ {
		if !(abs(a.At(i)-b.At(i)) <= eps.At(i)) {
			return false
		}
	}
	return true
}

// Hash computes a hash of the components of t.
//
// Tuples which are Equal produce the same hash; in particular 0 and -0 hash
// identically.
func Hash[F constraints.Float](t Tuple[F]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for i := 0; i < t.Len(); i++ {
		x := t.At(i)
		if x == 0 {
			x = 0
		}
		if is32(x) {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(x)))
			d.Write(buf[:4])
		} else {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(x)))
			d.Write(buf[:])
		}
	}
	return d.Sum64()
}
