package vecd

import (
	"bytes"
	"encoding/binary"
	"io"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// WriteBuffer copies the components of t into buf starting at offset, and
// returns buf.
func WriteBuffer[F constraints.Float](t Tuple[F], buf []F, offset int) []F {
	n := t.Len()
	if offset < 0 || offset+n > len(buf) {
		panic(&IndexError{Index: offset + n - 1, Len: len(buf)})
	}
	for i := 0; i < n; i++ {
		buf[offset+i] = t.At(i)
	}
	return buf
}

// ReadBuffer overwrites the components of w with the scalars of buf starting
// at offset, and returns w.
func ReadBuffer[F constraints.Float, W Writable[F]](w W, buf []F, offset int) W {
	n := w.Len()
	if offset < 0 || offset+n > len(buf) {
		panic(&IndexError{Index: offset + n - 1, Len: len(buf)})
	}
	for i := 0; i < n; i++ {
		w.SetAt(i, buf[offset+i])
	}
	return w
}

// PackVec3s lays out vs contiguously in a flat scalar buffer.
func PackVec3s[F constraints.Float](vs []*Vec3[F]) []F {
	res := make([]F, 0, len(vs)*3)
	for _, v := range vs {
		res = append(res, v.c[:]...)
	}
	return res
}

// UnpackVec3s is the inverse of PackVec3s.
func UnpackVec3s[F constraints.Float](buf []F) []*Vec3[F] {
	if len(buf)%3 != 0 {
		panic(&LengthError{Got: len(buf), Want: len(buf) - len(buf)%3})
	}
	res := make([]*Vec3[F], len(buf)/3)
	for i := range res {
		res[i] = NewVec3Slice(buf[i*3:])
	}
	return res
}

// PackVec2s lays out vs contiguously in a flat scalar buffer.
func PackVec2s[F constraints.Float](vs []*Vec2[F]) []F {
	res := make([]F, 0, len(vs)*2)
	for _, v := range vs {
		res = append(res, v.c[:]...)
	}
	return res
}

// UnpackVec2s is the inverse of PackVec2s.
func UnpackVec2s[F constraints.Float](buf []F) []*Vec2[F] {
	if len(buf)%2 != 0 {
		panic(&LengthError{Got: len(buf), Want: len(buf) - 1})
	}
	res := make([]*Vec2[F], len(buf)/2)
	for i := range res {
		res[i] = NewVec2Slice(buf[i*2:])
	}
	return res
}

// WriteVec3s serializes vs as consecutive scalars in the native byte order,
// suitable for uploading directly to a GPU buffer.
func WriteVec3s[F constraints.Float](w io.Writer, vs []*Vec3[F]) error {
	if err := binary.Write(w, binary.NativeEndian, PackVec3s(vs)); err != nil {
		return errors.Wrap(err, "write vec3s")
	}
	return nil
}

// ReadVec3s reads count vectors written by WriteVec3s.
func ReadVec3s[F constraints.Float](r io.Reader, count int) ([]*Vec3[F], error) {
	buf := make([]F, count*3)
	if err := binary.Read(r, binary.NativeEndian, buf); err != nil {
		return nil, errors.Wrap(err, "read vec3s")
	}
	return UnpackVec3s(buf), nil
}

// ReadAllVec3s reads vectors written by WriteVec3s until the end of r.
func ReadAllVec3s[F constraints.Float](r io.Reader) ([]*Vec3[F], error) {
	buf, err := readAllScalars[F](r, 3)
	if err != nil {
		return nil, errors.Wrap(err, "read vec3s")
	}
	return UnpackVec3s(buf), nil
}

// WriteVec2s serializes vs as consecutive scalars in the native byte order.
func WriteVec2s[F constraints.Float](w io.Writer, vs []*Vec2[F]) error {
	if err := binary.Write(w, binary.NativeEndian, PackVec2s(vs)); err != nil {
		return errors.Wrap(err, "write vec2s")
	}
	return nil
}

// ReadVec2s reads count vectors written by WriteVec2s.
func ReadVec2s[F constraints.Float](r io.Reader, count int) ([]*Vec2[F], error) {
	buf := make([]F, count*2)
	if err := binary.Read(r, binary.NativeEndian, buf); err != nil {
		return nil, errors.Wrap(err, "read vec2s")
	}
	return UnpackVec2s(buf), nil
}

// ReadAllVec2s reads vectors written by WriteVec2s until the end of r.
func ReadAllVec2s[F constraints.Float](r io.Reader) ([]*Vec2[F], error) {
	buf, err := readAllScalars[F](r, 2)
	if err != nil {
		return nil, errors.Wrap(err, "read vec2s")
	}
	return UnpackVec2s(buf), nil
}

func readAllScalars[F constraints.Float](r io.Reader, dim int) ([]F, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var zero F
	vecSize := int(unsafe.Sizeof(zero)) * dim
	if len(data)%vecSize != 0 {
		return nil, errors.Errorf("%d trailing bytes after last vector", len(data)%vecSize)
	}
	buf := make([]F, len(data)/int(unsafe.Sizeof(zero)))
	if err := binary.Read(bytes.NewReader(data), binary.NativeEndian, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
