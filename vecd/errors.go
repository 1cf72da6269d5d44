package vecd

import "fmt"

// An IndexError is the panic value used when a component index falls outside
// of [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (i *IndexError) Error() string {
	return fmt.Sprintf("vecd: index %d out of range [0, %d)", i.Index, i.Len)
}

// A LengthError is the panic value used when a tuple has an unsupported
// length, or when operands of different lengths are combined.
type LengthError struct {
	Got  int
	Want int
}

func (l *LengthError) Error() string {
	return fmt.Sprintf("vecd: tuple length %d does not match %d", l.Got, l.Want)
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}

func checkLen(got, want int) {
	if got != want {
		panic(&LengthError{Got: got, Want: want})
	}
}
