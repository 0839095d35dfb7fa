package core

import "strings"

// Bits is an immutable view over a run of binary digits. offset is the position of the
// first digit in the stream the view was cut from.
type Bits struct {
	digits string
	offset int
}

func NewBits(s string) (Bits, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return Bits{}, newDecodeError(KindInvalidBit, i, 0, "character %q is not a binary digit", s[i])
		}
	}
	return Bits{digits: s}, nil
}

func MustBits(s string) Bits {
	b, err := NewBits(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Bits) Len() int {
	return len(b.digits)
}

func (b Bits) Offset() int {
	return b.offset
}

func (b Bits) String() string {
	return b.digits
}

// IsZero reports whether every digit is '0'. An empty view is zero.
func (b Bits) IsZero() bool {
	return strings.IndexByte(b.digits, '1') < 0
}

// Split cuts the first n digits off as chunk and returns the remainder as rest.
func (b Bits) Split(n int) (chunk Bits, rest Bits, err error) {
	if n < 0 || n > len(b.digits) {
		return Bits{}, b, newDecodeError(KindTruncatedInput, b.offset, 0, "need %d bits, have %d", n, len(b.digits))
	}
	chunk = Bits{digits: b.digits[:n], offset: b.offset}
	rest = Bits{digits: b.digits[n:], offset: b.offset + n}
	return chunk, rest, nil
}

// Uint reads an n-bit big-endian unsigned field, n <= 64.
func (b Bits) Uint(n int) (uint64, Bits, error) {
	if n > 64 {
		return 0, b, newDecodeError(KindMalformedLiteral, b.offset, 0, "cannot read %d bits into 64", n)
	}
	chunk, rest, err := b.Split(n)
	if err != nil {
		return 0, b, err
	}
	return chunk.value(), rest, nil
}

// Bit reads a single digit.
func (b Bits) Bit() (bool, Bits, error) {
	chunk, rest, err := b.Split(1)
	if err != nil {
		return false, b, err
	}
	return chunk.digits[0] == '1', rest, nil
}

func (b Bits) value() uint64 {
	var v uint64
	for i := 0; i < len(b.digits); i++ {
		v = v<<1 | uint64(b.digits[i]-'0')
	}
	return v
}
