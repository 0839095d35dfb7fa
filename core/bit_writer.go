package core

import (
	"strings"

	"github.com/vuuvv/errors"
)

type BitWriter struct {
	Buffer strings.Builder
}

func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

// WriteBits writes the low n bits of value, most significant first.
func (w *BitWriter) WriteBits(value uint64, n int) error {
	if n < 0 || n > 64 {
		return errors.Errorf("bit field size %d out of range", n)
	}
	if n < 64 && value>>n != 0 {
		return newDecodeError(KindFieldOverflow, w.Len(), 0, "value %d does not fit in %d bits", value, n)
	}
	for i := n - 1; i >= 0; i-- {
		w.Buffer.WriteByte('0' + byte(value>>i&1))
	}
	return nil
}

func (w *BitWriter) WriteBit(b bool) {
	if b {
		w.Buffer.WriteByte('1')
	} else {
		w.Buffer.WriteByte('0')
	}
}

// WriteBitsFrom appends another run of digits as is.
func (w *BitWriter) WriteBitsFrom(b Bits) {
	w.Buffer.WriteString(b.digits)
}

func (w *BitWriter) Len() int {
	return w.Buffer.Len()
}

func (w *BitWriter) Bits() Bits {
	return Bits{digits: w.Buffer.String()}
}
