package core

import (
	"strings"

	"github.com/vuuvv/errors"
)

// Encode writes a packet tree in the wire format. Literals use their recorded group
// count when it is large enough, operators their recorded length type.
func Encode(p *Packet) (Bits, error) {
	w := NewBitWriter()
	if err := encodePacket(w, p); err != nil {
		return Bits{}, err
	}
	return w.Bits(), nil
}

func encodePacket(w *BitWriter, p *Packet) error {
	if err := w.WriteBits(uint64(p.Version), versionBits); err != nil {
		return err
	}
	switch body := p.Body.(type) {
	case *Literal:
		if err := w.WriteBits(uint64(TypeCodeLiteral), typeBits); err != nil {
			return err
		}
		return encodeLiteral(w, body)
	case *Operator:
		if err := w.WriteBits(uint64(body.Op.Code()), typeBits); err != nil {
			return err
		}
		return encodeOperator(w, body)
	}
	return errors.Errorf("packet at offset %d has no body", p.Offset)
}

func encodeLiteral(w *BitWriter, l *Literal) error {
	groups := 1
	for v := l.Value >> 4; v != 0; v >>= 4 {
		groups++
	}
	if l.Groups > groups {
		groups = l.Groups
	}
	for i := groups - 1; i >= 0; i-- {
		w.WriteBit(i > 0)
		var nibble uint64
		if i < 16 {
			nibble = l.Value >> (4 * i) & 0xF
		}
		if err := w.WriteBits(nibble, 4); err != nil {
			return err
		}
	}
	return nil
}

func encodeOperator(w *BitWriter, o *Operator) error {
	if o.LengthType == LengthCount {
		w.WriteBit(true)
		if err := w.WriteBits(uint64(len(o.Children)), countBits); err != nil {
			return err
		}
		for _, child := range o.Children {
			if err := encodePacket(w, child); err != nil {
				return err
			}
		}
		return nil
	}

	sub := NewBitWriter()
	for _, child := range o.Children {
		if err := encodePacket(sub, child); err != nil {
			return err
		}
	}
	w.WriteBit(false)
	if err := w.WriteBits(uint64(sub.Len()), totalLengthBits); err != nil {
		return err
	}
	w.WriteBitsFrom(sub.Bits())
	return nil
}

// BitsToHex pads with zero bits up to a byte boundary and renders uppercase hex.
func BitsToHex(b Bits) string {
	digits := b.digits
	if rem := len(digits) % 8; rem != 0 {
		digits += strings.Repeat("0", 8-rem)
	}
	const hexChars = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(digits) / 4)
	for i := 0; i < len(digits); i += 4 {
		sb.WriteByte(hexChars[Bits{digits: digits[i : i+4]}.value()])
	}
	return sb.String()
}
