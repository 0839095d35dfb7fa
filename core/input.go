package core

import (
	"strings"

	"github.com/vuuvv/vbits/utils"
)

const (
	InputHex    = "h"
	InputHexAlt = "x"
	InputBinary = "b"
)

var nibbles = [16]string{
	"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
}

// HexToBits expands every hex digit to its 4-bit binary form.
func HexToBits(s string) (Bits, error) {
	var sb strings.Builder
	sb.Grow(len(s) * 4)
	for i := 0; i < len(s); i++ {
		n, ok := hexValue(s[i])
		if !ok {
			return Bits{}, newDecodeError(KindInvalidHexChar, i, 0, "character %q", s[i])
		}
		sb.WriteString(nibbles[n])
	}
	return Bits{digits: sb.String()}, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// ParseInput turns one transmission line into bits. Plain text is hex; h'..' and x'..'
// mark hex explicitly and b'..' carries binary digits.
func ParseInput(line string) (Bits, error) {
	typeID, data := utils.SplitTValue(strings.TrimSpace(line), InputHex)
	switch typeID {
	case InputHex, InputHexAlt:
		return HexToBits(data)
	case InputBinary:
		return NewBits(data)
	default:
		return Bits{}, newDecodeError(KindInvalidInput, 0, 0, "unrecognized type identifier %q, expected h, x or b", typeID)
	}
}
