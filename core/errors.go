package core

import (
	"fmt"

	"github.com/vuuvv/errors"
)

type ErrorKind int

const (
	KindInvalidHexChar ErrorKind = iota + 1
	KindInvalidBit
	KindInvalidInput
	KindTruncatedInput
	KindUnknownOperationCode
	KindMalformedLiteral
	KindTrailingData
	KindArity
	KindOverflow
	KindFieldOverflow
)

var (
	ErrInvalidHexChar       = errors.New("invalid hex char")
	ErrInvalidBit           = errors.New("invalid bit")
	ErrInvalidInput         = errors.New("invalid input")
	ErrTruncatedInput       = errors.New("truncated input")
	ErrUnknownOperationCode = errors.New("unknown operation code")
	ErrMalformedLiteral     = errors.New("malformed literal")
	ErrTrailingData         = errors.New("trailing data")
	ErrArity                = errors.New("arity error")
	ErrOverflow             = errors.New("overflow")
	ErrFieldOverflow        = errors.New("field overflow")
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidHexChar:       ErrInvalidHexChar,
	KindInvalidBit:           ErrInvalidBit,
	KindInvalidInput:         ErrInvalidInput,
	KindTruncatedInput:       ErrTruncatedInput,
	KindUnknownOperationCode: ErrUnknownOperationCode,
	KindMalformedLiteral:     ErrMalformedLiteral,
	KindTrailingData:         ErrTrailingData,
	KindArity:                ErrArity,
	KindOverflow:             ErrOverflow,
	KindFieldOverflow:        ErrFieldOverflow,
}

func (k ErrorKind) Sentinel() error {
	return kindSentinels[k]
}

func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// DecodeError reports a failure while turning input text or bits into a packet tree.
// Offset is the bit offset in the original stream (character offset for input errors).
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Depth  int
	Detail string
}

func newDecodeError(kind ErrorKind, offset int, depth int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Depth: depth, Detail: fmt.Sprintf(format, args...)}
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d (depth %d)", e.Kind, e.Offset, e.Depth)
	}
	return fmt.Sprintf("%s at offset %d (depth %d): %s", e.Kind, e.Offset, e.Depth, e.Detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind.Sentinel()
}

// EvalError reports a packet tree that cannot be folded into a value.
type EvalError struct {
	Kind     ErrorKind
	Op       Operation
	Offset   int
	Children int
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case KindArity:
		return fmt.Sprintf("%s: %s packet at offset %d has %d children", e.Kind, e.Op, e.Offset, e.Children)
	default:
		return fmt.Sprintf("%s: %s packet at offset %d", e.Kind, e.Op, e.Offset)
	}
}

func (e *EvalError) Unwrap() error {
	return e.Kind.Sentinel()
}
