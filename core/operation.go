package core

import "fmt"

const TypeCodeLiteral uint8 = 4 // 100

type Operation uint8

const (
	OpSum Operation = iota
	OpProduct
	OpMinimum
	OpMaximum
	OpGreaterThan
	OpLessThan
	OpEqual
)

var operationCodes = map[uint8]Operation{
	0: OpSum,
	1: OpProduct,
	2: OpMinimum,
	3: OpMaximum,
	5: OpGreaterThan,
	6: OpLessThan,
	7: OpEqual,
}

var operationNames = map[Operation]string{
	OpSum:         "sum",
	OpProduct:     "product",
	OpMinimum:     "min",
	OpMaximum:     "max",
	OpGreaterThan: "gt",
	OpLessThan:    "lt",
	OpEqual:       "eq",
}

// OperationFromCode resolves a non-literal 3-bit type code.
func OperationFromCode(code uint8) (Operation, error) {
	op, ok := operationCodes[code]
	if !ok {
		return 0, newDecodeError(KindUnknownOperationCode, 0, 0, "type code %03b", code)
	}
	return op, nil
}

func (op Operation) Code() uint8 {
	for code, o := range operationCodes {
		if o == op {
			return code
		}
	}
	return TypeCodeLiteral
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// IsComparison reports whether the operation is defined over exactly two children.
func (op Operation) IsComparison() bool {
	return op == OpGreaterThan || op == OpLessThan || op == OpEqual
}
