package core

import "github.com/vuuvv/vbits/utils"

type reduceFunc func(values []uint64) (uint64, bool)

var reducers = map[Operation]reduceFunc{
	OpSum: func(values []uint64) (uint64, bool) {
		var total uint64
		for _, v := range values {
			var ok bool
			if total, ok = utils.AddUint64(total, v); !ok {
				return 0, false
			}
		}
		return total, true
	},
	OpProduct: func(values []uint64) (uint64, bool) {
		for _, v := range values {
			if v == 0 {
				return 0, true
			}
		}
		total := uint64(1)
		for _, v := range values {
			var ok bool
			if total, ok = utils.MulUint64(total, v); !ok {
				return 0, false
			}
		}
		return total, true
	},
	OpMinimum: func(values []uint64) (uint64, bool) {
		v, _ := utils.MinOf(values)
		return v, true
	},
	OpMaximum: func(values []uint64) (uint64, bool) {
		v, _ := utils.MaxOf(values)
		return v, true
	},
	OpGreaterThan: func(values []uint64) (uint64, bool) {
		return utils.BoolToUint64(values[0] > values[1]), true
	},
	OpLessThan: func(values []uint64) (uint64, bool) {
		return utils.BoolToUint64(values[0] < values[1]), true
	},
	OpEqual: func(values []uint64) (uint64, bool) {
		return utils.BoolToUint64(values[0] == values[1]), true
	},
}

// Evaluate folds a packet tree into its value.
func Evaluate(p *Packet) (uint64, error) {
	switch body := p.Body.(type) {
	case *Literal:
		return body.Value, nil
	case *Operator:
		return evaluateOperator(p, body)
	}
	return 0, &EvalError{Kind: KindUnknownOperationCode, Offset: p.Offset}
}

func evaluateOperator(p *Packet, o *Operator) (uint64, error) {
	n := len(o.Children)
	if (o.Op.IsComparison() && n != 2) || n == 0 {
		return 0, &EvalError{Kind: KindArity, Op: o.Op, Offset: p.Offset, Children: n}
	}
	reduce, ok := reducers[o.Op]
	if !ok {
		return 0, &EvalError{Kind: KindUnknownOperationCode, Op: o.Op, Offset: p.Offset}
	}

	values := make([]uint64, n)
	for i, child := range o.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	v, ok := reduce(values)
	if !ok {
		return 0, &EvalError{Kind: KindOverflow, Op: o.Op, Offset: p.Offset, Children: n}
	}
	return v, nil
}
