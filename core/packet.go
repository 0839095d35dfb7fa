package core

// LengthType selects how an operator bounds its sub-packets.
type LengthType uint8

const (
	LengthTotalBits LengthType = 0 // 15-bit total length of the sub-packet sequence
	LengthCount     LengthType = 1 // 11-bit number of sub-packets
)

// Body is either *Literal or *Operator.
type Body interface {
	isBody()
}

type Literal struct {
	Value  uint64
	Groups int // number of 5-bit groups read, 0 when built by hand
}

type Operator struct {
	Op         Operation
	LengthType LengthType
	Children   []*Packet
}

func (*Literal) isBody()  {}
func (*Operator) isBody() {}

type Packet struct {
	Version  uint8
	TypeCode uint8
	Body     Body
	Offset   int // first bit in the original stream
	Size     int // bits consumed, header included
}

func NewLiteral(version uint8, value uint64) *Packet {
	return &Packet{Version: version, TypeCode: TypeCodeLiteral, Body: &Literal{Value: value}}
}

func NewOperator(version uint8, op Operation, children ...*Packet) *Packet {
	return &Packet{
		Version:  version,
		TypeCode: op.Code(),
		Body:     &Operator{Op: op, LengthType: LengthCount, Children: children},
	}
}

func (p *Packet) Literal() (*Literal, bool) {
	l, ok := p.Body.(*Literal)
	return l, ok
}

func (p *Packet) Operator() (*Operator, bool) {
	o, ok := p.Body.(*Operator)
	return o, ok
}

func (p *Packet) Children() []*Packet {
	if o, ok := p.Body.(*Operator); ok {
		return o.Children
	}
	return nil
}

// Equal compares version and body recursively. Offsets, sizes and the encoding
// details (literal groups, length type) are ignored.
func (p *Packet) Equal(other *Packet) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Version != other.Version {
		return false
	}
	switch body := p.Body.(type) {
	case *Literal:
		o, ok := other.Body.(*Literal)
		return ok && body.Value == o.Value
	case *Operator:
		o, ok := other.Body.(*Operator)
		if !ok || body.Op != o.Op || len(body.Children) != len(o.Children) {
			return false
		}
		for i := range body.Children {
			if !body.Children[i].Equal(o.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}
