package core

import (
	"fmt"
	"strings"
)

// Dump renders one packet per line, children indented below their parent.
func Dump(p *Packet) string {
	var sb strings.Builder
	Walk(p, func(p *Packet, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth-1))
		sb.WriteString(p.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func (p *Packet) String() string {
	switch body := p.Body.(type) {
	case *Literal:
		return fmt.Sprintf("v%d literal %d @%d+%d", p.Version, body.Value, p.Offset, p.Size)
	case *Operator:
		return fmt.Sprintf("v%d %s [len=%d] @%d+%d", p.Version, body.Op, body.LengthType, p.Offset, p.Size)
	}
	return fmt.Sprintf("v%d ? @%d+%d", p.Version, p.Offset, p.Size)
}
