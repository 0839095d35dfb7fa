package core

// SumVersions adds up the version of every packet in the tree.
func SumVersions(p *Packet) uint64 {
	total := uint64(p.Version)
	for _, child := range p.Children() {
		total += SumVersions(child)
	}
	return total
}

// Walk visits the tree depth-first, parents before children. The root has depth 1.
// Returning false from fn skips the children of that packet.
func Walk(p *Packet, fn func(p *Packet, depth int) bool) {
	walk(p, 1, fn)
}

func walk(p *Packet, depth int, fn func(p *Packet, depth int) bool) {
	if !fn(p, depth) {
		return
	}
	for _, child := range p.Children() {
		walk(child, depth+1, fn)
	}
}

type TreeStats struct {
	Packets   int `json:"packets"`
	Literals  int `json:"literals"`
	Operators int `json:"operators"`
	MaxDepth  int `json:"maxDepth"`
}

func Stats(p *Packet) TreeStats {
	var s TreeStats
	Walk(p, func(p *Packet, depth int) bool {
		s.Packets++
		if _, ok := p.Literal(); ok {
			s.Literals++
		} else {
			s.Operators++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		return true
	})
	return s
}
