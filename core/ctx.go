package core

// Context carries the state of one top-level decode through every recursion level.
type Context struct {
	Config   DecoderConfig
	Depth    int
	MaxDepth int
	Packets  int
}

func NewContext(config DecoderConfig) *Context {
	return &Context{Config: config}
}

func (c *Context) enter() {
	c.Depth++
	if c.Depth > c.MaxDepth {
		c.MaxDepth = c.Depth
	}
}

func (c *Context) leave() {
	c.Depth--
}

// Split is Bits.Split with the failing field and current depth recorded in the error.
func (c *Context) Split(bits Bits, n int, field string) (Bits, Bits, error) {
	chunk, rest, err := bits.Split(n)
	if err != nil {
		return chunk, rest, c.annotate(err, field)
	}
	return chunk, rest, nil
}

func (c *Context) ReadBits(bits Bits, n int, field string) (uint64, Bits, error) {
	v, rest, err := bits.Uint(n)
	if err != nil {
		return 0, bits, c.annotate(err, field)
	}
	return v, rest, nil
}

func (c *Context) ReadBit(bits Bits, field string) (bool, Bits, error) {
	v, rest, err := bits.Bit()
	if err != nil {
		return false, bits, c.annotate(err, field)
	}
	return v, rest, nil
}

func (c *Context) annotate(err error, field string) error {
	de, ok := err.(*DecodeError)
	if !ok {
		return err
	}
	de.Depth = c.Depth
	if de.Detail == "" {
		de.Detail = field
	} else {
		de.Detail = field + ": " + de.Detail
	}
	return de
}
