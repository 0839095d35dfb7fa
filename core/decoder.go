package core

const (
	versionBits     = 3
	typeBits        = 3
	headerBits      = versionBits + typeBits
	groupBits       = 5
	totalLengthBits = 15
	countBits       = 11
)

type DecoderConfig struct {
	// StrictPadding rejects top-level leftovers that are not zero padding shorter than a byte.
	StrictPadding bool `yaml:"strict_padding"`
}

type Decoder struct {
	config DecoderConfig
}

func NewDecoder(config DecoderConfig) *Decoder {
	return &Decoder{config: config}
}

var defaultDecoder = NewDecoder(DecoderConfig{})

// Decode decodes exactly one top-level packet and discards the trailing padding.
func Decode(bits Bits) (*Packet, error) {
	return defaultDecoder.Decode(bits)
}

// DecodePacket decodes one packet and returns the bits following it.
func DecodePacket(bits Bits) (*Packet, Bits, error) {
	return defaultDecoder.DecodePacket(bits)
}

func (d *Decoder) Decode(bits Bits) (*Packet, error) {
	p, _, err := d.DecodeWithContext(NewContext(d.config), bits)
	return p, err
}

func (d *Decoder) DecodePacket(bits Bits) (*Packet, Bits, error) {
	return d.decodePacket(NewContext(d.config), bits)
}

// DecodeWithContext is Decode exposing the decode statistics and the padding.
func (d *Decoder) DecodeWithContext(ctx *Context, bits Bits) (*Packet, Bits, error) {
	p, rest, err := d.decodePacket(ctx, bits)
	if err != nil {
		return nil, rest, err
	}
	if ctx.Config.StrictPadding && (rest.Len() >= 8 || !rest.IsZero()) {
		return nil, rest, newDecodeError(KindTrailingData, rest.Offset(), 0, "%d bits after the top-level packet are not padding", rest.Len())
	}
	return p, rest, nil
}

func (d *Decoder) decodePacket(ctx *Context, bits Bits) (*Packet, Bits, error) {
	ctx.enter()
	defer ctx.leave()

	if bits.Len() < headerBits {
		return nil, bits, ctx.annotate(newDecodeError(KindTruncatedInput, bits.Offset(), 0, "need %d bits, have %d", headerBits, bits.Len()), "header")
	}
	version, rest, err := ctx.ReadBits(bits, versionBits, "version")
	if err != nil {
		return nil, bits, err
	}
	code, rest, err := ctx.ReadBits(rest, typeBits, "type")
	if err != nil {
		return nil, bits, err
	}

	p := &Packet{Version: uint8(version), TypeCode: uint8(code), Offset: bits.Offset()}
	if p.TypeCode == TypeCodeLiteral {
		p.Body, rest, err = d.decodeLiteral(ctx, rest)
	} else {
		p.Body, rest, err = d.decodeOperator(ctx, p.TypeCode, rest)
	}
	if err != nil {
		return nil, bits, err
	}

	p.Size = rest.Offset() - bits.Offset()
	ctx.Packets++
	return p, rest, nil
}

func (d *Decoder) decodeLiteral(ctx *Context, bits Bits) (*Literal, Bits, error) {
	lit := &Literal{}
	rest := bits
	for {
		group, next, err := ctx.Split(rest, groupBits, "literal group")
		if err != nil {
			return nil, bits, err
		}
		if lit.Value>>60 != 0 {
			return nil, bits, ctx.annotate(newDecodeError(KindMalformedLiteral, bits.Offset(), 0, "value exceeds 64 bits after %d groups", lit.Groups), "literal")
		}
		lit.Value = lit.Value<<4 | group.value()&0xF
		lit.Groups++
		rest = next
		if group.digits[0] == '0' {
			return lit, rest, nil
		}
	}
}

func (d *Decoder) decodeOperator(ctx *Context, code uint8, bits Bits) (*Operator, Bits, error) {
	op, err := OperationFromCode(code)
	if err != nil {
		de := err.(*DecodeError)
		de.Offset = bits.Offset() - typeBits
		return nil, bits, ctx.annotate(de, "type")
	}

	countPrefixed, rest, err := ctx.ReadBit(bits, "length type")
	if err != nil {
		return nil, bits, err
	}

	o := &Operator{Op: op}
	if !countPrefixed {
		o.LengthType = LengthTotalBits
		length, r, err := ctx.ReadBits(rest, totalLengthBits, "total length")
		if err != nil {
			return nil, bits, err
		}
		sub, r, err := ctx.Split(r, int(length), "sub-packets")
		if err != nil {
			return nil, bits, err
		}
		o.Children, err = d.decodeAll(ctx, sub)
		if err != nil {
			return nil, bits, err
		}
		return o, r, nil
	}

	o.LengthType = LengthCount
	count, rest, err := ctx.ReadBits(rest, countBits, "sub-packet count")
	if err != nil {
		return nil, bits, err
	}
	o.Children = make([]*Packet, 0, count)
	for i := uint64(0); i < count; i++ {
		var child *Packet
		child, rest, err = d.decodePacket(ctx, rest)
		if err != nil {
			return nil, bits, err
		}
		o.Children = append(o.Children, child)
	}
	return o, rest, nil
}

// decodeAll decodes packets from a length-bounded window until it runs out of
// complete packets. Whatever remains inside the window is left unparsed.
func (d *Decoder) decodeAll(ctx *Context, window Bits) ([]*Packet, error) {
	var children []*Packet
	for window.Len() > 0 {
		packets, maxDepth := ctx.Packets, ctx.MaxDepth
		child, rest, err := d.decodePacket(ctx, window)
		if err != nil {
			if de, ok := err.(*DecodeError); ok && de.Kind == KindTruncatedInput {
				// the partial child is dropped, so are its counted descendants
				ctx.Packets, ctx.MaxDepth = packets, maxDepth
				break
			}
			return nil, err
		}
		children = append(children, child)
		window = rest
	}
	return children, nil
}
