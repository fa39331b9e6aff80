package multicrc

import "fmt"

// MinRangeLength is the minimal number of bytes, counted inclusively from
// Start to End, a checksum may cover. A range with Start == End is rejected.
const MinRangeLength = 2

// Params configures a single checksum computation.
//
// Initial, Poly and XorOut are masked to Width without an error if they
// carry higher bits. Poly is the reflected form of the generator polynomial.
type Params struct {
	Width   Width
	Initial uint32
	Poly    uint32
	// XorOut is applied to the register after the last byte. Zero keeps the raw register.
	XorOut uint32
	// Start and End are inclusive byte indexes into the input.
	Start int
	End   int
	// Table selects the table-driven implementation. The result is the same.
	Table bool
}

// Validate checks p against an input of length n.
func (p Params) Validate(n int) error {
	if p.End < p.Start {
		return errEndBeforeStart()
	}
	if p.End-p.Start+1 < MinRangeLength {
		return errRangeTooShort()
	}
	if !p.Width.Valid() {
		return errUnsupportedWidth()
	}
	if p.Start < 0 || p.End >= n {
		return errOutOfBounds(p.Start, p.End, n)
	}
	return nil
}

// Checksum is a computed CRC value of a given width.
type Checksum struct {
	Width Width
	Value uint32
}

// String formats the checksum as zero-padded lowercase hex.
func (c Checksum) String() string {
	return fmt.Sprintf("%0*x", c.Width.Digits(), c.Value&c.Width.Mask())
}

// Compute calculates the checksum of input[p.Start:p.End+1].
func Compute(input []byte, p Params) (Checksum, error) {
	if err := p.Validate(len(input)); err != nil {
		return Checksum{}, err
	}
	data := input[p.Start : p.End+1]
	var v uint32
	switch p.Width {
	case Width8:
		if p.Table {
			v = uint32(UpdateTable(uint8(p.Initial), MakeTable(uint8(p.Poly)), data))
		} else {
			v = uint32(CRC8(data, uint8(p.Initial), uint8(p.Poly)))
		}
	case Width16:
		if p.Table {
			v = uint32(UpdateTable(uint16(p.Initial), MakeTable(uint16(p.Poly)), data))
		} else {
			v = uint32(CRC16(data, uint16(p.Initial), uint16(p.Poly)))
		}
	case Width32:
		if p.Table {
			v = updateTable32(p.Initial, p.Poly, data)
		} else {
			v = CRC32(data, p.Initial, p.Poly)
		}
	default:
		return Checksum{}, errUnsupportedWidth()
	}
	v = (v ^ p.XorOut) & p.Width.Mask()
	return Checksum{Width: p.Width, Value: v}, nil
}

// ComputeCRC calculates the reflected CRC of input bytes from start to end
// inclusive and returns it as a hex string of width/4 digits.
func ComputeCRC(input []byte, width Width, initial, poly uint32, start, end int) (string, error) {
	sum, err := Compute(input, Params{
		Width:   width,
		Initial: initial,
		Poly:    poly,
		Start:   start,
		End:     end,
	})
	if err != nil {
		return "", err
	}
	return sum.String(), nil
}
