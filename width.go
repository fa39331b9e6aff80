package multicrc

import "strconv"

// Width is a CRC register width in bits.
type Width uint8

const (
	Width8  = Width(8)
	Width16 = Width(16)
	Width32 = Width(32)
)

// Widths returns supported widths in the order they are offered as options.
func Widths() []Width {
	return []Width{Width8, Width16, Width32}
}

// ParseWidth parses a width option such as "16".
func ParseWidth(s string) (Width, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errUnsupportedWidth()
	}
	w := Width(n)
	if !w.Valid() {
		return 0, errUnsupportedWidth()
	}
	return w, nil
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32:
		return true
	}
	return false
}

// Mask returns a mask with the lower w bits set.
func (w Width) Mask() uint32 {
	switch w {
	case Width8:
		return 0xFF
	case Width16:
		return 0xFFFF
	case Width32:
		return 0xFFFFFFFF
	}
	return 0
}

// Digits is the number of hex digits needed to print a w-bit value.
func (w Width) Digits() int {
	return int(w) / 4
}

func (w Width) String() string {
	return strconv.Itoa(int(w))
}
