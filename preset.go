package multicrc

import "strings"

// CheckInput is the conventional input used for catalogued check values.
const CheckInput = "123456789"

// Preset is a well-known reflected CRC model.
type Preset struct {
	Name    string
	Width   Width
	Poly    uint32 // reflected
	Initial uint32
	XorOut  uint32
	// Check is the checksum of CheckInput.
	Check uint32
}

var presets = []Preset{
	{Name: "CRC-8/MAXIM-DOW", Width: Width8, Poly: 0x8C, Initial: 0x00, XorOut: 0x00, Check: 0xA1},
	{Name: "CRC-8/ROHC", Width: Width8, Poly: 0xE0, Initial: 0xFF, XorOut: 0x00, Check: 0xD0},
	{Name: "CRC-16/ARC", Width: Width16, Poly: 0xA001, Initial: 0x0000, XorOut: 0x0000, Check: 0xBB3D},
	{Name: "CRC-16/KERMIT", Width: Width16, Poly: 0x8408, Initial: 0x0000, XorOut: 0x0000, Check: 0x2189},
	{Name: "CRC-16/MODBUS", Width: Width16, Poly: 0xA001, Initial: 0xFFFF, XorOut: 0x0000, Check: 0x4B37},
	{Name: "CRC-16/MCRF4XX", Width: Width16, Poly: 0x8408, Initial: 0xFFFF, XorOut: 0x0000, Check: 0x6F91},
	{Name: "CRC-16/X-25", Width: Width16, Poly: 0x8408, Initial: 0xFFFF, XorOut: 0xFFFF, Check: 0x906E},
	{Name: "CRC-32/ISO-HDLC", Width: Width32, Poly: 0xEDB88320, Initial: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, Check: 0xCBF43926},
	{Name: "CRC-32/JAMCRC", Width: Width32, Poly: 0xEDB88320, Initial: 0xFFFFFFFF, XorOut: 0x00000000, Check: 0x340BC6D9},
	{Name: "CRC-32/ISCSI", Width: Width32, Poly: 0x82F63B78, Initial: 0xFFFFFFFF, XorOut: 0xFFFFFFFF, Check: 0xE3069283},
}

// Presets returns a copy of the preset catalogue.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by its name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Params returns computation parameters of the preset over the given range.
func (p Preset) Params(start, end int) Params {
	return Params{
		Width:   p.Width,
		Initial: p.Initial,
		Poly:    p.Poly,
		XorOut:  p.XorOut,
		Start:   start,
		End:     end,
	}
}
