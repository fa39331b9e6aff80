package multicrc

// Register is a CRC accumulator type. The type fixes the register width,
// so converting a value to it is the width mask.
type Register interface {
	~uint8 | ~uint16 | ~uint32
}

// Update runs the reflected (LSB-first) bit-serial reduction of p into crc.
// The polynomial is expected in its reflected form.
func Update[T Register](crc, poly T, p []byte) T {
	for _, v := range p {
		crc ^= T(v)
		for i := 0; i < 8; i++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// CRC8 computes an 8-bit reflected CRC of p.
func CRC8(p []byte, initial, poly uint8) uint8 {
	return Update(initial, poly, p)
}

// CRC16 computes a 16-bit reflected CRC of p.
func CRC16(p []byte, initial, poly uint16) uint16 {
	return Update(initial, poly, p)
}

// CRC32 computes a 32-bit reflected CRC of p.
//
// No final inversion is applied: CRC32(p, 0xFFFFFFFF, crc32.IEEE) is the
// complement of crc32.ChecksumIEEE(p).
func CRC32(p []byte, initial, poly uint32) uint32 {
	return Update(initial, poly, p)
}
