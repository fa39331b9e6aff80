package multicrc

import (
	"hash/crc32"
	"math/rand"
	"testing"

	kcrc32 "github.com/klauspost/crc32"
	"github.com/stretchr/testify/require"
)

var checkData = []byte(CheckInput)

func TestCRC32MatchesStd(t *testing.T) {
	require.Equal(t, uint32(0x340BC6D9), CRC32(checkData, 0xFFFFFFFF, crc32.IEEE))
	require.Equal(t, crc32.ChecksumIEEE(checkData), ^CRC32(checkData, 0xFFFFFFFF, crc32.IEEE))

	r := rand.New(rand.NewSource(1))
	buf := make([]byte, 1024)
	r.Read(buf)
	for _, poly := range []uint32{crc32.IEEE, crc32.Castagnoli, crc32.Koopman} {
		std := crc32.Checksum(buf, crc32.MakeTable(poly))
		require.Equal(t, std, ^CRC32(buf, 0xFFFFFFFF, poly), "poly %#x", poly)
		kp := kcrc32.Checksum(buf, kcrc32.MakeTable(poly))
		require.Equal(t, kp, ^CRC32(buf, 0xFFFFFFFF, poly), "poly %#x", poly)
	}
}

func TestCRC8AndCRC16(t *testing.T) {
	require.Equal(t, uint8(0xA1), CRC8(checkData, 0x00, 0x8C))
	require.Equal(t, uint8(0xD0), CRC8(checkData, 0xFF, 0xE0))
	require.Equal(t, uint16(0x2189), CRC16(checkData, 0x0000, 0x8408))
	require.Equal(t, uint16(0x4B37), CRC16(checkData, 0xFFFF, 0xA001))
}

func TestUpdateChained(t *testing.T) {
	whole := Update(uint16(0xFFFF), 0xA001, checkData)
	part := Update(uint16(0xFFFF), 0xA001, checkData[:4])
	part = Update(part, 0xA001, checkData[4:])
	require.Equal(t, whole, part)
}

func TestTableMatchesBitwise(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	buf := make([]byte, 257)
	r.Read(buf)
	for i := 0; i < 50; i++ {
		iv, poly := r.Uint32(), r.Uint32()

		require.Equal(t, Update(uint8(iv), uint8(poly), buf),
			UpdateTable(uint8(iv), MakeTable(uint8(poly)), buf))
		require.Equal(t, Update(uint16(iv), uint16(poly), buf),
			UpdateTable(uint16(iv), MakeTable(uint16(poly)), buf))
		require.Equal(t, Update(iv, poly, buf),
			UpdateTable(iv, MakeTable(poly), buf))
		require.Equal(t, Update(iv, poly, buf), updateTable32(iv, poly, buf))
	}
	for _, poly := range []uint32{crc32.IEEE, crc32.Castagnoli} {
		iv := r.Uint32()
		require.Equal(t, Update(iv, poly, buf), updateTable32(iv, poly, buf), "poly %#x", poly)
	}
}

func TestMakeTableStd(t *testing.T) {
	tab := MakeTable(uint32(crc32.IEEE))
	std := crc32.MakeTable(crc32.IEEE)
	for i := range tab {
		require.Equal(t, std[i], tab[i], "entry %d", i)
	}
}
