package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	b, err := DecodeHex("0x01 02\n0a FF")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x0a, 0xff}, b)

	_, err = DecodeHex("123")
	require.Error(t, err)
}

func TestReadInput(t *testing.T) {
	b, err := ReadInput(strings.NewReader("abc"), "", false)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)

	b, err = ReadInput(strings.NewReader("616263"), "-", true)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)

	path := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(path, []byte{0, 1, 2}, 0o644))
	b, err = ReadInput(nil, path, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, b)

	_, err = ReadInput(nil, filepath.Join(t.TempDir(), "missing"), false)
	require.Error(t, err)
}

func TestParseUint32(t *testing.T) {
	v, err := ParseUint32("poly", "0xEDB88320")
	require.NoError(t, err)
	require.Equal(t, uint32(0xEDB88320), v)

	v, err = ParseUint32("init", "65535")
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFF), v)

	_, err = ParseUint32("init", "0x100000000")
	require.Error(t, err)
}

func TestGetUint32ConfigFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{}
	cmd.Flags().String("poly", "0x8408", "")

	v, err := GetUint32(cmd, "poly", "poly")
	require.NoError(t, err)
	require.Equal(t, uint32(0x8408), v)

	viper.Set("poly", "0xA001")
	v, err = GetUint32(cmd, "poly", "poly")
	require.NoError(t, err)
	require.Equal(t, uint32(0xA001), v)

	require.NoError(t, cmd.Flags().Set("poly", "0x1021"))
	v, err = GetUint32(cmd, "poly", "poly")
	require.NoError(t, err)
	require.Equal(t, uint32(0x1021), v)
}

func TestHandleOutput(t *testing.T) {
	newCmd := func(args ...string) (*cobra.Command, *bytes.Buffer) {
		cmd := &cobra.Command{}
		AddOutputFlags(cmd)
		require.NoError(t, cmd.ParseFlags(args))
		var out bytes.Buffer
		cmd.SetOut(&out)
		return cmd, &out
	}
	result := map[string]any{"checksum": "2189"}

	cmd, out := newCmd()
	require.NoError(t, HandleOutput(cmd, result, "2189"))
	require.Equal(t, "2189\n", out.String())

	cmd, out = newCmd("--format", "json")
	require.NoError(t, HandleOutput(cmd, result, "2189"))
	require.JSONEq(t, `{"checksum":"2189"}`, out.String())

	cmd, out = newCmd("--format", "yaml")
	require.NoError(t, HandleOutput(cmd, result, "2189"))
	require.Equal(t, "checksum: \"2189\"\n\n", out.String())

	cmd, out = newCmd("--template", "crc={{.checksum}}")
	require.NoError(t, HandleOutput(cmd, result, "2189"))
	require.Equal(t, "crc=2189\n", out.String())

	cmd, _ = newCmd("--format", "xml")
	require.Error(t, HandleOutput(cmd, result, "2189"))
}
