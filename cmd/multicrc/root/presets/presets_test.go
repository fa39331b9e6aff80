package presets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/noxworld-dev/multicrc"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestPresetsText(t *testing.T) {
	cmd := NewPresetsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(multicrc.Presets())+1)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.Contains(t, out.String(), "CRC-32/ISO-HDLC")
	require.Contains(t, out.String(), "0xcbf43926")
}

func TestPresetsYAML(t *testing.T) {
	cmd := NewPresetsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, cmd.Execute())

	var list []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &list))
	require.Len(t, list, len(multicrc.Presets()))
	require.Equal(t, "CRC-8/MAXIM-DOW", list[0]["name"])
	require.Equal(t, "0xa1", list[0]["check"])
	require.Equal(t, 8, list[0]["bits"])
}
