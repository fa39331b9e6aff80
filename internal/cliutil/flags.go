package cliutil

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetUint32 returns a numeric flag value, falling back to the config key
// when the flag is not set on the command line. Values may be decimal or
// prefixed with 0x.
func GetUint32(cmd *cobra.Command, flag, key string) (uint32, error) {
	value, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		value = viper.GetString(key)
	}
	return ParseUint32(flag, value)
}

// GetString returns a string flag value, falling back to the config key
// when the flag is not set on the command line.
func GetString(cmd *cobra.Command, flag, key string) string {
	value, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return value
}

// ParseUint32 parses a decimal or 0x-prefixed unsigned 32-bit number.
func ParseUint32(name, value string) (uint32, error) {
	v, err := strconv.ParseUint(value, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return uint32(v), nil
}
