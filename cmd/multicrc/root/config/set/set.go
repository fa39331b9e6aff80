package set

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/noxworld-dev/multicrc"
	"github.com/noxworld-dev/multicrc/internal/cliutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ValidConfigKeys defines the allowed configuration keys
var ValidConfigKeys = []string{
	"init",
	"poly",
	"bits",
	"xorout",
}

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a default CRC parameter that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Default to CRC-32
			$ multicrc config set bits 32

			# Set the default polynomial
			$ multicrc config set poly 0xEDB88320
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			if !slices.Contains(ValidConfigKeys, key) {
				return fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, ValidConfigKeys)
			}
			if err := validate(key, value); err != nil {
				return err
			}

			viper.Set(key, value)

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}

func validate(key, value string) error {
	if key == "bits" {
		_, err := multicrc.ParseWidth(value)
		return err
	}
	_, err := cliutil.ParseUint32(key, value)
	return err
}
