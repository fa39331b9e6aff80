package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/noxworld-dev/multicrc/cmd/multicrc/root/compute"
	"github.com/noxworld-dev/multicrc/cmd/multicrc/root/config"
	"github.com/noxworld-dev/multicrc/cmd/multicrc/root/presets"
	"github.com/noxworld-dev/multicrc/cmd/multicrc/root/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "multicrc <command> [flags]",
		Short: "Configurable CRC calculator",
		Long:  `Compute reflected CRC-8, CRC-16 and CRC-32 checksums with a custom polynomial, initial value and byte range.`,
		Example: heredoc.Doc(`
			$ multicrc compute --bits 32 --poly 0xEDB88320 --init 0xFFFFFFFF ./data.bin
			$ multicrc presets
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(compute.NewComputeCmd())
	cmd.AddCommand(presets.NewPresetsCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
