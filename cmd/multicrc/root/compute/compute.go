package compute

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/noxworld-dev/multicrc"
	"github.com/noxworld-dev/multicrc/internal/cliutil"
	"github.com/spf13/cobra"
)

func NewComputeCmd() *cobra.Command {
	var (
		start    int
		end      int
		preset   string
		useTable bool
		isHex    bool
	)

	cmd := &cobra.Command{
		Use:   "compute [file]",
		Short: "Compute a CRC checksum",
		Long:  `Compute a reflected CRC-8, CRC-16 or CRC-32 checksum over a byte range of a file or stdin.`,
		Example: heredoc.Doc(`
			# CRC-16/KERMIT of a file
			$ multicrc compute --bits 16 --poly 0x8408 ./firmware.bin

			# CRC-32 of the bytes 4..15 of a hex string
			$ echo 00112233445566778899aabbccddeeff | multicrc compute --hex --bits 32 --poly 0xEDB88320 --init 0xFFFFFFFF --start 4

			# Use a named preset and print JSON
			$ multicrc compute --preset CRC-32/ISO-HDLC --format json ./firmware.bin
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			input, err := cliutil.ReadInput(cmd.InOrStdin(), path, isHex)
			if err != nil {
				return err
			}

			params, err := resolveParams(cmd, preset)
			if err != nil {
				return err
			}
			params.Start = start
			params.End = end
			if !cmd.Flags().Changed("end") {
				params.End = len(input) - 1
			}
			params.Table = useTable

			log.Debug("Computing CRC",
				"width", params.Width, "init", fmt.Sprintf("%#x", params.Initial),
				"poly", fmt.Sprintf("%#x", params.Poly), "xorout", fmt.Sprintf("%#x", params.XorOut),
				"start", params.Start, "end", params.End, "size", len(input))

			sum, err := multicrc.Compute(input, params)
			if err != nil {
				log.Error("failed to compute CRC", "error", err)
				return err
			}

			result := map[string]any{
				"checksum": sum.String(),
				"width":    int(sum.Width),
				"start":    params.Start,
				"end":      params.End,
			}
			if preset != "" {
				result["preset"] = preset
			}
			return cliutil.HandleOutput(cmd, result, sum.String())
		},
	}

	cmd.Flags().String("init", "0", "Initial register value (decimal or 0x hex)")
	cmd.Flags().String("poly", "0x8408", "Reflected generator polynomial (decimal or 0x hex)")
	cmd.Flags().String("xorout", "0", "Value XORed into the register after the last byte")
	cmd.Flags().String("bits", "8", "CRC width: 8, 16 or 32")
	cmd.Flags().IntVar(&start, "start", 0, "Index of the first byte to checksum")
	cmd.Flags().IntVar(&end, "end", 0, "Index of the last byte to checksum (default: last byte of the input)")
	cmd.Flags().StringVar(&preset, "preset", "", "Name of a standard CRC model, see 'multicrc presets'")
	cmd.Flags().BoolVar(&useTable, "table", false, "Use table-driven computation")
	cmd.Flags().BoolVar(&isHex, "hex", false, "Decode the input as hex text")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

// resolveParams builds parameters from a preset, the config file and the
// command line, in increasing priority.
func resolveParams(cmd *cobra.Command, preset string) (multicrc.Params, error) {
	var p multicrc.Params
	if preset != "" {
		pr, ok := multicrc.LookupPreset(preset)
		if !ok {
			return p, fmt.Errorf("unknown preset: %s", preset)
		}
		p = pr.Params(0, 0)
	}

	var err error
	if preset == "" || cmd.Flags().Changed("bits") {
		p.Width, err = multicrc.ParseWidth(cliutil.GetString(cmd, "bits", "bits"))
		if err != nil {
			return p, err
		}
	}
	if preset == "" || cmd.Flags().Changed("init") {
		if p.Initial, err = cliutil.GetUint32(cmd, "init", "init"); err != nil {
			return p, err
		}
	}
	if preset == "" || cmd.Flags().Changed("poly") {
		if p.Poly, err = cliutil.GetUint32(cmd, "poly", "poly"); err != nil {
			return p, err
		}
	}
	if preset == "" || cmd.Flags().Changed("xorout") {
		if p.XorOut, err = cliutil.GetUint32(cmd, "xorout", "xorout"); err != nil {
			return p, err
		}
	}
	return p, nil
}
