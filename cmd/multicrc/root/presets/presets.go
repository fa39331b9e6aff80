package presets

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/noxworld-dev/multicrc"
	"github.com/noxworld-dev/multicrc/internal/cliutil"
	"github.com/spf13/cobra"
)

func NewPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List standard CRC models",
		Long:  `List the standard reflected CRC models that can be used with 'compute --preset'.`,
		Example: heredoc.Doc(`
			# List presets
			$ multicrc presets

			# Print preset names only
			$ multicrc presets --format json --template='{{range .}}{{.name}} {{end}}'
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := multicrc.Presets()

			result := make([]map[string]any, 0, len(list))
			var text strings.Builder
			tw := tabwriter.NewWriter(&text, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBITS\tPOLY\tINIT\tXOROUT\tCHECK")
			for _, p := range list {
				digits := p.Width.Digits()
				result = append(result, map[string]any{
					"name":   p.Name,
					"bits":   int(p.Width),
					"poly":   fmt.Sprintf("0x%0*x", digits, p.Poly),
					"init":   fmt.Sprintf("0x%0*x", digits, p.Initial),
					"xorout": fmt.Sprintf("0x%0*x", digits, p.XorOut),
					"check":  fmt.Sprintf("0x%0*x", digits, p.Check),
				})
				fmt.Fprintf(tw, "%s\t%d\t0x%0*x\t0x%0*x\t0x%0*x\t0x%0*x\n",
					p.Name, p.Width, digits, p.Poly, digits, p.Initial, digits, p.XorOut, digits, p.Check)
			}
			tw.Flush()

			return cliutil.HandleOutput(cmd, result, strings.TrimRight(text.String(), "\n"))
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
