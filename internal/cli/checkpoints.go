package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"agingd/internal/registry"
)

func newCheckpointsCmd(o *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "checkpoints",
		Short: "List known checkpoints and whether they are present under --models-dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cps, err := registry.List(o.cfg.ModelsDir)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(o.out)
				enc.SetIndent("", "  ")
				return enc.Encode(cps)
			}
			tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Z_CHANNELS\tNAME\tPRESENT\tPATH")
			for _, cp := range cps {
				fmt.Fprintf(tw, "%d\t%s\t%t\t%s\n", cp.ZChannels, cp.Name, cp.Present, cp.Path)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}
