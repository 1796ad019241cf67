package internal

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goplus/liftoff/platform"
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Long:  `Platforms lists every supported platform in generation order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printPlatforms(cmd.OutOrStdout(), platform.Builtin())
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func printPlatforms(w io.Writer, r *platform.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tORDER\tKIND\tDESCRIPTION")
	for _, d := range r.AllOrdered() {
		kind := "standard"
		if !d.Standard {
			kind = "optional"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", d.ID, d.Order, kind, d.Description)
	}
	return tw.Flush()
}
