package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ejjaffe/parabolines"
)

func newSketchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sketches",
		Short: "List the built-in sketches",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range parabolines.Gallery() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
