package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/gate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "List the whole library",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runGated(cmd, gate.ViewAllAction())
		},
	}
	addGateFlags(cmd)
	RootCmd.AddCommand(cmd)
}
