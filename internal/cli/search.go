package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/sfx-library/internal/gate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search sounds by title and tags",
		Long: "A sound matches if any term appears in its title or tags. " +
			"Exact title matches come first, then title substrings, then tag matches.",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runGated(cmd, gate.QueryAction(strings.Join(args, " ")))
		},
	}
	addGateFlags(cmd)
	RootCmd.AddCommand(cmd)
}
