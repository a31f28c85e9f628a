package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sounds, oldest first",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}
	cmd.Flags().String("format", formatJSON, "Output format: json or yaml")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := resolveFormat(formatFlag, "")
	if err != nil {
		exitErr("export", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sounds, err := s.ExportSounds(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if err := encodeSounds(cmd.OutOrStdout(), sounds, format); err != nil {
		exitErr("encode", err)
	}
}
