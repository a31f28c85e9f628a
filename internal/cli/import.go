package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import sounds from JSON or YAML",
		Long: "Import a list of sounds (stdin or file), in the format produced by export. " +
			"Entries missing a title or audio URL, and entries whose audio URL is already in the library, are skipped.",
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}
	cmd.Flags().String("format", "", "Input format: json or yaml (default: from file extension, else json)")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	formatFlag, _ := cmd.Flags().GetString("format")

	var path string
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		path = args[0]
		f, err := os.Open(path)
		if err != nil {
			exitErr("open file", err)
		}
		defer f.Close()
		in = f
	}

	format, err := resolveFormat(formatFlag, path)
	if err != nil {
		exitErr("import", err)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		exitErr("read input", err)
	}
	sounds, err := decodeSounds(data, format)
	if err != nil {
		exitErr("import", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	res, err := s.ImportSounds(cmd.Context(), sounds)
	if err != nil {
		exitErr("import", err)
	}
	logger.Info("import finished", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))

	printJSON(cmd, res)
}
