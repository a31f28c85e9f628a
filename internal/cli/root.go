// Package cli implements the sfx-library CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rcliao/sfx-library/internal/config"
	"github.com/rcliao/sfx-library/internal/logging"
	"github.com/rcliao/sfx-library/internal/store"
)

var (
	configFile string
	outputFlag string

	cfg    = &config.Config{}
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "sfx-library",
	Short: "Search and curate a sound-effects library",
	Long: "Search or browse sound effects by text or tag, curate the browse tags, " +
		"and manage the library. SQLite-backed, single binary.",
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentPreRunE = setup
	RootCmd.PersistentFlags().StringP("db", "d", "", "Database path (default: $SFX_LIBRARY_DB or ~/.sfx-library/library.db)")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.sfx-library/config.yaml)")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "json", "Output format: json or text")
}

func setup(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlag("db_path", cmd.Root().PersistentFlags().Lookup("db")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	l, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = l
	return nil
}

func getDBPath() string {
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	path := getDBPath()
	logger.Debug("opening store", zap.String("db", path))
	return store.NewSQLiteStore(path)
}

func exitErr(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func textOutput() bool {
	return outputFlag == "text"
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
