// Command fitcube solves the 3x3x3 snake cube puzzle: it searches for a
// path through all 27 cells whose straight segments follow the fixed
// distance sequence, and can check, hint, store and serve such paths.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/fitcube/internal/logging"
)

const version = "v0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagLogLevel  string
	flagStorage   string
	flagDataDir   string
)

var (
	// cfg is loaded by PersistentPreRunE for every subcommand.
	cfg    *viper.Viper
	logger = logging.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fitcube",
	Short:         "Solve the 3x3x3 snake cube",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (loadConfig refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(flagConfigDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = v
		logger = logging.New(logging.ParseLevel(v.GetString(cfgKeyLogLevel)), cmd.ErrOrStderr())
		slog.SetDefault(logger)
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "directory holding fitcube.yaml (default: current directory)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&flagStorage, "storage", "", "storage backend: fs|sqlite|redis")
	pf.StringVar(&flagDataDir, "data-dir", "", "directory for fs and sqlite storage")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(uniqueCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitcube version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "fitcube", version)
	},
}
