package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"appsweep/internal/config"
	"appsweep/internal/logging"
)

var (
	// Global flags
	cfgPath   string
	directory string
	dryRun    bool
	logFile   string
	verbose   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Running it performs one sweep.
var rootCmd = &cobra.Command{
	Use:   "appsweep",
	Short: "Remove duplicate .app files, keeping the highest versions",
	Long: `appsweep scans a directory for files named <name>_<version>.app,
groups files sharing the same name part, and deletes all but the
highest-versioned file in each group.

Live deletion is the default mode. Use --dry-run to see what would be
removed without touching the filesystem.

Example:
  appsweep -d /srv/extensions --dry-run`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// version needs neither config nor a logger
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		// Flags take precedence over config file and environment.
		if cmd.Flags().Changed("directory") {
			cfg.Scan.Directory = directory
		}
		if cmd.Flags().Changed("dry-run") {
			cfg.Execution.DryRun = dryRun
		}
		if cmd.Flags().Changed("log-file") {
			cfg.Logging.File = logFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSweep,
}

// versionCmd prints the tool version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the appsweep version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "appsweep %s\n", config.DefaultConfig().Version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "appsweep.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append-only log file (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Sweep flags
	rootCmd.Flags().StringVarP(&directory, "directory", "d", ".", "Directory to process")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only report what would be deleted")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
