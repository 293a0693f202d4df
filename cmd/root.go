package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/w3worker/internal/config"
	"github.com/Mohsinsiddi/w3worker/internal/ui"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3worker/cmd.Version=0.2.0" .
var Version = "0.1.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3worker",
	Short: "On-chain transaction history as an agent worker",
	Long: `w3worker — on-chain transaction history for agent frameworks.

  Exposes get_transaction_history through a local function registry,
  backed by the Alchemy Data API, plus a terminal front end for the
  same calls.

Configure once with: w3worker config set-key <alchemy-api-key>
Or export ` + config.EnvAPIKey + ` (a .env file in the working directory works too).`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		config.LoadDotEnv()
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(ui.Banner())
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// W3WORKER_CONFIG_DIR seeds the --config default; the flag still wins.
	if envDir := os.Getenv(config.EnvConfigDir); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.w3worker)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "stream worker log lines as they happen")

	// Register all sub-commands.
	rootCmd.AddCommand(
		historyCmd,
		runCmd,
		functionsCmd,
		configCmd,
	)
}
