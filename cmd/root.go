package cmd

import (
	"fmt"
	"os"

	"dltime-cli/cmd/config"
	"dltime-cli/cmd/utils"

	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debug       bool
	configPath  string
	overrideCwd string
	noEmoji     bool
)

// activeConfig is resolved once per invocation in PersistentPreRunE.
var (
	activeConfig     = config.Default()
	activeConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "dlt",
	Short: "dlt - estimate how long a download will take",
	Long: `dlt estimates how long it takes to transfer a file of a given size
over a connection of a given speed, and prints the result as HH:MM:SS.

Sizes use binary multiples of bytes (1 KB = 1024 bytes); speeds use decimal
multiples of bits (1 Mbps = 1,000,000 bits per second).

Getting started:
  # Open the interactive form
  dlt

  # One-shot estimate
  dlt calc 700 MB 8 Mbps

  # Answer a few prompts instead
  dlt ask`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior when no subcommand is specified
		if !isInteractiveTerminal() {
			return cmd.Help()
		}
		return runForm(activeConfig, activeConfigPath)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed at this point; honor --cwd and --debug
		utils.OverrideCwd = overrideCwd

		cfg, path, err := config.Discover(configPath, utils.GetEffectiveCWD())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		activeConfig = cfg
		activeConfigPath = path

		// Discover has loaded .env, so LOG_LEVEL may come from there too
		if utils.LogRequested(debug) {
			if err := utils.InitDebugLogger("", debug); err != nil {
				return fmt.Errorf("failed to open debug log: %w", err)
			}
		}

		utils.SetEmojiEnabled(cfg.EmojiEnabled() && !noEmoji)
		if debug {
			if path == "" {
				utils.OutputDebug("No config file found, using built-in defaults")
			} else {
				utils.OutputDebug("Using config %s", path)
			}
		}
		utils.LogFields("config resolved", logrus.Fields{
			"path":       path,
			"size_unit":  cfg.Defaults.SizeUnit,
			"speed_unit": cfg.Defaults.SpeedUnit,
			"presets":    len(cfg.SpeedPresets),
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		utils.CloseDebugLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging to debug.log")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a dlt config file (default: dlt.yaml/yml/toml/json in cwd, then ~/.dlt)")
	rootCmd.PersistentFlags().StringVar(&overrideCwd, "cwd", "", "Override the current working directory for CLI operations")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "Disable emoji prefixes in output")
}

// isInteractiveTerminal reports whether both stdin and stdout are terminals.
func isInteractiveTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// terminalWidth returns the stdout width, or fallback when unknown.
func terminalWidth(fallback int) int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
