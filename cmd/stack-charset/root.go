package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Flags persistent across commands
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stack-charset",
	Short: "Detects the character encoding and line-ending style of text files.",
	Long: `stack-charset analyzes raw bytes to determine which character encoding most
plausibly produced them and which line-ending convention they use.

Detection combines BOM signatures, byte-distribution heuristics, statistical
guessing and trial decoding against a prioritized candidate list. It is
heuristic: results are deterministic and reproducible, not guaranteed correct.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is search ., $HOME/.config/stack-charset/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging output")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(convertCmd)
}
