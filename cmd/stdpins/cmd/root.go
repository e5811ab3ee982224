package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel string

	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "stdpins",
	Short: "Work with symbolic AVR pin definitions",
	Long: `Tools for symbolic AVR pin definitions.

Examples:
  stdpins families                         # List supported chip families
  stdpins pinmap --family atmega328p       # Show ports, registers and functions
  stdpins check board.pins                 # Validate a definitions file
  stdpins gen board.pins -p board -o pins.go
  stdpins sim board.pins output:led assert:led`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid --level")
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl).With().Timestamp().Logger()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "level", "info", "log level (debug, info, warn, error)")
}
