package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/requireiot/stdpins/pindef"
)

var (
	genPackage string
	genOutput  string
)

var genCmd = &cobra.Command{
	Use:   "gen FILE",
	Short: "Generate Go pin definitions from a definitions file",
	Long: `Generate a Go source file declaring each pin of a definitions file
with the family symbol package, so wrong ports or functions fail the build.

Examples:
  stdpins gen board.pins                     # Write to stdout
  stdpins gen board.pins -p board -o pins.go`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(args[0])
		if err != nil {
			return err
		}
		src, err := pindef.Generate(b, genPackage, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		if genOutput == "" {
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		if err := os.WriteFile(genOutput, src, 0644); err != nil {
			return err
		}
		log.Info().Str("file", genOutput).Int("pins", len(b.Pins)).Msg("generated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "pins", "Go package name")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default stdout)")
}
