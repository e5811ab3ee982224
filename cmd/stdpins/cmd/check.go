package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/requireiot/stdpins/pindef"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a pin definitions file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(args[0])
		if err != nil {
			return err
		}
		var rows [][]string
		for _, d := range b.Pins {
			rows = append(rows, []string{d.Name, d.Port.String(), fmt.Sprint(d.Bit), d.Polarity.String(), d.Func})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %s, %d pins", args[0], b.Family.Table().Name(), len(b.Pins))))
		fmt.Fprintln(out, renderTable([]string{"Name", "Port", "Bit", "Polarity", "Function"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// loadBoard parses and resolves a definitions file.
func loadBoard(path string) (*pindef.Board, error) {
	f, err := pindef.ParseFile(path)
	if err != nil {
		return nil, err
	}
	b, err := pindef.Resolve(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Str("family", b.Family.Table().Name()).Int("pins", len(b.Pins)).Msg("loaded definitions")
	return b, nil
}
