package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/requireiot/stdpins"
)

var pinmapFamily string

var pinmapCmd = &cobra.Command{
	Use:   "pinmap",
	Short: "Show the pins of a chip family",
	Long: `Show every port bit of a family with its register addresses,
available functions and Arduino pin number.

Examples:
  stdpins pinmap --family atmega328p
  stdpins pinmap -f Tiny85`,
	Args: cobra.NoArgs,
	RunE: runPinmap,
}

func init() {
	rootCmd.AddCommand(pinmapCmd)
	pinmapCmd.Flags().StringVarP(&pinmapFamily, "family", "f", "", "family or MCU name")
	pinmapCmd.MarkFlagRequired("family")
}

func runPinmap(cmd *cobra.Command, args []string) error {
	f, err := stdpins.LookupFamily(pinmapFamily)
	if err != nil {
		return err
	}
	var rows [][]string
	for _, pi := range stdpins.PinMap(f) {
		arduino := ""
		if pi.HasArduinoPin {
			arduino = strconv.Itoa(pi.ArduinoPin)
		}
		rows = append(rows, []string{
			pi.Name(),
			fmt.Sprintf("0x%02x", pi.Registers.PIN),
			fmt.Sprintf("0x%02x", pi.Registers.DDR),
			fmt.Sprintf("0x%02x", pi.Registers.PORT),
			pi.Functions.String(),
			strings.Join(pi.AltNames, " "),
			arduino,
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(f.Table().Name()))
	fmt.Fprintln(out, renderTable([]string{"Pin", "PIN", "DDR", "PORT", "Functions", "Alternate", "Arduino"}, rows))
	return nil
}
