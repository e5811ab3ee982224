package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/requireiot/stdpins"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List supported chip families",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, f := range stdpins.Families() {
			t := f.Table()
			var ports []string
			for _, p := range t.Ports() {
				ports = append(ports, p.String())
			}
			toggle := "read-modify-write"
			if t.NativeToggle() {
				toggle = "native"
			}
			rows = append(rows, []string{t.Name(), strings.Join(ports, ""), toggle, strings.Join(t.MCUs(), " ")})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Family", "Ports", "Toggle", "MCUs"}, rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}
