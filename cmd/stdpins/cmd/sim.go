package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/requireiot/stdpins"
	"github.com/requireiot/stdpins/pindef"
)

var (
	simState   string
	simIdleLow bool
)

var simCmd = &cobra.Command{
	Use:   "sim FILE OP...",
	Short: "Run pin operations against a simulated chip",
	Long: `Apply pin operations to a simulated chip and print the resulting
registers and logical pin levels. Pins are named as in FILE.

Operations:
  output:NAME  input:NAME  pullup:NAME  nopullup:NAME
  assert:NAME  negate:NAME  toggle:NAME
  set:NAME=0|1  setlogical:NAME=0|1
  drive:NAME=0|1  release:NAME      (external signal on an input)

Examples:
  stdpins sim board.pins output:led assert:led
  stdpins sim board.pins pullup:button drive:button=0
  stdpins sim board.pins --state regs.bin toggle:led`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBoard(args[0])
		if err != nil {
			return err
		}
		ops, err := parseOps(args[1:])
		if err != nil {
			return err
		}

		var backing stdpins.RegisterFile
		if simState != "" {
			state, closeState, err := openState(simState)
			if err != nil {
				return err
			}
			defer closeState()
			backing = state
		}
		sim := stdpins.NewSimulator(b.Family, backing, log)
		for _, port := range b.Family.Table().Ports() {
			sim.SetIdle(port, !simIdleLow)
		}
		return runSim(cmd.OutOrStdout(), b, sim, ops)
	},
}

func init() {
	rootCmd.AddCommand(simCmd)
	simCmd.Flags().StringVar(&simState, "state", "", "keep register state in this file between runs")
	simCmd.Flags().BoolVar(&simIdleLow, "idle-low", false, "floating inputs read low instead of high")
}

type simOp struct {
	verb  string
	pin   string
	value bool
}

func (op simOp) String() string {
	switch op.verb {
	case "set", "setlogical", "drive":
		v := 0
		if op.value {
			v = 1
		}
		return fmt.Sprintf("%s:%s=%d", op.verb, op.pin, v)
	}
	return op.verb + ":" + op.pin
}

var simVerbs = map[string]bool{
	"output": false, "input": false, "pullup": false, "nopullup": false,
	"assert": false, "negate": false, "toggle": false, "release": false,
	"set": true, "setlogical": true, "drive": true,
}

// parseOps parses "verb:name" and "verb:name=0|1" arguments.
func parseOps(args []string) ([]simOp, error) {
	var ops []simOp
	for _, arg := range args {
		verb, rest, ok := strings.Cut(arg, ":")
		if !ok || rest == "" {
			return nil, errors.Errorf("operation '%s': expected VERB:NAME", arg)
		}
		takesValue, known := simVerbs[verb]
		if !known {
			return nil, errors.Errorf("operation '%s': unknown verb '%s'", arg, verb)
		}
		op := simOp{verb: verb, pin: rest}
		if takesValue {
			name, value, ok := strings.Cut(rest, "=")
			if !ok || (value != "0" && value != "1") {
				return nil, errors.Errorf("operation '%s': expected %s:NAME=0 or %s:NAME=1", arg, verb, verb)
			}
			op.pin, op.value = name, value == "1"
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// runSim binds sim as the register file, applies ops and prints the result.
func runSim(w io.Writer, b *pindef.Board, sim *stdpins.Simulator, ops []simOp) error {
	prev := stdpins.CurrentRegisters()
	stdpins.SetRegisters(sim)
	defer stdpins.SetRegisters(prev)

	var levels [][]string
	var err error
	switch b.Family.(type) {
	case stdpins.Mxx8:
		levels, err = applyOps[stdpins.Mxx8](b, sim, ops)
	case stdpins.Mxx4:
		levels, err = applyOps[stdpins.Mxx4](b, sim, ops)
	case stdpins.Mega32:
		levels, err = applyOps[stdpins.Mega32](b, sim, ops)
	case stdpins.Mega8:
		levels, err = applyOps[stdpins.Mega8](b, sim, ops)
	case stdpins.Tiny85:
		levels, err = applyOps[stdpins.Tiny85](b, sim, ops)
	case stdpins.Tiny2313:
		levels, err = applyOps[stdpins.Tiny2313](b, sim, ops)
	default:
		return errors.Errorf("family %s cannot be simulated", b.Family.Table().Name())
	}
	if err != nil {
		return err
	}

	var regs [][]string
	for _, port := range sim.Table().Ports() {
		pin, ddr, out, _ := sim.Snapshot(port)
		regs = append(regs, []string{port.String(), fmt.Sprintf("%08b", pin), fmt.Sprintf("%08b", ddr), fmt.Sprintf("%08b", out)})
	}
	fmt.Fprintln(w, titleStyle.Render(b.Family.Table().Name()+" registers"))
	fmt.Fprintln(w, renderTable([]string{"Port", "PIN", "DDR", "PORT"}, regs))
	fmt.Fprintln(w, titleStyle.Render("Pins"))
	fmt.Fprintln(w, renderTable([]string{"Name", "Pin", "Direction", "Level", "Logical"}, levels))
	return nil
}

// applyOps runs ops on pins of family F and returns a row per defined pin.
func applyOps[F stdpins.Family](b *pindef.Board, sim *stdpins.Simulator, ops []simOp) ([][]string, error) {
	for _, op := range ops {
		p, err := pindef.PinFor[F](b, op.pin)
		if err != nil {
			return nil, errors.Wrapf(err, "operation '%s'", op)
		}
		switch op.verb {
		case "output":
			stdpins.ConfigureOutput(p)
		case "input":
			stdpins.AsInput(p)
		case "pullup":
			stdpins.ConfigureInput(p, true)
		case "nopullup":
			stdpins.ConfigureInput(p, false)
		case "assert":
			stdpins.Assert(p)
		case "negate":
			stdpins.Negate(p)
		case "toggle":
			stdpins.Toggle(p)
		case "set":
			stdpins.SetPhysical(p, op.value)
		case "setlogical":
			stdpins.SetLogical(p, op.value)
		case "drive":
			sim.Drive(p.Port(), p.Bit(), op.value)
		case "release":
			sim.Release(p.Port(), p.Bit())
		}
		log.Debug().Str("op", op.String()).Str("pin", p.String()).Msg("applied")
	}

	var rows [][]string
	for _, d := range b.Pins {
		p, err := pindef.PinFor[F](b, d.Name)
		if err != nil {
			return nil, err
		}
		_, ddr, _, _ := sim.Snapshot(p.Port())
		dir := "in"
		if ddr&p.Mask() != 0 {
			dir = "out"
		}
		level := "low"
		if stdpins.ReadPhysical(p) {
			level = "high"
		}
		logical := "FALSE"
		if stdpins.ReadLogical(p) {
			logical = "TRUE"
		}
		rows = append(rows, []string{d.Name, fmt.Sprintf("P%s%d", p.Port(), p.Bit()), dir, level, logical})
	}
	return rows, nil
}
