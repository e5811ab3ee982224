package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/requireiot/stdpins"
	"github.com/requireiot/stdpins/pindef"
)

const testBoard = `family atmega328p
led    = B,1,ACTIVE_HIGH
button = D,6,ACTIVE_LOW
`

func writeBoard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.pins")
	if err := os.WriteFile(path, []byte(testBoard), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseOps(t *testing.T) {
	ops, err := parseOps([]string{"output:led", "set:led=1", "drive:button=0"})
	if err != nil {
		t.Fatalf("parseOps failed: %v", err)
	}
	if len(ops) != 3 || ops[1].pin != "led" || !ops[1].value || ops[2].value {
		t.Errorf("unexpected ops %v", ops)
	}
	if ops[1].String() != "set:led=1" {
		t.Errorf("String() = %s", ops[1])
	}
	for _, bad := range []string{"led", "assert:", "blink:led", "set:led", "set:led=2"} {
		if _, err := parseOps([]string{bad}); err == nil {
			t.Errorf("parseOps(%q) should fail", bad)
		}
	}
}

func TestRunSim(t *testing.T) {
	f, err := pindef.ParseString("", testBoard)
	if err != nil {
		t.Fatal(err)
	}
	b, err := pindef.Resolve(f)
	if err != nil {
		t.Fatal(err)
	}
	ops, err := parseOps([]string{"output:led", "assert:led", "pullup:button", "drive:button=0"})
	if err != nil {
		t.Fatal(err)
	}
	sim := stdpins.NewSimulator(b.Family, nil, zerolog.Nop())
	var out bytes.Buffer
	if err := runSim(&out, b, sim, ops); err != nil {
		t.Fatalf("runSim failed: %v", err)
	}
	_, ddr, port, _ := sim.Snapshot('B')
	if ddr != 0x02 || port != 0x02 {
		t.Errorf("DDRB %#x PORTB %#x, expected 0x02 0x02", ddr, port)
	}
	text := out.String()
	for _, want := range []string{"Mxx8 registers", "00000010", "led", "PB1", "button", "PD6", "TRUE"} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "FALSE") {
		t.Errorf("both pins should be asserted:\n%s", text)
	}

	ops, _ = parseOps([]string{"assert:missing"})
	if err := runSim(&out, b, sim, ops); !pindef.IsInvalidDefinition(err) {
		t.Errorf("unknown pin name should fail, got %v", err)
	}
}

func TestFamiliesCommand(t *testing.T) {
	out, err := execute(t, "families")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Mxx8", "Tiny2313", "atmega328p", "native", "read-modify-write"} {
		if !strings.Contains(out, want) {
			t.Errorf("families output lacks %q", want)
		}
	}
}

func TestPinmapCommand(t *testing.T) {
	out, err := execute(t, "pinmap", "--family", "attiny85")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Tiny85", "PB0", "PB5", "0x38", "OC0A nOC1A I2C_SDA"} {
		if !strings.Contains(out, want) {
			t.Errorf("pinmap output lacks %q:\n%s", want, out)
		}
	}
	if _, err := execute(t, "pinmap", "--family", "atmega2560"); !stdpins.IsUnknownFamily(err) {
		t.Errorf("expected unknown family, got %v", err)
	}
}

func TestCheckAndGenCommands(t *testing.T) {
	path := writeBoard(t)
	out, err := execute(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Mxx8, 2 pins") {
		t.Errorf("check output:\n%s", out)
	}

	dst := filepath.Join(t.TempDir(), "pins.go")
	if _, err := execute(t, "gen", path, "--package", "board", "--output", dst); err != nil {
		t.Fatal(err)
	}
	src, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "package board") || !strings.Contains(string(src), "mxx8.Def(mxx8.PortD, 6, stdpins.ActiveLow)") {
		t.Errorf("generated source:\n%s", src)
	}
}
