//go:build linux && !tinygo

package stdpins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestMappedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regs")
	m, err := OpenMappedFile(path, 0, MemorySize, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenMappedFile returned %v", err)
	}
	SetRegisters(m)
	led := Def[Mxx8]('B', 5, ActiveHigh)
	ConfigureOutput(led)
	Assert(led)
	if err := m.Close(); err != nil {
		t.Fatalf("Close returned %v", err)
	}
	SetRegisters(NewMemory())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != MemorySize {
		t.Fatalf("file size %d, expected %d", len(data), MemorySize)
	}
	if data[0x24] != 0x20 || data[0x25] != 0x20 {
		t.Errorf("DDRB/PORTB in file are %#x/%#x, expected 0x20/0x20", data[0x24], data[0x25])
	}

	// reopening sees the persisted state
	m, err = OpenMappedFile(path, 0, MemorySize, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	if m.Read(0x25) != 0x20 {
		t.Error("state did not persist")
	}
}
