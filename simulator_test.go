package stdpins

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSimulatorPinLevels(t *testing.T) {
	s := NewSimulator(Mxx8{}, nil, zerolog.Nop())
	r, _ := Mxx8{}.Table().Registers('B')

	// bit 0 output high, bit 1 output low, bit 2 input pulled up,
	// bit 3 input floating, bit 4 input driven low
	s.Write(r.DDR, 0x03)
	s.Write(r.PORT, 0x05)
	s.Drive('B', 4, false)

	pin := s.Read(r.PIN)
	expect := map[uint8]bool{0: true, 1: false, 2: true, 3: true, 4: false}
	for bit, high := range expect {
		if got := pin&(1<<bit) != 0; got != high {
			t.Errorf("PB%d reads %v, expected %v", bit, got, high)
		}
	}

	s.SetIdle('B', false)
	if s.Read(r.PIN)&0x08 != 0 {
		t.Error("floating PB3 should read low with a low idle level")
	}

	// outputs ignore external drive
	s.Drive('B', 0, false)
	if s.Read(r.PIN)&0x01 == 0 {
		t.Error("PB0 is an output driven high, external drive must not show")
	}
}

func TestSimulatorPinWrite(t *testing.T) {
	native := NewSimulator(Mxx8{}, nil, zerolog.Nop())
	r, _ := Mxx8{}.Table().Registers('C')
	native.Write(r.PIN, 0x11)
	if _, _, port, _ := native.Snapshot('C'); port != 0x11 {
		t.Errorf("write to PINC should toggle PORTC, got %#x", port)
	}

	old := NewSimulator(Mega8{}, nil, zerolog.Nop())
	r, _ = Mega8{}.Table().Registers('C')
	old.Write(r.PIN, 0x11)
	if _, _, port, _ := old.Snapshot('C'); port != 0 {
		t.Errorf("PINC is read only on Mega8, PORTC changed to %#x", port)
	}
}

func TestSimulatorBacking(t *testing.T) {
	mem := NewMemory()
	s := NewSimulator(Tiny85{}, mem, zerolog.Nop())
	SetRegisters(s)
	led := Def[Tiny85]('B', 3, ActiveLow)
	ConfigureOutput(led)
	Assert(led)

	if !mem.Bit(0x37, 3) {
		t.Error("DDRB3 should be set in the backing memory")
	}
	if mem.Bit(0x38, 3) {
		t.Error("PORTB3 should be clear in the backing memory")
	}
	if _, _, _, ok := s.Snapshot('C'); ok {
		t.Error("Tiny85 has no port C")
	}
}
