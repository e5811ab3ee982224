//go:build !(tinygo && avr)

package stdpins

import (
	"github.com/rs/zerolog"
)

// Simulator is a register file that behaves like the GPIO ports of one chip
// family, so that reads of PIN reflect what the pins are doing:
//
//   - an output bit reads back its PORT latch
//   - an input driven from outside (Drive) reads the driven level
//   - an undriven input with pull-up (PORT bit set) reads high
//   - an undriven input without pull-up reads the idle level of its port,
//     high by default as with an open collector bus and its pull-up resistor
//
// Writing to PIN toggles PORT on families with native toggle and is ignored
// on the others. Registers outside the family's ports behave like Memory.
type Simulator struct {
	log     zerolog.Logger
	table   *Table
	backing RegisterFile
	ports   map[Port]*simPort
}

type simPort struct {
	regs    Registers
	driven  uint8 // bits driven from outside
	level   uint8 // levels of driven bits
	idleLow uint8 // undriven, not pulled up bits that read low
}

// NewSimulator creates a simulator for family f. Register contents live in
// backing, or in a fresh Memory when backing is nil.
func NewSimulator(f Family, backing RegisterFile, log zerolog.Logger) *Simulator {
	if backing == nil {
		backing = NewMemory()
	}
	t := f.Table()
	s := &Simulator{
		log:     log.With().Str("family", t.Name()).Logger(),
		table:   t,
		backing: backing,
		ports:   make(map[Port]*simPort),
	}
	for _, p := range t.ports {
		s.ports[p.port] = &simPort{regs: p.regs}
	}
	return s
}

// Family table simulated.
func (s *Simulator) Table() *Table { return s.table }

// find the port whose PIN register is at addr
func (s *Simulator) pinPort(addr uint16) *simPort {
	for _, sp := range s.ports {
		if sp.regs.PIN == addr {
			return sp
		}
	}
	return nil
}

func (s *Simulator) Read(addr uint16) uint8 {
	sp := s.pinPort(addr)
	if sp == nil {
		return s.backing.Read(addr)
	}
	ddr := s.backing.Read(sp.regs.DDR)
	port := s.backing.Read(sp.regs.PORT)
	inputs := ^ddr
	undriven := inputs &^ sp.driven
	idle := undriven &^ port &^ sp.idleLow

	return (ddr & port) | (inputs & sp.driven & sp.level) | (undriven & port) | idle
}

func (s *Simulator) Write(addr uint16, value uint8) {
	sp := s.pinPort(addr)
	if sp == nil {
		s.log.Debug().Uint16("addr", addr).Uint8("value", value).Msg("write")
		s.backing.Write(addr, value)
		return
	}
	if !s.table.nativeToggle {
		s.log.Debug().Uint16("addr", addr).Msg("write to read-only PIN register ignored")
		return
	}
	old := s.backing.Read(sp.regs.PORT)
	s.log.Debug().Uint16("addr", sp.regs.PORT).Uint8("toggle", value).Msg("toggle")
	s.backing.Write(sp.regs.PORT, old^value)
}

// Drive forces an external level onto a port bit. It only shows while the
// bit is an input.
func (s *Simulator) Drive(port Port, bit uint8, high bool) {
	sp, ok := s.ports[port]
	if !ok || bit > 7 {
		return
	}
	mask := uint8(1) << bit
	sp.driven |= mask
	if high {
		sp.level |= mask
	} else {
		sp.level &^= mask
	}
}

// Release stops driving a port bit from outside.
func (s *Simulator) Release(port Port, bit uint8) {
	sp, ok := s.ports[port]
	if !ok || bit > 7 {
		return
	}
	sp.driven &^= uint8(1) << bit
}

// SetIdle sets the level that undriven inputs without pull-up read on port.
func (s *Simulator) SetIdle(port Port, high bool) {
	sp, ok := s.ports[port]
	if !ok {
		return
	}
	if high {
		sp.idleLow = 0
	} else {
		sp.idleLow = 0xff
	}
}

// Snapshot returns the PIN, DDR and PORT values of a port as the chip would
// show them.
func (s *Simulator) Snapshot(port Port) (pin, ddr, out uint8, ok bool) {
	sp, ok := s.ports[port]
	if !ok {
		return 0, 0, 0, false
	}
	return s.Read(sp.regs.PIN), s.backing.Read(sp.regs.DDR), s.backing.Read(sp.regs.PORT), true
}
