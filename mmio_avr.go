//go:build tinygo && avr

package stdpins

import (
	"runtime/interrupt"
	"runtime/volatile"
	"unsafe"
)

// MMIO is the register file of the running chip: every address is a volatile
// access to the data space.
type MMIO struct{}

func reg(addr uint16) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(uintptr(addr)))
}

func (MMIO) Read(addr uint16) uint8 { return reg(addr).Get() }

func (MMIO) Write(addr uint16, value uint8) { reg(addr).Set(value) }

// The compiler turns these into sbi/cbi for addresses in the low I/O space.
func (MMIO) SetBits(addr uint16, mask uint8) { reg(addr).SetBits(mask) }

func (MMIO) ClearBits(addr uint16, mask uint8) { reg(addr).ClearBits(mask) }

func defaultRegisters() RegisterFile {
	return MMIO{}
}

// Critical runs fn with interrupts disabled and restores the previous
// interrupt state afterwards. Wrap read-modify-write sequences on registers
// that an interrupt handler also changes.
func Critical(fn func()) {
	state := interrupt.Disable()
	fn()
	interrupt.Restore(state)
}
