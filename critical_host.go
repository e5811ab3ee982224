//go:build !(tinygo && avr)

package stdpins

import "sync"

// On a host nothing is memory mapped; operations work on plain memory until
// SetRegisters binds something else.
func defaultRegisters() RegisterFile {
	return NewMemory()
}

var criticalMu sync.Mutex

// Critical runs fn with the register file to itself. On a host this is a
// process wide mutex, standing in for interrupt masking on the chip. Pin
// operations never call it; code that shares a register between goroutines
// must.
func Critical(fn func()) {
	criticalMu.Lock()
	defer criticalMu.Unlock()
	fn()
}
