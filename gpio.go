/*
Package stdpins gives AVR port pins symbolic, polarity-aware names.

Define a pin once, for example an LED on PB5 that lights when the pin is
high:

	var LED = mxx8.Def(mxx8.PortB, 5, stdpins.ActiveHigh)

then configure and drive it by meaning rather than level:

	stdpins.ConfigureOutput(LED)
	stdpins.Assert(LED)
	stdpins.Negate(LED)

If the board changes so the LED lights on a low level, only the definition
changes to stdpins.ActiveLow.

Every operation is a direct register access. None of them lock: a
read-modify-write on a register that an interrupt handler also modifies must
be wrapped in Critical by the caller.
*/
package stdpins

// Resolve returns the register triple of the pin's port. It has no side
// effects and always gives the same answer for the same pin.
func Resolve[F Family](p Pin[F]) Registers {
	var f F
	r, _ := f.Table().Registers(p.port)
	return r
}

// Sets mask bits in the register at addr.
func setBits(addr uint16, mask uint8) {
	if bs, ok := registers.(BitSetter); ok {
		bs.SetBits(addr, mask)
		return
	}
	registers.Write(addr, registers.Read(addr)|mask)
}

// Clears mask bits in the register at addr.
func clearBits(addr uint16, mask uint8) {
	if bs, ok := registers.(BitSetter); ok {
		bs.ClearBits(addr, mask)
		return
	}
	registers.Write(addr, registers.Read(addr)&^mask)
}

func putBit(addr uint16, mask uint8, value bool) {
	if value {
		setBits(addr, mask)
	} else {
		clearBits(addr, mask)
	}
}

// ConfigureInput makes the pin an input and enables or disables its pull-up.
func ConfigureInput[F Family](p Pin[F], pullUp bool) {
	if !p.IsConnected() {
		return
	}
	r := Resolve(p)
	clearBits(r.DDR, p.Mask())
	putBit(r.PORT, p.Mask(), pullUp)
}

// AsInput makes the pin an input and leaves the pull-up as it is.
func AsInput[F Family](p Pin[F]) {
	if !p.IsConnected() {
		return
	}
	clearBits(Resolve(p).DDR, p.Mask())
}

// ConfigureOutput makes the pin an output. The output level is whatever the
// PORT bit holds.
func ConfigureOutput[F Family](p Pin[F]) {
	if !p.IsConnected() {
		return
	}
	setBits(Resolve(p).DDR, p.Mask())
}

// EnablePullup sets the PORT bit, enabling the pull-up of an input.
func EnablePullup[F Family](p Pin[F]) { SetHigh(p) }

// DisablePullup clears the PORT bit.
func DisablePullup[F Family](p Pin[F]) { SetLow(p) }

// Assert drives the pin to its logical TRUE level. An open collector pin is
// pulled low by making it an output with a low latch.
func Assert[F Family](p Pin[F]) {
	if !p.IsConnected() {
		return
	}
	r := Resolve(p)
	switch p.pol {
	case ActiveLowOC:
		clearBits(r.PORT, p.Mask())
		setBits(r.DDR, p.Mask())
	case ActiveHigh:
		setBits(r.PORT, p.Mask())
	default:
		clearBits(r.PORT, p.Mask())
	}
}

// Negate drives the pin to its logical FALSE level. An open collector pin is
// released: it becomes an input without pull-up and floats high.
func Negate[F Family](p Pin[F]) {
	if !p.IsConnected() {
		return
	}
	r := Resolve(p)
	switch p.pol {
	case ActiveLowOC:
		clearBits(r.PORT, p.Mask())
		clearBits(r.DDR, p.Mask())
	case ActiveHigh:
		clearBits(r.PORT, p.Mask())
	default:
		setBits(r.PORT, p.Mask())
	}
}

// SetPhysical sets the PORT bit to value, ignoring polarity. On an open
// collector pin this bypasses the direction handling of Assert and Negate.
func SetPhysical[F Family](p Pin[F], value bool) {
	if !p.IsConnected() {
		return
	}
	putBit(Resolve(p).PORT, p.Mask(), value)
}

// SetHigh sets the PORT bit, ignoring polarity.
func SetHigh[F Family](p Pin[F]) { SetPhysical(p, true) }

// SetLow clears the PORT bit, ignoring polarity.
func SetLow[F Family](p Pin[F]) { SetPhysical(p, false) }

// SetLogical sets the PORT bit to value for active high pins and to !value
// for the others. Like SetPhysical it never touches DDR.
func SetLogical[F Family](p Pin[F], value bool) {
	SetPhysical(p, value == p.IsActiveHigh())
}

// Read returns the PIN register masked to the pin's bit, unshifted.
func Read[F Family](p Pin[F]) uint8 {
	if !p.IsConnected() {
		return 0
	}
	return registers.Read(Resolve(p).PIN) & p.Mask()
}

// ReadPhysical reports whether the pin level is high.
func ReadPhysical[F Family](p Pin[F]) bool {
	return Read(p) != 0
}

// ReadLogical reports whether the pin is at its logical TRUE level.
func ReadLogical[F Family](p Pin[F]) bool {
	if !p.IsConnected() {
		return false
	}
	return ReadPhysical(p) == p.IsActiveHigh()
}

// Toggle flips the PORT bit. Families with native toggle do this with a
// single write to PIN; on the others it is a read-modify-write of PORT.
func Toggle[F Family](p Pin[F]) {
	if !p.IsConnected() {
		return
	}
	var f F
	r := Resolve(p)
	if f.Table().NativeToggle() {
		registers.Write(r.PIN, p.Mask())
		return
	}
	registers.Write(r.PORT, registers.Read(r.PORT)^p.Mask())
}

// PutBits writes the low n bits of value into the PORT register, starting at
// the pin's bit. Bits that would land above bit 7 are dropped.
func PutBits[F Family](p Pin[F], n uint8, value uint8) {
	if !p.IsConnected() || n == 0 {
		return
	}
	field := uint8((uint16(1)<<n)-1) << p.bit
	r := Resolve(p)
	old := registers.Read(r.PORT)
	registers.Write(r.PORT, (old&^field)|((value<<p.bit)&field))
}
