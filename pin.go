package stdpins

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Polarity maps a pin's logical TRUE/FALSE onto physical levels.
type Polarity int8

// The polarities a pin can be defined with.
const (
	ActiveLowOC Polarity = -1 // open collector: pulls low or floats, never drives high
	ActiveLow   Polarity = 0
	ActiveHigh  Polarity = 1
)

// String representation of polarity, as used in pin definition files.
func (pol Polarity) String() string {
	switch pol {
	case ActiveHigh:
		return "ACTIVE_HIGH"
	case ActiveLow:
		return "ACTIVE_LOW"
	case ActiveLowOC:
		return "ACTIVE_LOW_OC"
	}
	return fmt.Sprintf("Polarity(%d)", int8(pol))
}

// GoString returns the Go expression for the polarity.
func (pol Polarity) GoString() string {
	switch pol {
	case ActiveHigh:
		return "stdpins.ActiveHigh"
	case ActiveLow:
		return "stdpins.ActiveLow"
	case ActiveLowOC:
		return "stdpins.ActiveLowOC"
	}
	return pol.String()
}

func (pol Polarity) valid() bool {
	return pol == ActiveHigh || pol == ActiveLow || pol == ActiveLowOC
}

// ParsePolarity accepts the names printed by String, plus
// ACTIVE_LOW_OPEN_COLLECTOR. Matching is case insensitive.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTIVE_HIGH":
		return ActiveHigh, nil
	case "ACTIVE_LOW":
		return ActiveLow, nil
	case "ACTIVE_LOW_OC", "ACTIVE_LOW_OPEN_COLLECTOR":
		return ActiveLowOC, nil
	}
	return ActiveHigh, errors.Wrapf(ErrInvalidPolarity, "'%s'", s)
}

// Port is a GPIO port letter.
type Port byte

// String returns the port letter.
func (p Port) String() string {
	if p == 0 {
		return "-"
	}
	return string(rune(p))
}

// PortName returns the output register name, e.g. PORTB.
func (p Port) PortName() string { return "PORT" + p.String() }

// DDRName returns the data direction register name, e.g. DDRB.
func (p Port) DDRName() string { return "DDR" + p.String() }

// PINName returns the input register name, e.g. PINB.
func (p Port) PINName() string { return "PIN" + p.String() }

// ParsePort turns "B" or "b" into Port('B').
func ParsePort(s string) (Port, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'H' {
		return 0, errors.Wrapf(ErrInvalidPort, "'%s'", s)
	}
	return Port(s[0]), nil
}

// Pin is an immutable pin descriptor for chip family F: a port letter, a bit
// index 0..7 and a polarity. Define pins once, typically as package level
// variables, and pass them to the operations in this package.
//
// The zero Pin is not connected. Operations on it do nothing and reads return
// false.
type Pin[F Family] struct {
	port Port
	bit  uint8
	pol  Polarity
}

// NewPin validates and builds a pin descriptor for family F.
func NewPin[F Family](port Port, bit uint8, pol Polarity) (Pin[F], error) {
	var f F
	t := f.Table()
	if _, ok := t.Registers(port); !ok {
		return Pin[F]{}, errors.Wrapf(ErrInvalidPort, "port %s on %s", port, t.Name())
	}
	if bit > 7 {
		return Pin[F]{}, errors.Wrapf(ErrInvalidBit, "bit %d of port %s", bit, port)
	}
	if !pol.valid() {
		return Pin[F]{}, errors.Wrapf(ErrInvalidPolarity, "%s", pol)
	}
	return Pin[F]{port: port, bit: bit, pol: pol}, nil
}

// Def is like NewPin but panics on an invalid descriptor. It is meant for
// package level pin definitions, where a bad definition stops the program
// before main runs.
func Def[F Family](port Port, bit uint8, pol Polarity) Pin[F] {
	p, err := NewPin[F](port, bit, pol)
	if err != nil {
		panic(err)
	}
	return p
}

// Port returns the port letter of the pin.
func (p Pin[F]) Port() Port { return p.port }

// Bit returns the bit index 0..7.
func (p Pin[F]) Bit() uint8 { return p.bit }

// Polarity returns the polarity the pin was defined with.
func (p Pin[F]) Polarity() Polarity { return p.pol }

// Mask returns the single bit mask of the pin, 0x01..0x80.
func (p Pin[F]) Mask() uint8 { return 1 << p.bit }

// IsActiveHigh reports whether logical TRUE is a high level.
func (p Pin[F]) IsActiveHigh() bool { return p.pol == ActiveHigh }

// IsOpenCollector reports whether the pin is driven low or left floating.
func (p Pin[F]) IsOpenCollector() bool { return p.pol == ActiveLowOC }

// IsConnected is false for the zero Pin.
func (p Pin[F]) IsConnected() bool { return p.port != 0 }

// WithPolarity returns the same port bit with another polarity.
func (p Pin[F]) WithPolarity(pol Polarity) Pin[F] {
	if !pol.valid() {
		panic(errors.Wrapf(ErrInvalidPolarity, "%s", pol))
	}
	p.pol = pol
	return p
}

// Registers returns the register triple of the pin's port.
func (p Pin[F]) Registers() Registers { return Resolve(p) }

// ArduinoPin returns the Arduino core pin number, if the family has one.
func (p Pin[F]) ArduinoPin() (int, bool) {
	var f F
	return f.Table().ArduinoPin(p.port, p.bit)
}

// Family returns the chip family the pin belongs to.
func (p Pin[F]) Family() Family {
	var f F
	return f
}

// String formats the pin the way it is written in a definition file,
// e.g. "B,5,ACTIVE_HIGH".
func (p Pin[F]) String() string {
	return fmt.Sprintf("%s,%d,%s", p.port, p.bit, p.pol)
}
