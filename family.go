// Chip families and their register tables. A family groups MCUs that share
// the same GPIO register layout and alternate pin assignments.

package stdpins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Family is implemented by the zero-size family types (Mxx8, Mxx4, ...). The
// type is used as the type parameter of Pin, so pins of one family cannot be
// handed to code written for another.
type Family interface {
	Table() *Table
}

// Registers is the register triple of a port, as AVR data space addresses.
type Registers struct {
	PIN  uint16 // input, write-1-to-toggle on newer parts
	DDR  uint16 // data direction, 1 = output
	PORT uint16 // output latch, pull-up enable for inputs
}

func (r Registers) String() string {
	return fmt.Sprintf("PIN=0x%02x DDR=0x%02x PORT=0x%02x", r.PIN, r.DDR, r.PORT)
}

type portDef struct {
	port Port
	regs Registers
}

// Table holds everything known about a family. Tables are fixed; there is no
// way to create one outside this package.
type Table struct {
	name         string
	mcus         []string
	ports        []portDef
	nativeToggle bool
	alt          []AltFunction
	arduinoBase  map[Port]int
}

// Name of the family, e.g. "Mxx8".
func (t *Table) Name() string { return t.name }

// MCUs lists the part names covered by the family, lower case.
func (t *Table) MCUs() []string { return append([]string(nil), t.mcus...) }

// Ports lists the ports present, in letter order.
func (t *Table) Ports() []Port {
	result := make([]Port, 0, len(t.ports))
	for _, p := range t.ports {
		result = append(result, p.port)
	}
	return result
}

// Registers returns the register triple of a port, or false when the family
// has no such port.
func (t *Table) Registers(port Port) (Registers, bool) {
	for _, p := range t.ports {
		if p.port == port {
			return p.regs, true
		}
	}
	return Registers{}, false
}

// NativeToggle reports whether writing a 1 to a PIN register bit flips the
// corresponding PORT bit in a single instruction. Families without it toggle
// with a read-modify-write of PORT, which is not interrupt safe.
func (t *Table) NativeToggle() bool { return t.nativeToggle }

// AltFunctions returns the alternate function pins of the family.
func (t *Table) AltFunctions() []AltFunction { return append([]AltFunction(nil), t.alt...) }

// AltFunction looks up an alternate function by name, e.g. "OC0A" or "I2C_SDA".
func (t *Table) AltFunction(name string) (AltFunction, bool) {
	for _, a := range t.alt {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return AltFunction{}, false
}

// PinFunctions returns the functions available on a port bit. Every existing
// bit supports GPIO.
func (t *Table) PinFunctions(port Port, bit uint8) FunctionSet {
	if _, ok := t.Registers(port); !ok || bit > 7 {
		return nil
	}
	fs := FunctionSet{FuncGPIO}
	for _, a := range t.alt {
		if a.Port == port && a.Bit == bit && !fs.Has(a.Kind) {
			fs = append(fs, a.Kind)
		}
	}
	return fs
}

// AltFunctionsAt returns the names of the alternate functions on a port bit.
func (t *Table) AltFunctionsAt(port Port, bit uint8) []string {
	var names []string
	for _, a := range t.alt {
		if a.Port == port && a.Bit == bit {
			names = append(names, a.Name)
		}
	}
	return names
}

// ArduinoPin returns the Arduino core pin number of a port bit. Only families
// with an Arduino core layout have these.
func (t *Table) ArduinoPin(port Port, bit uint8) (int, bool) {
	base, ok := t.arduinoBase[port]
	if !ok || bit > 7 {
		return 0, false
	}
	return base + int(bit), true
}

// Families returns all supported families, sorted by name.
func Families() []Family {
	result := []Family{Mega32{}, Mega8{}, Mxx4{}, Mxx8{}, Tiny2313{}, Tiny85{}}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Table().Name() < result[j].Table().Name()
	})
	return result
}

// LookupFamily finds a family by its name ("Mxx8") or by one of its MCU
// names ("atmega328p"). Matching is case insensitive. There is no default:
// an empty or unknown name is an error.
func LookupFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil, errors.Wrap(ErrUnknownFamily, "no family given")
	}
	for _, f := range Families() {
		t := f.Table()
		if strings.ToLower(t.name) == n {
			return f, nil
		}
		for _, m := range t.mcus {
			if m == n {
				return f, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrUnknownFamily, "'%s'", name)
}
