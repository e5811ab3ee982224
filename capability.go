package stdpins

// Definitions for alternate pin functions.
import (
	"strings"
)

// Function is a peripheral use a pin can be put to besides plain GPIO.
type Function int

const (
	FuncGPIO     Function = iota // digital input/output
	FuncTimer                    // timer compare output
	FuncUART                     // serial receive or transmit
	FuncI2C                      // two wire interface
	FuncSPI                      // serial peripheral interface
	FuncExtInt                   // external interrupt input
)

// This represents the set of functions available on one port bit.
type FunctionSet []Function

func (c Function) String() string {
	switch c {
	case FuncGPIO:
		return "gpio"
	case FuncTimer:
		return "timer"
	case FuncUART:
		return "uart"
	case FuncI2C:
		return "i2c"
	case FuncSPI:
		return "spi"
	case FuncExtInt:
		return "extint"
	}
	return ""
}

// Has reports whether f is in the set.
func (fs FunctionSet) Has(f Function) bool {
	for _, v := range fs {
		if v == f {
			return true
		}
	}
	return false
}

func (fs FunctionSet) String() string {
	s := []string{}
	for _, f := range fs {
		s = append(s, f.String())
	}
	return strings.Join(s, ",")
}

// AltFunction names a pin with a dedicated peripheral use, such as OC0A or
// UART_RX.
type AltFunction struct {
	Name     string
	Kind     Function
	Port     Port
	Bit      uint8
	Polarity Polarity // default polarity, used when the function is not parametric
	// Parametric functions (timer outputs, external interrupts) take the
	// polarity from the caller.
	Parametric bool
}
