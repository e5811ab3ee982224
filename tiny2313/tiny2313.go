// Package tiny2313 defines the pins of ATtiny2313, 2313A and 4313.
package tiny2313

import "github.com/requireiot/stdpins"

type (
	Family = stdpins.Tiny2313
	Pin    = stdpins.Pin[Family]
)

// Port is a port present on this family.
type Port struct{ p stdpins.Port }

var (
	PortA = Port{'A'}
	PortB = Port{'B'}
	PortD = Port{'D'}
)

// Def defines a pin. It panics if bit is above 7.
func Def(port Port, bit uint8, pol stdpins.Polarity) Pin {
	return stdpins.Def[Family](port.p, bit, pol)
}

var (
	oc0a = stdpins.AltDef[Family]("OC0A")
	oc0b = stdpins.AltDef[Family]("OC0B")
	oc1a = stdpins.AltDef[Family]("OC1A")
	oc1b = stdpins.AltDef[Family]("OC1B")
	int0 = stdpins.AltDef[Family]("INT0")
	int1 = stdpins.AltDef[Family]("INT1")

	UARTRX = stdpins.AltDef[Family]("UART_RX")
	UARTTX = stdpins.AltDef[Family]("UART_TX")
	I2CSDA = stdpins.AltDef[Family]("I2C_SDA")
	I2CSCL = stdpins.AltDef[Family]("I2C_SCL")
)

func OC0A(pol stdpins.Polarity) Pin { return oc0a.WithPolarity(pol) }
func OC0B(pol stdpins.Polarity) Pin { return oc0b.WithPolarity(pol) }
func OC1A(pol stdpins.Polarity) Pin { return oc1a.WithPolarity(pol) }
func OC1B(pol stdpins.Polarity) Pin { return oc1b.WithPolarity(pol) }
func INT0(pol stdpins.Polarity) Pin { return int0.WithPolarity(pol) }
func INT1(pol stdpins.Polarity) Pin { return int1.WithPolarity(pol) }
