// Package tiny85 defines the pins of ATtiny25, 45 and 85.
package tiny85

import "github.com/requireiot/stdpins"

type (
	Family = stdpins.Tiny85
	Pin    = stdpins.Pin[Family]
)

// Port is a port present on this family.
type Port struct{ p stdpins.Port }

var PortB = Port{'B'}

// Def defines a pin. It panics if bit is above 7.
func Def(port Port, bit uint8, pol stdpins.Polarity) Pin {
	return stdpins.Def[Family](port.p, bit, pol)
}

var (
	oc0a  = stdpins.AltDef[Family]("OC0A")
	oc0b  = stdpins.AltDef[Family]("OC0B")
	oc1a  = stdpins.AltDef[Family]("OC1A")
	noc1a = stdpins.AltDef[Family]("nOC1A")
	oc1b  = stdpins.AltDef[Family]("OC1B")
	noc1b = stdpins.AltDef[Family]("nOC1B")

	I2CSDA = stdpins.AltDef[Family]("I2C_SDA")
	I2CSCL = stdpins.AltDef[Family]("I2C_SCL")
)

func OC0A(pol stdpins.Polarity) Pin { return oc0a.WithPolarity(pol) }
func OC0B(pol stdpins.Polarity) Pin { return oc0b.WithPolarity(pol) }
func OC1A(pol stdpins.Polarity) Pin { return oc1a.WithPolarity(pol) }
func OC1B(pol stdpins.Polarity) Pin { return oc1b.WithPolarity(pol) }

// NOC1A is the inverted output of timer 1 channel A.
func NOC1A(pol stdpins.Polarity) Pin { return noc1a.WithPolarity(pol) }

// NOC1B is the inverted output of timer 1 channel B.
func NOC1B(pol stdpins.Polarity) Pin { return noc1b.WithPolarity(pol) }
