// Package mxx4 defines the pins of ATmega164, 324, 644 and 1284.
package mxx4

import "github.com/requireiot/stdpins"

type (
	Family = stdpins.Mxx4
	Pin    = stdpins.Pin[Family]
)

// Port is a port present on this family.
type Port struct{ p stdpins.Port }

var (
	PortA = Port{'A'}
	PortB = Port{'B'}
	PortC = Port{'C'}
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
	oc2a = stdpins.AltDef[Family]("OC2A")
	oc2b = stdpins.AltDef[Family]("OC2B")
	oc3a = stdpins.AltDef[Family]("OC3A")
	oc3b = stdpins.AltDef[Family]("OC3B")
	int0 = stdpins.AltDef[Family]("INT0")
	int1 = stdpins.AltDef[Family]("INT1")
	int2 = stdpins.AltDef[Family]("INT2")

	UARTRX  = stdpins.AltDef[Family]("UART_RX")
	UARTTX  = stdpins.AltDef[Family]("UART_TX")
	UART1RX = stdpins.AltDef[Family]("UART1_RX")
	UART1TX = stdpins.AltDef[Family]("UART1_TX")
	I2CSDA  = stdpins.AltDef[Family]("I2C_SDA")
	I2CSCL  = stdpins.AltDef[Family]("I2C_SCL")
	SPISCK  = stdpins.AltDef[Family]("SPI_SCK")
	SPIMISO = stdpins.AltDef[Family]("SPI_MISO")
	SPIMOSI = stdpins.AltDef[Family]("SPI_MOSI")
	SPISS   = stdpins.AltDef[Family]("SPI_SS")
)

func OC0A(pol stdpins.Polarity) Pin { return oc0a.WithPolarity(pol) }
func OC0B(pol stdpins.Polarity) Pin { return oc0b.WithPolarity(pol) }
func OC1A(pol stdpins.Polarity) Pin { return oc1a.WithPolarity(pol) }
func OC1B(pol stdpins.Polarity) Pin { return oc1b.WithPolarity(pol) }
func OC2A(pol stdpins.Polarity) Pin { return oc2a.WithPolarity(pol) }
func OC2B(pol stdpins.Polarity) Pin { return oc2b.WithPolarity(pol) }
func OC3A(pol stdpins.Polarity) Pin { return oc3a.WithPolarity(pol) }
func OC3B(pol stdpins.Polarity) Pin { return oc3b.WithPolarity(pol) }
func INT0(pol stdpins.Polarity) Pin { return int0.WithPolarity(pol) }
func INT1(pol stdpins.Polarity) Pin { return int1.WithPolarity(pol) }
func INT2(pol stdpins.Polarity) Pin { return int2.WithPolarity(pol) }
