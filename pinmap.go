package stdpins

import "fmt"

// PinInfo describes one port bit of a family.
type PinInfo struct {
	Port          Port
	Bit           uint8
	Registers     Registers
	Functions     FunctionSet
	AltNames      []string
	ArduinoPin    int
	HasArduinoPin bool
}

// Name returns the datasheet name of the bit, e.g. PB5.
func (pi PinInfo) Name() string {
	return fmt.Sprintf("P%s%d", pi.Port, pi.Bit)
}

// PinMap lists every port bit of the family, port by port.
func PinMap(f Family) []PinInfo {
	t := f.Table()
	var result []PinInfo
	for _, pd := range t.ports {
		for bit := uint8(0); bit < 8; bit++ {
			ard, ok := t.ArduinoPin(pd.port, bit)
			result = append(result, PinInfo{
				Port:          pd.port,
				Bit:           bit,
				Registers:     pd.regs,
				Functions:     t.PinFunctions(pd.port, bit),
				AltNames:      t.AltFunctionsAt(pd.port, bit),
				ArduinoPin:    ard,
				HasArduinoPin: ok,
			})
		}
	}
	return result
}
