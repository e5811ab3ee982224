package stdpins

import (
	"testing"
)

// Every table must describe real, distinct registers and alternate functions
// on ports that exist.
func TestFamilyTables(t *testing.T) {
	for _, f := range Families() {
		tb := f.Table()
		seen := map[uint16]string{}
		for _, port := range tb.Ports() {
			r, ok := tb.Registers(port)
			if !ok {
				t.Fatalf("%s: listed port %s has no registers", tb.Name(), port)
			}
			for name, addr := range map[string]uint16{port.PINName(): r.PIN, port.DDRName(): r.DDR, port.PortName(): r.PORT} {
				if addr < 0x20 || addr >= MemorySize {
					t.Errorf("%s: %s at %#x is outside the I/O space", tb.Name(), name, addr)
				}
				if other, dup := seen[addr]; dup {
					t.Errorf("%s: %s and %s share address %#x", tb.Name(), name, other, addr)
				}
				seen[addr] = name
			}
		}
		for _, a := range tb.AltFunctions() {
			if _, ok := tb.Registers(a.Port); !ok || a.Bit > 7 {
				t.Errorf("%s: %s on %s%d does not exist", tb.Name(), a.Name, a.Port, a.Bit)
			}
		}
		if len(tb.MCUs()) == 0 {
			t.Errorf("%s has no MCUs", tb.Name())
		}
	}
}

func TestLookupFamily(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mxx8", "Mxx8"},
		{"atmega328p", "Mxx8"},
		{"ATmega1284P", "Mxx4"},
		{"attiny85", "Tiny85"},
		{"attiny4313", "Tiny2313"},
		{"atmega32", "Mega32"},
		{"atmega8", "Mega8"},
	}
	for _, tc := range tests {
		f, err := LookupFamily(tc.name)
		if err != nil {
			t.Errorf("LookupFamily(%q) returned error %v", tc.name, err)
			continue
		}
		if f.Table().Name() != tc.want {
			t.Errorf("LookupFamily(%q) = %s, expected %s", tc.name, f.Table().Name(), tc.want)
		}
	}
	for _, name := range []string{"", "atmega2560", "esp32"} {
		if _, err := LookupFamily(name); !IsUnknownFamily(err) {
			t.Errorf("LookupFamily(%q) should fail with unknown family, got %v", name, err)
		}
	}
}

func TestNativeToggle(t *testing.T) {
	native := map[string]bool{"Mxx8": true, "Mxx4": true, "Mega8": false, "Mega32": false, "Tiny85": false, "Tiny2313": false}
	for _, f := range Families() {
		if got := f.Table().NativeToggle(); got != native[f.Table().Name()] {
			t.Errorf("%s NativeToggle = %v", f.Table().Name(), got)
		}
	}
}

func TestPinFunctions(t *testing.T) {
	tb := Mxx8{}.Table()
	fs := tb.PinFunctions('B', 3)
	if !fs.Has(FuncGPIO) || !fs.Has(FuncTimer) || !fs.Has(FuncSPI) {
		t.Errorf("PB3 on Mxx8 should be gpio, timer and spi, got %s", fs)
	}
	if fs.String() != "gpio,timer,spi" {
		t.Errorf("unexpected function set string '%s'", fs)
	}
	if tb.PinFunctions('A', 0) != nil {
		t.Error("Mxx8 has no port A")
	}
	names := tb.AltFunctionsAt('D', 3)
	if len(names) != 2 || names[0] != "OC2B" || names[1] != "INT1" {
		t.Errorf("PD3 alternate functions: %v", names)
	}
}

func TestPinMap(t *testing.T) {
	m := PinMap(Tiny2313{})
	if len(m) != 24 {
		t.Fatalf("Tiny2313 has 3 ports of 8 bits, pin map has %d entries", len(m))
	}
	if m[0].Name() != "PA0" || m[23].Name() != "PD7" {
		t.Errorf("pin map order: first %s last %s", m[0].Name(), m[23].Name())
	}
	for _, pi := range m {
		if pi.Name() == "PB7" && (len(pi.AltNames) != 1 || pi.AltNames[0] != "I2C_SCL") {
			t.Errorf("PB7 alternate functions %v", pi.AltNames)
		}
	}
}
