package stdpins

import (
	"testing"
)

func TestNewPin(t *testing.T) {
	p, err := NewPin[Mxx8]('B', 5, ActiveHigh)
	if err != nil {
		t.Fatalf("NewPin(B,5) should not return an error, returned '%s'", err)
	}
	if p.Port() != 'B' || p.Bit() != 5 || p.Polarity() != ActiveHigh {
		t.Errorf("unexpected descriptor %s", p)
	}
	if p.Mask() != 0x20 {
		t.Errorf("Mask of bit 5 should be 0x20, got %#x", p.Mask())
	}
	if p.String() != "B,5,ACTIVE_HIGH" {
		t.Errorf("String() returned '%s'", p.String())
	}

	if _, err := NewPin[Mxx8]('A', 0, ActiveHigh); !IsInvalidPort(err) {
		t.Errorf("Mxx8 has no port A, expected invalid port, got %v", err)
	}
	if _, err := NewPin[Mxx4]('A', 0, ActiveHigh); err != nil {
		t.Errorf("Mxx4 has port A, got %v", err)
	}
	if _, err := NewPin[Mxx8]('B', 8, ActiveHigh); !IsInvalidBit(err) {
		t.Errorf("expected invalid bit, got %v", err)
	}
	if _, err := NewPin[Mxx8]('B', 0, Polarity(3)); !IsInvalidPolarity(err) {
		t.Errorf("expected invalid polarity, got %v", err)
	}
}

func TestDefPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Def with a port the family lacks should panic")
		}
	}()
	Def[Tiny85]('D', 0, ActiveHigh)
}

func TestPinDescriptorIsValue(t *testing.T) {
	led := Def[Mxx8]('B', 1, ActiveHigh)
	inverted := led.WithPolarity(ActiveLow)
	if led.Polarity() != ActiveHigh {
		t.Error("WithPolarity must not change the original pin")
	}
	if inverted.Port() != led.Port() || inverted.Bit() != led.Bit() {
		t.Error("WithPolarity must keep port and bit")
	}
	if Resolve(led) != Resolve(inverted) {
		t.Error("pins on the same port must resolve to the same registers")
	}
	if !led.IsActiveHigh() || inverted.IsActiveHigh() {
		t.Error("IsActiveHigh mismatch")
	}
	if !Def[Mxx8]('C', 4, ActiveLowOC).IsOpenCollector() {
		t.Error("ACTIVE_LOW_OC pin should be open collector")
	}
}

func TestResolveDeterministic(t *testing.T) {
	SetRegisters(NewMemory())
	p := Def[Mxx8]('D', 2, ActiveHigh)
	a := Resolve(p)
	b := p.Registers()
	if a != b {
		t.Errorf("Resolve gave %s then %s", a, b)
	}
	if a != (Registers{PIN: 0x29, DDR: 0x2a, PORT: 0x2b}) {
		t.Errorf("unexpected Mxx8 port D registers %s", a)
	}
	for addr := uint16(0); addr < MemorySize; addr++ {
		if CurrentRegisters().Read(addr) != 0 {
			t.Fatal("Resolve must not touch registers")
		}
	}
}

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		in  string
		out Polarity
	}{
		{"ACTIVE_HIGH", ActiveHigh},
		{"active_low", ActiveLow},
		{"ACTIVE_LOW_OC", ActiveLowOC},
		{"ACTIVE_LOW_OPEN_COLLECTOR", ActiveLowOC},
	}
	for _, tc := range tests {
		pol, err := ParsePolarity(tc.in)
		if err != nil || pol != tc.out {
			t.Errorf("ParsePolarity(%q) = %s, %v", tc.in, pol, err)
		}
	}
	if _, err := ParsePolarity("HIGH"); !IsInvalidPolarity(err) {
		t.Errorf("expected invalid polarity, got %v", err)
	}
}

func TestParsePort(t *testing.T) {
	if p, err := ParsePort("b"); err != nil || p != 'B' {
		t.Errorf("ParsePort(b) = %s, %v", p, err)
	}
	for _, s := range []string{"", "BB", "Z", "1"} {
		if _, err := ParsePort(s); !IsInvalidPort(err) {
			t.Errorf("ParsePort(%q) should fail", s)
		}
	}
	if Port('C').DDRName() != "DDRC" || Port('C').PINName() != "PINC" || Port('C').PortName() != "PORTC" {
		t.Error("classic register names are wrong")
	}
}

func TestArduinoPin(t *testing.T) {
	tests := []struct {
		pin  Pin[Mxx8]
		want int
	}{
		{Def[Mxx8]('D', 0, ActiveHigh), 0},
		{Def[Mxx8]('B', 5, ActiveHigh), 13},
		{Def[Mxx8]('C', 3, ActiveHigh), 17},
	}
	for _, tc := range tests {
		n, ok := tc.pin.ArduinoPin()
		if !ok || n != tc.want {
			t.Errorf("ArduinoPin(%s) = %d, %v; expected %d", tc.pin, n, ok, tc.want)
		}
	}
	if n, ok := Def[Mxx4]('A', 7, ActiveHigh).ArduinoPin(); !ok || n != 31 {
		t.Errorf("Mxx4 PA7 should be Arduino pin 31, got %d", n)
	}
	if _, ok := Def[Tiny85]('B', 0, ActiveHigh).ArduinoPin(); ok {
		t.Error("Tiny85 has no Arduino pin numbers")
	}
}

func TestAltPins(t *testing.T) {
	ss, err := NewAltPin[Mxx8]("SPI_SS")
	if err != nil {
		t.Fatal(err)
	}
	if ss.String() != "B,2,ACTIVE_LOW" {
		t.Errorf("SPI_SS on Mxx8 should be B,2,ACTIVE_LOW, got %s", ss)
	}
	oc, err := NewAltPin[Mxx4]("oc2a")
	if err != nil {
		t.Fatal(err)
	}
	if oc.String() != "D,7,ACTIVE_HIGH" {
		t.Errorf("OC2A on Mxx4 should default to D,7,ACTIVE_HIGH, got %s", oc)
	}
	if _, err := NewAltPin[Tiny85]("UART_RX"); !IsUnknownFunction(err) {
		t.Errorf("Tiny85 has no UART, expected unknown function, got %v", err)
	}
}
