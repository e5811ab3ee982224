package stdpins

import (
	"testing"
)

// clockRecorder samples the data bit on every rising clock edge. It is not a
// BitSetter, so every change goes through Write.
type clockRecorder struct {
	mem       *Memory
	port      uint16
	data, clk uint8
	bits      []bool
}

func (r *clockRecorder) Read(addr uint16) uint8 { return r.mem.Read(addr) }

func (r *clockRecorder) Write(addr uint16, value uint8) {
	old := r.mem.Read(addr)
	r.mem.Write(addr, value)
	if addr == r.port && old&r.clk == 0 && value&r.clk != 0 {
		r.bits = append(r.bits, value&r.data != 0)
	}
}

func newClockRecorder(t *testing.T, data, clock Pin[Mxx8]) *clockRecorder {
	t.Helper()
	r := &clockRecorder{mem: NewMemory(), port: Resolve(data).PORT, data: data.Mask(), clk: clock.Mask()}
	SetRegisters(r)
	return r
}

func bitsOf(s string) []bool {
	var result []bool
	for _, c := range s {
		result = append(result, c == '1')
	}
	return result
}

func TestShiftOut(t *testing.T) {
	data := Def[Mxx8]('B', 0, ActiveHigh)
	clock := Def[Mxx8]('B', 1, ActiveHigh)

	tests := []struct {
		order BitOrder
		value uint8
		want  string
	}{
		{MSBFirst, 0xa1, "10100001"},
		{LSBFirst, 0xa1, "10000101"},
		{MSBFirst, 0x00, "00000000"},
	}
	for _, tc := range tests {
		r := newClockRecorder(t, data, clock)
		ShiftOut(data, clock, tc.value, tc.order)
		want := bitsOf(tc.want)
		if len(r.bits) != len(want) {
			t.Fatalf("%#x: %d clock pulses, expected %d", tc.value, len(r.bits), len(want))
		}
		for i := range want {
			if r.bits[i] != want[i] {
				t.Errorf("%#x order %d: bit %d is %v, expected %v", tc.value, tc.order, i, r.bits[i], want[i])
			}
		}
		if r.mem.Bit(r.port, 1) {
			t.Error("clock should be left low")
		}
	}
}

func TestShiftOutSizeInvertedData(t *testing.T) {
	data := Def[Mxx8]('B', 0, ActiveLow)
	clock := Def[Mxx8]('B', 1, ActiveHigh)
	r := newClockRecorder(t, data, clock)

	ShiftOutSize(data, clock, 0x0102, MSBFirst, 16)
	want := bitsOf("1111111011111101")
	if len(r.bits) != 16 {
		t.Fatalf("%d clock pulses, expected 16", len(r.bits))
	}
	for i := range want {
		if r.bits[i] != want[i] {
			t.Errorf("bit %d is %v, expected %v", i, r.bits[i], want[i])
		}
	}

	ShiftOutSize(data, clock, 0xff, MSBFirst, 0)
	if len(r.bits) != 16 {
		t.Error("shifting 0 bits must not pulse the clock")
	}
}
