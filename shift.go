package stdpins

// BitOrder selects which end of a value ShiftOut sends first.
type BitOrder byte

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

// ShiftOut sends a byte on the data pin, pulsing the clock pin once per bit,
// like the Arduino shiftOut. The clock is pulsed with Assert then Negate and
// data bits are written with SetLogical, so both follow pin polarity.
func ShiftOut[F Family](data, clock Pin[F], value uint8, order BitOrder) {
	ShiftOutSize(data, clock, uint(value), order, 8)
}

// ShiftOutSize sends the lowest n bits of value. Chained shift registers take
// 16 or 24 bits at a time.
func ShiftOutSize[F Family](data, clock Pin[F], value uint, order BitOrder, n uint) {
	if n == 0 {
		return
	}
	mask := uint(1) << (n - 1)
	v := value
	for i := uint(0); i < n; i++ {
		var bit bool
		if order == LSBFirst {
			bit = v&1 != 0
			v >>= 1
		} else {
			bit = v&mask != 0
			v <<= 1
		}
		SetLogical(data, bit)
		Assert(clock)
		Negate(clock)
	}
}
