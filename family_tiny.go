package stdpins

// Tiny85 covers ATtiny25, 45 and 85. There is only port B.
type Tiny85 struct{}

func (Tiny85) Table() *Table { return &tiny85Table }

var tiny85Table = Table{
	name: "Tiny85",
	mcus: []string{"attiny25", "attiny45", "attiny85"},
	ports: []portDef{
		{'B', Registers{PIN: 0x36, DDR: 0x37, PORT: 0x38}},
	},
	alt: []AltFunction{
		{Name: "OC0A", Kind: FuncTimer, Port: 'B', Bit: 0, Parametric: true},
		{Name: "OC0B", Kind: FuncTimer, Port: 'B', Bit: 1, Parametric: true},
		{Name: "OC1A", Kind: FuncTimer, Port: 'B', Bit: 1, Parametric: true},
		{Name: "nOC1A", Kind: FuncTimer, Port: 'B', Bit: 0, Parametric: true},
		{Name: "OC1B", Kind: FuncTimer, Port: 'B', Bit: 4, Parametric: true},
		{Name: "nOC1B", Kind: FuncTimer, Port: 'B', Bit: 3, Parametric: true},
		{Name: "I2C_SDA", Kind: FuncI2C, Port: 'B', Bit: 0, Polarity: ActiveHigh},
		{Name: "I2C_SCL", Kind: FuncI2C, Port: 'B', Bit: 2, Polarity: ActiveHigh},
	},
}

// Tiny2313 covers ATtiny2313, 2313A and 4313.
type Tiny2313 struct{}

func (Tiny2313) Table() *Table { return &tiny2313Table }

var tiny2313Table = Table{
	name: "Tiny2313",
	mcus: []string{"attiny2313", "attiny2313a", "attiny4313"},
	ports: []portDef{
		{'A', Registers{PIN: 0x39, DDR: 0x3a, PORT: 0x3b}},
		{'B', Registers{PIN: 0x36, DDR: 0x37, PORT: 0x38}},
		{'D', Registers{PIN: 0x30, DDR: 0x31, PORT: 0x32}},
	},
	alt: []AltFunction{
		{Name: "OC0A", Kind: FuncTimer, Port: 'B', Bit: 2, Parametric: true},
		{Name: "OC0B", Kind: FuncTimer, Port: 'D', Bit: 5, Parametric: true},
		{Name: "OC1A", Kind: FuncTimer, Port: 'B', Bit: 3, Parametric: true},
		{Name: "OC1B", Kind: FuncTimer, Port: 'B', Bit: 4, Parametric: true},
		{Name: "UART_RX", Kind: FuncUART, Port: 'D', Bit: 0, Polarity: ActiveHigh},
		{Name: "UART_TX", Kind: FuncUART, Port: 'D', Bit: 1, Polarity: ActiveHigh},
		{Name: "I2C_SDA", Kind: FuncI2C, Port: 'B', Bit: 5, Polarity: ActiveHigh},
		{Name: "I2C_SCL", Kind: FuncI2C, Port: 'B', Bit: 7, Polarity: ActiveHigh},
		{Name: "INT0", Kind: FuncExtInt, Port: 'D', Bit: 2, Parametric: true},
		{Name: "INT1", Kind: FuncExtInt, Port: 'D', Bit: 3, Parametric: true},
	},
}
