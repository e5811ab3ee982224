package stdpins

// Register tables for the ATmega families. Addresses are data space
// addresses (I/O address + 0x20).

// Mxx8 covers ATmega48, 88, 168 and 328 with their A/P/PA/PB variants.
type Mxx8 struct{}

func (Mxx8) Table() *Table { return &mxx8Table }

var mxx8Table = Table{
	name: "Mxx8",
	mcus: []string{
		"atmega48", "atmega48a", "atmega48p", "atmega48pa", "atmega48pb",
		"atmega88", "atmega88a", "atmega88p", "atmega88pa", "atmega88pb",
		"atmega168", "atmega168a", "atmega168p", "atmega168pa", "atmega168pb",
		"atmega328", "atmega328p", "atmega328pb",
	},
	ports: []portDef{
		{'B', Registers{PIN: 0x23, DDR: 0x24, PORT: 0x25}},
		{'C', Registers{PIN: 0x26, DDR: 0x27, PORT: 0x28}},
		{'D', Registers{PIN: 0x29, DDR: 0x2a, PORT: 0x2b}},
	},
	nativeToggle: true,
	alt:          mega8AltFunctions,
	arduinoBase:  map[Port]int{'D': 0, 'B': 8, 'C': 14},
}

// Mega8 is the original ATmega8. Its alternate functions match Mxx8, but
// PIN registers are read only.
type Mega8 struct{}

func (Mega8) Table() *Table { return &mega8Table }

var mega8Table = Table{
	name: "Mega8",
	mcus: []string{"atmega8", "atmega8a"},
	ports: []portDef{
		{'B', Registers{PIN: 0x36, DDR: 0x37, PORT: 0x38}},
		{'C', Registers{PIN: 0x33, DDR: 0x34, PORT: 0x35}},
		{'D', Registers{PIN: 0x30, DDR: 0x31, PORT: 0x32}},
	},
	alt: mega8AltFunctions,
}

var mega8AltFunctions = []AltFunction{
	{Name: "OC0A", Kind: FuncTimer, Port: 'D', Bit: 6, Parametric: true},
	{Name: "OC0B", Kind: FuncTimer, Port: 'D', Bit: 5, Parametric: true},
	{Name: "OC1A", Kind: FuncTimer, Port: 'B', Bit: 1, Parametric: true},
	{Name: "OC1B", Kind: FuncTimer, Port: 'B', Bit: 2, Parametric: true},
	{Name: "OC2A", Kind: FuncTimer, Port: 'B', Bit: 3, Parametric: true},
	{Name: "OC2B", Kind: FuncTimer, Port: 'D', Bit: 3, Parametric: true},
	{Name: "UART_RX", Kind: FuncUART, Port: 'D', Bit: 0, Polarity: ActiveHigh},
	{Name: "UART_TX", Kind: FuncUART, Port: 'D', Bit: 1, Polarity: ActiveHigh},
	{Name: "I2C_SDA", Kind: FuncI2C, Port: 'C', Bit: 4, Polarity: ActiveHigh},
	{Name: "I2C_SCL", Kind: FuncI2C, Port: 'C', Bit: 5, Polarity: ActiveHigh},
	{Name: "INT0", Kind: FuncExtInt, Port: 'D', Bit: 2, Parametric: true},
	{Name: "INT1", Kind: FuncExtInt, Port: 'D', Bit: 3, Parametric: true},
	{Name: "SPI_SCK", Kind: FuncSPI, Port: 'B', Bit: 5, Polarity: ActiveHigh},
	{Name: "SPI_MISO", Kind: FuncSPI, Port: 'B', Bit: 4, Polarity: ActiveHigh},
	{Name: "SPI_MOSI", Kind: FuncSPI, Port: 'B', Bit: 3, Polarity: ActiveHigh},
	{Name: "SPI_SS", Kind: FuncSPI, Port: 'B', Bit: 2, Polarity: ActiveLow},
}

// Mxx4 covers ATmega164, 324, 644 and 1284. Arduino numbers follow the
// MightyCore standard layout.
type Mxx4 struct{}

func (Mxx4) Table() *Table { return &mxx4Table }

var mxx4Table = Table{
	name: "Mxx4",
	mcus: []string{
		"atmega164a", "atmega164p", "atmega164pa",
		"atmega324a", "atmega324p", "atmega324pa",
		"atmega644", "atmega644a", "atmega644p", "atmega644pa",
		"atmega1284", "atmega1284p",
	},
	ports: []portDef{
		{'A', Registers{PIN: 0x20, DDR: 0x21, PORT: 0x22}},
		{'B', Registers{PIN: 0x23, DDR: 0x24, PORT: 0x25}},
		{'C', Registers{PIN: 0x26, DDR: 0x27, PORT: 0x28}},
		{'D', Registers{PIN: 0x29, DDR: 0x2a, PORT: 0x2b}},
	},
	nativeToggle: true,
	alt: []AltFunction{
		{Name: "OC0A", Kind: FuncTimer, Port: 'B', Bit: 3, Parametric: true},
		{Name: "OC0B", Kind: FuncTimer, Port: 'B', Bit: 4, Parametric: true},
		{Name: "OC1A", Kind: FuncTimer, Port: 'D', Bit: 5, Parametric: true},
		{Name: "OC1B", Kind: FuncTimer, Port: 'D', Bit: 4, Parametric: true},
		{Name: "OC2A", Kind: FuncTimer, Port: 'D', Bit: 7, Parametric: true},
		{Name: "OC2B", Kind: FuncTimer, Port: 'D', Bit: 6, Parametric: true},
		{Name: "OC3A", Kind: FuncTimer, Port: 'B', Bit: 6, Parametric: true},
		{Name: "OC3B", Kind: FuncTimer, Port: 'B', Bit: 7, Parametric: true},
		{Name: "UART_RX", Kind: FuncUART, Port: 'D', Bit: 0, Polarity: ActiveHigh},
		{Name: "UART_TX", Kind: FuncUART, Port: 'D', Bit: 1, Polarity: ActiveHigh},
		{Name: "UART1_RX", Kind: FuncUART, Port: 'D', Bit: 2, Polarity: ActiveHigh},
		{Name: "UART1_TX", Kind: FuncUART, Port: 'D', Bit: 3, Polarity: ActiveHigh},
		{Name: "I2C_SDA", Kind: FuncI2C, Port: 'C', Bit: 1, Polarity: ActiveHigh},
		{Name: "I2C_SCL", Kind: FuncI2C, Port: 'C', Bit: 0, Polarity: ActiveHigh},
		{Name: "SPI_SCK", Kind: FuncSPI, Port: 'B', Bit: 7, Polarity: ActiveHigh},
		{Name: "SPI_MISO", Kind: FuncSPI, Port: 'B', Bit: 6, Polarity: ActiveHigh},
		{Name: "SPI_MOSI", Kind: FuncSPI, Port: 'B', Bit: 5, Polarity: ActiveHigh},
		{Name: "SPI_SS", Kind: FuncSPI, Port: 'B', Bit: 4, Polarity: ActiveLow},
		{Name: "INT0", Kind: FuncExtInt, Port: 'D', Bit: 2, Parametric: true},
		{Name: "INT1", Kind: FuncExtInt, Port: 'D', Bit: 3, Parametric: true},
		{Name: "INT2", Kind: FuncExtInt, Port: 'B', Bit: 2, Parametric: true},
	},
	arduinoBase: map[Port]int{'B': 0, 'D': 8, 'C': 16, 'A': 24},
}

// Mega32 is the ATmega32, register compatible with ATmega16.
type Mega32 struct{}

func (Mega32) Table() *Table { return &mega32Table }

var mega32Table = Table{
	name: "Mega32",
	mcus: []string{"atmega32", "atmega32a"},
	ports: []portDef{
		{'A', Registers{PIN: 0x39, DDR: 0x3a, PORT: 0x3b}},
		{'B', Registers{PIN: 0x36, DDR: 0x37, PORT: 0x38}},
		{'C', Registers{PIN: 0x33, DDR: 0x34, PORT: 0x35}},
		{'D', Registers{PIN: 0x30, DDR: 0x31, PORT: 0x32}},
	},
	alt: []AltFunction{
		{Name: "OC0A", Kind: FuncTimer, Port: 'B', Bit: 3, Parametric: true},
		{Name: "OC0B", Kind: FuncTimer, Port: 'B', Bit: 4, Parametric: true},
		{Name: "OC1A", Kind: FuncTimer, Port: 'D', Bit: 5, Parametric: true},
		{Name: "OC1B", Kind: FuncTimer, Port: 'D', Bit: 4, Parametric: true},
		{Name: "OC2", Kind: FuncTimer, Port: 'D', Bit: 7, Parametric: true},
		{Name: "UART_RX", Kind: FuncUART, Port: 'D', Bit: 0, Polarity: ActiveHigh},
		{Name: "UART_TX", Kind: FuncUART, Port: 'D', Bit: 1, Polarity: ActiveHigh},
		{Name: "UART1_RX", Kind: FuncUART, Port: 'D', Bit: 2, Polarity: ActiveHigh},
		{Name: "UART1_TX", Kind: FuncUART, Port: 'D', Bit: 3, Polarity: ActiveHigh},
		{Name: "I2C_SDA", Kind: FuncI2C, Port: 'C', Bit: 1, Polarity: ActiveHigh},
		{Name: "I2C_SCL", Kind: FuncI2C, Port: 'C', Bit: 0, Polarity: ActiveHigh},
		{Name: "SPI_SCK", Kind: FuncSPI, Port: 'B', Bit: 7, Polarity: ActiveHigh},
		{Name: "SPI_MISO", Kind: FuncSPI, Port: 'B', Bit: 6, Polarity: ActiveHigh},
		{Name: "SPI_MOSI", Kind: FuncSPI, Port: 'B', Bit: 5, Polarity: ActiveHigh},
		{Name: "SPI_SS", Kind: FuncSPI, Port: 'B', Bit: 4, Polarity: ActiveLow},
		{Name: "INT0", Kind: FuncExtInt, Port: 'D', Bit: 2, Parametric: true},
		{Name: "INT1", Kind: FuncExtInt, Port: 'D', Bit: 3, Parametric: true},
		{Name: "INT2", Kind: FuncExtInt, Port: 'B', Bit: 2, Parametric: true},
	},
}
