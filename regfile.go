package stdpins

// RegisterFile is the memory the pin operations read and write. On the chip
// it is the I/O space itself; on a host it is a byte array or a simulator.
type RegisterFile interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// BitSetter is implemented by register files that can set or clear bits in
// one step (sbi/cbi on AVR). Operations prefer it over read-modify-write.
type BitSetter interface {
	SetBits(addr uint16, mask uint8)
	ClearBits(addr uint16, mask uint8)
}

// The process wide register file, see SetRegisters.
var registers RegisterFile = defaultRegisters()

// SetRegisters binds the register file used by all pin operations. Tests call
// this with a fresh Memory or Simulator before each case.
func SetRegisters(r RegisterFile) {
	registers = r
}

// CurrentRegisters returns the bound register file.
func CurrentRegisters() RegisterFile {
	return registers
}

// MemorySize covers the AVR data space up to the end of the extended I/O
// area, which holds every GPIO register of the supported families.
const MemorySize = 0x100

// Memory is a plain register file with no side effects: what is written is
// read back. It stands in for the chip when only register contents matter.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory returns zeroed memory, the reset state of the GPIO registers.
func NewMemory() *Memory {
	return new(Memory)
}

func (m *Memory) Read(addr uint16) uint8 {
	if int(addr) >= len(m.data) {
		return 0
	}
	return m.data[addr]
}

func (m *Memory) Write(addr uint16, value uint8) {
	if int(addr) >= len(m.data) {
		return
	}
	m.data[addr] = value
}

func (m *Memory) SetBits(addr uint16, mask uint8) {
	m.Write(addr, m.Read(addr)|mask)
}

func (m *Memory) ClearBits(addr uint16, mask uint8) {
	m.Write(addr, m.Read(addr)&^mask)
}

// Bit reports a single register bit, for assertions in tests.
func (m *Memory) Bit(addr uint16, bit uint8) bool {
	return m.Read(addr)&(1<<bit) != 0
}
