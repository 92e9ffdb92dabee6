package chip8

// CHIP-8 memory layout constants.
//
// Memory map (4KB total):
//
//	0x000-0x1FF: reserved interpreter area, holds the font set
//	0x200-0xFFF: program ROM and work RAM
const (
	// MemorySize is the total addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// FontStart is the memory address where the built-in font set is loaded.
	FontStart = 0x50

	// MaxROMSize is the largest ROM that fits between ProgramStart and the
	// top of memory.
	MaxROMSize = MemorySize - ProgramStart

	// fontGlyphSize is the size of one font sprite in bytes.
	fontGlyphSize = 5
)

// fontSet contains the sprite data for the hex digits 0-F,
// 5 bytes per glyph, one bit per pixel.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// memory is the 4KB address space of the virtual machine. Reads are allowed
// anywhere in range, program writes are restricted to the area above the
// reserved interpreter region.
type memory struct {
	data [MemorySize]byte
}

// init zeroes the memory and loads the font set into the reserved region.
func (m *memory) init() {
	m.data = [MemorySize]byte{}
	copy(m.data[FontStart:], fontSet[:])
}

// readByte reads a single byte, returning an error for out of range addresses.
func (m *memory) readByte(address uint16) (byte, error) {
	if address >= MemorySize {
		return 0, MemoryAccessError{Address: address}
	}
	return m.data[address], nil
}

// readWord reads a big-endian 16-bit word from two consecutive bytes.
func (m *memory) readWord(address uint16) (uint16, error) {
	if address+1 >= MemorySize {
		return 0, MemoryAccessError{Address: address}
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// writeByte writes a single byte on behalf of the running program.
// The reserved interpreter region below ProgramStart is write-protected.
func (m *memory) writeByte(address uint16, value byte) error {
	if address >= MemorySize || address < ProgramStart {
		return MemoryAccessError{Address: address, Write: true}
	}
	m.data[address] = value
	return nil
}
