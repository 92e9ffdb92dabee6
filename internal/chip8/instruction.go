package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Operation identifies one of the semantic operations of the base CHIP-8
// instruction set.
type Operation uint8

// Operations of the base instruction set.
const (
	OpClearScreen          Operation = iota // 00E0
	OpReturn                                // 00EE
	OpJump                                  // 1NNN
	OpCall                                  // 2NNN
	OpSkipEqualByte                         // 3XNN
	OpSkipNotEqualByte                      // 4XNN
	OpSkipEqualRegister                     // 5XY0
	OpLoadByte                              // 6XNN
	OpAddByte                               // 7XNN
	OpLoadRegister                          // 8XY0
	OpOr                                    // 8XY1
	OpAnd                                   // 8XY2
	OpXor                                   // 8XY3
	OpAddRegister                           // 8XY4
	OpSubRegister                           // 8XY5
	OpShiftRight                            // 8XY6
	OpSubReverse                            // 8XY7
	OpShiftLeft                             // 8XYE
	OpSkipNotEqualRegister                  // 9XY0
	OpLoadIndex                             // ANNN
	OpJumpOffset                            // BNNN
	OpRandom                                // CXNN
	OpDraw                                  // DXYN
	OpSkipKeyPressed                        // EX9E
	OpSkipKeyNotPressed                     // EXA1
	OpLoadFromDelayTimer                    // FX07
	OpWaitKey                               // FX0A
	OpSetDelayTimer                         // FX15
	OpSetSoundTimer                         // FX18
	OpAddIndex                              // FX1E
	OpLoadFontAddress                       // FX29
	OpStoreBCD                              // FX33
	OpStoreRegisters                        // FX55
	OpLoadRegisters                         // FX65
)

// Instruction is a decoded CHIP-8 instruction: the identified operation and
// its operand fields extracted from the 16-bit opcode word.
type Instruction struct {
	Op     Operation
	Opcode uint16 // raw opcode word

	X   uint8  // lower 4 bits of the high byte, usually a register index
	Y   uint8  // upper 4 bits of the low byte, usually a register index
	N   uint8  // lowest 4 bits, a nibble immediate
	NN  uint8  // lowest 8 bits, a byte immediate
	NNN uint16 // lowest 12 bits, a memory address
}

// Decode decodes a raw 16-bit opcode into an instruction. It is a pure
// lookup on the opcode's top nibble with further disambiguation on the low
// nibble or byte for the 0x0, 0x8, 0xE and 0xF families. An opcode that
// matches no known pattern returns an UnknownInstructionError.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x0F),
		Y:      uint8(opcode >> 4 & 0x0F),
		N:      uint8(opcode & 0x0F),
		NN:     uint8(opcode & 0xFF),
		NNN:    opcode & 0x0FFF,
	}

	switch opcode >> 12 {
	case 0x0:
		switch ins.NN {
		case 0xE0:
			ins.Op = OpClearScreen
		case 0xEE:
			ins.Op = OpReturn
		default:
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}

	case 0x1:
		ins.Op = OpJump
	case 0x2:
		ins.Op = OpCall
	case 0x3:
		ins.Op = OpSkipEqualByte
	case 0x4:
		ins.Op = OpSkipNotEqualByte

	case 0x5:
		if ins.N != 0 {
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}
		ins.Op = OpSkipEqualRegister

	case 0x6:
		ins.Op = OpLoadByte
	case 0x7:
		ins.Op = OpAddByte

	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Op = OpLoadRegister
		case 0x1:
			ins.Op = OpOr
		case 0x2:
			ins.Op = OpAnd
		case 0x3:
			ins.Op = OpXor
		case 0x4:
			ins.Op = OpAddRegister
		case 0x5:
			ins.Op = OpSubRegister
		case 0x6:
			ins.Op = OpShiftRight
		case 0x7:
			ins.Op = OpSubReverse
		case 0xE:
			ins.Op = OpShiftLeft
		default:
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}

	case 0x9:
		if ins.N != 0 {
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}
		ins.Op = OpSkipNotEqualRegister

	case 0xA:
		ins.Op = OpLoadIndex
	case 0xB:
		ins.Op = OpJumpOffset
	case 0xC:
		ins.Op = OpRandom
	case 0xD:
		ins.Op = OpDraw

	case 0xE:
		switch ins.NN {
		case 0x9E:
			ins.Op = OpSkipKeyPressed
		case 0xA1:
			ins.Op = OpSkipKeyNotPressed
		default:
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}

	case 0xF:
		switch ins.NN {
		case 0x07:
			ins.Op = OpLoadFromDelayTimer
		case 0x0A:
			ins.Op = OpWaitKey
		case 0x15:
			ins.Op = OpSetDelayTimer
		case 0x18:
			ins.Op = OpSetSoundTimer
		case 0x1E:
			ins.Op = OpAddIndex
		case 0x29:
			ins.Op = OpLoadFontAddress
		case 0x33:
			ins.Op = OpStoreBCD
		case 0x55:
			ins.Op = OpStoreRegisters
		case 0x65:
			ins.Op = OpLoadRegisters
		default:
			return Instruction{}, UnknownInstructionError{Opcode: opcode}
		}
	}

	return ins, nil
}

// Mnemonic returns the assembly mnemonic for an opcode based on the
// retrogolib CHIP-8 opcode tables, or an empty string if the opcode matches
// no known instruction. It is used for execution tracing and diagnostics.
func Mnemonic(opcode uint16) string {
	firstNibble := opcode >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			if op.Instruction == nil {
				return ""
			}
			return op.Instruction.Name
		}
	}
	return ""
}
