package chip8

import "fmt"

// ROMTooLargeError is returned by LoadROM when the ROM does not fit into the
// memory area above ProgramStart. The machine state is left unchanged.
type ROMTooLargeError struct {
	Size int
	Max  int
}

func (e ROMTooLargeError) Error() string {
	return fmt.Sprintf("ROM size %d exceeds maximum of %d bytes", e.Size, e.Max)
}

// UnknownInstructionError is returned by Step when an opcode matches no known
// instruction pattern. Execution halts at the offending address.
type UnknownInstructionError struct {
	Opcode  uint16
	Address uint16
}

func (e UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction %04X at address %03X", e.Opcode, e.Address)
}

// StackOverflowError is returned when a subroutine call exceeds the stack
// capacity of 16 return addresses.
type StackOverflowError struct {
	Address uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow on call at address %03X", e.Address)
}

// StackUnderflowError is returned when a return instruction executes with an
// empty stack.
type StackUnderflowError struct {
	Address uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow on return at address %03X", e.Address)
}

// MemoryAccessError is returned when the program counter or a computed
// address falls outside the 4KB address space, or a program write targets
// the write-protected interpreter region.
type MemoryAccessError struct {
	Address uint16
	Write   bool
}

func (e MemoryAccessError) Error() string {
	if e.Write {
		return fmt.Sprintf("invalid memory write at address %04X", e.Address)
	}
	return fmt.Sprintf("invalid memory access at address %04X", e.Address)
}
