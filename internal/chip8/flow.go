package chip8

// execCall implements 2NNN: push the return address and jump. The program
// counter already points past the call instruction when this runs.
func (vm *Chip8) execCall(address uint16) error {
	if err := vm.push(vm.pc); err != nil {
		return err
	}
	vm.pc = address
	return nil
}

// execReturn implements 00EE: pop the return address into the program
// counter.
func (vm *Chip8) execReturn() error {
	address, err := vm.pop()
	if err != nil {
		return err
	}
	vm.pc = address
	return nil
}

// execJumpOffset implements BNNN: jump to NNN plus an offset register.
// The base behavior adds V0, the quirk variant uses the register selected by
// the high nibble of the address (CHIP-48/SUPER-CHIP).
func (vm *Chip8) execJumpOffset(ins Instruction) {
	offset := vm.v[0]
	if vm.quirks.JumpVX {
		offset = vm.v[ins.X]
	}
	vm.pc = ins.NNN + uint16(offset)
}
