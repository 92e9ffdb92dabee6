package chip8

// execStoreBCD implements FX33: write the hundreds, tens and ones digits of
// Vx to three consecutive memory cells starting at the index register.
func (vm *Chip8) execStoreBCD(x uint8) error {
	value := vm.v[x]
	if err := vm.memory.writeByte(vm.i, value/100); err != nil {
		return err
	}
	if err := vm.memory.writeByte(vm.i+1, value/10%10); err != nil {
		return err
	}
	return vm.memory.writeByte(vm.i+2, value%10)
}

// execStoreRegisters implements FX55: copy registers V0..Vx to memory
// starting at the index register. With the index quirk the index register is
// incremented by X+1 as a side effect.
func (vm *Chip8) execStoreRegisters(x uint8) error {
	for reg := uint16(0); reg <= uint16(x); reg++ {
		if err := vm.memory.writeByte(vm.i+reg, vm.v[reg]); err != nil {
			return err
		}
	}
	if vm.quirks.IndexIncrement {
		vm.i += uint16(x) + 1
	}
	return nil
}

// execLoadRegisters implements FX65: copy memory starting at the index
// register into registers V0..Vx. With the index quirk the index register is
// incremented by X+1 as a side effect.
func (vm *Chip8) execLoadRegisters(x uint8) error {
	for reg := uint16(0); reg <= uint16(x); reg++ {
		value, err := vm.memory.readByte(vm.i + reg)
		if err != nil {
			return err
		}
		vm.v[reg] = value
	}
	if vm.quirks.IndexIncrement {
		vm.i += uint16(x) + 1
	}
	return nil
}
