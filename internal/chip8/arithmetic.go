package chip8

// Arithmetic operations of the 8XY_ family. All of them write the flag
// register VF deterministically: carry for additions, the inverted borrow
// convention for subtractions (VF=1 when the subtraction does not borrow)
// and the shifted out bit for shifts. The flag is written after the result,
// so VF as a destination register holds the flag, not the result.

// execAddRegister implements 8XY4: Vx += Vy with carry in VF.
func (vm *Chip8) execAddRegister(x, y uint8) {
	sum := uint16(vm.v[x]) + uint16(vm.v[y])
	vm.v[x] = uint8(sum)
	if sum > 0xFF {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
}

// execSubRegister implements 8XY5: Vx -= Vy, VF=1 when no borrow occurred.
func (vm *Chip8) execSubRegister(x, y uint8) {
	noBorrow := vm.v[x] >= vm.v[y]
	vm.v[x] -= vm.v[y]
	if noBorrow {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
}

// execSubReverse implements 8XY7: Vx = Vy - Vx, VF=1 when no borrow occurred.
func (vm *Chip8) execSubReverse(x, y uint8) {
	noBorrow := vm.v[y] >= vm.v[x]
	vm.v[x] = vm.v[y] - vm.v[x]
	if noBorrow {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
}

// execShiftRight implements 8XY6: shift right by one, VF takes the shifted
// out bit. The source operand is Vx in place, or Vy with the shift quirk.
func (vm *Chip8) execShiftRight(x, y uint8) {
	value := vm.v[x]
	if vm.quirks.ShiftSourceY {
		value = vm.v[y]
	}
	vm.v[x] = value >> 1
	vm.v[0xF] = value & 0x01
}

// execShiftLeft implements 8XYE: shift left by one, VF takes the shifted
// out bit. The source operand is Vx in place, or Vy with the shift quirk.
func (vm *Chip8) execShiftLeft(x, y uint8) {
	value := vm.v[x]
	if vm.quirks.ShiftSourceY {
		value = vm.v[y]
	}
	vm.v[x] = value << 1
	vm.v[0xF] = value >> 7
}
