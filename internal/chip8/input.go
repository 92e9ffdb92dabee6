package chip8

// keyPressed reports whether the keypad key selected by a register value is
// pressed. Values outside the 16-key range report not pressed.
func (vm *Chip8) keyPressed(key uint8) bool {
	if int(key) >= len(vm.keys) {
		return false
	}
	return vm.keys[key]
}

// execWaitKey implements FX0A: block until a key is pressed and store its
// index in Vx. If a key is already down it completes immediately. Otherwise
// the machine enters the waiting condition: the program counter is moved
// back onto this instruction and subsequent Step calls only poll the key
// states until one is pressed.
func (vm *Chip8) execWaitKey(x uint8) {
	for key, pressed := range vm.keys {
		if pressed {
			vm.v[x] = uint8(key)
			return
		}
	}

	vm.pc -= 2
	vm.waitingKey = true
	vm.waitingReg = x
}
