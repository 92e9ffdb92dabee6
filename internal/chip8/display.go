package chip8

// execClearScreen implements 00E0: clear every framebuffer pixel and mark
// the display dirty.
func (vm *Chip8) execClearScreen() {
	vm.framebuffer = [DisplayWidth * DisplayHeight]byte{}
	vm.displayUpdated = true
}

// execDraw implements DXYN: XOR an 8xN sprite read from memory at the index
// register onto the framebuffer at (Vx, Vy). The start coordinates wrap
// modulo the display dimensions and by default every pixel placement wraps
// as well (toroidal addressing). With the clip quirk pixels past an edge are
// dropped instead. VF is set to 1 if any pixel was erased by the draw.
func (vm *Chip8) execDraw(ins Instruction) error {
	startX := int(vm.v[ins.X]) % DisplayWidth
	startY := int(vm.v[ins.Y]) % DisplayHeight
	height := int(ins.N)

	vm.v[0xF] = 0
	for row := 0; row < height; row++ {
		spriteByte, err := vm.memory.readByte(vm.i + uint16(row))
		if err != nil {
			return err
		}

		py := startY + row
		if vm.quirks.ClipSprites {
			if py >= DisplayHeight {
				break
			}
		} else {
			py %= DisplayHeight
		}

		for col := 0; col < 8; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}

			px := startX + col
			if vm.quirks.ClipSprites {
				if px >= DisplayWidth {
					continue
				}
			} else {
				px %= DisplayWidth
			}

			pixel := &vm.framebuffer[py*DisplayWidth+px]
			if *pixel == 1 {
				vm.v[0xF] = 1 // collision
			}
			*pixel ^= 1
		}
	}

	vm.displayUpdated = true
	return nil
}
