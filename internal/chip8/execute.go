package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// Step executes a single instruction cycle: fetch the opcode at the program
// counter, decode it and apply the operation to the machine state. The
// program counter advances by 2 for every instruction except control flow
// instructions, which set it directly, and a pending key wait, which leaves
// it unchanged.
//
// Step never blocks. While a blocking key wait is pending it only polls the
// key states and returns immediately. A fatal fault (unknown instruction,
// stack over/underflow, invalid memory access) halts execution: the fault is
// returned from every subsequent Step call until Reset or LoadROM is called,
// the machine state stays inspectable.
func (vm *Chip8) Step() error {
	if vm.halted != nil {
		return vm.halted
	}

	if vm.waitingKey {
		for key, pressed := range vm.keys {
			if pressed {
				vm.v[vm.waitingReg] = uint8(key)
				vm.waitingKey = false
				vm.pc += 2
				break
			}
		}
		return nil
	}

	opcode, err := vm.memory.readWord(vm.pc)
	if err != nil {
		vm.halted = err
		return err
	}

	ins, err := Decode(opcode)
	if err != nil {
		vm.halted = UnknownInstructionError{Opcode: opcode, Address: vm.pc}
		return vm.halted
	}

	vm.logger.Debug("executing instruction",
		log.String("mnemonic", Mnemonic(opcode)),
		log.Hex("opcode", opcode),
		log.Hex("address", vm.pc))

	vm.pc += 2

	if err := vm.execute(ins); err != nil {
		vm.halted = err
		return err
	}
	return nil
}

// execute dispatches a decoded instruction to its operation handler.
func (vm *Chip8) execute(ins Instruction) error {
	switch ins.Op {
	case OpClearScreen:
		vm.execClearScreen()
	case OpReturn:
		return vm.execReturn()
	case OpJump:
		vm.pc = ins.NNN
	case OpCall:
		return vm.execCall(ins.NNN)
	case OpSkipEqualByte:
		vm.skipIf(vm.v[ins.X] == ins.NN)
	case OpSkipNotEqualByte:
		vm.skipIf(vm.v[ins.X] != ins.NN)
	case OpSkipEqualRegister:
		vm.skipIf(vm.v[ins.X] == vm.v[ins.Y])
	case OpSkipNotEqualRegister:
		vm.skipIf(vm.v[ins.X] != vm.v[ins.Y])
	case OpLoadByte:
		vm.v[ins.X] = ins.NN
	case OpAddByte:
		vm.v[ins.X] += ins.NN // wraps, no flag change
	case OpLoadRegister:
		vm.v[ins.X] = vm.v[ins.Y]
	case OpOr:
		vm.v[ins.X] |= vm.v[ins.Y]
	case OpAnd:
		vm.v[ins.X] &= vm.v[ins.Y]
	case OpXor:
		vm.v[ins.X] ^= vm.v[ins.Y]
	case OpAddRegister:
		vm.execAddRegister(ins.X, ins.Y)
	case OpSubRegister:
		vm.execSubRegister(ins.X, ins.Y)
	case OpSubReverse:
		vm.execSubReverse(ins.X, ins.Y)
	case OpShiftRight:
		vm.execShiftRight(ins.X, ins.Y)
	case OpShiftLeft:
		vm.execShiftLeft(ins.X, ins.Y)
	case OpLoadIndex:
		vm.i = ins.NNN
	case OpJumpOffset:
		vm.execJumpOffset(ins)
	case OpRandom:
		vm.v[ins.X] = uint8(vm.rng.Intn(256)) & ins.NN
	case OpDraw:
		return vm.execDraw(ins)
	case OpSkipKeyPressed:
		vm.skipIf(vm.keyPressed(vm.v[ins.X]))
	case OpSkipKeyNotPressed:
		vm.skipIf(!vm.keyPressed(vm.v[ins.X]))
	case OpLoadFromDelayTimer:
		vm.v[ins.X] = vm.delayTimer
	case OpWaitKey:
		vm.execWaitKey(ins.X)
	case OpSetDelayTimer:
		vm.delayTimer = vm.v[ins.X]
	case OpSetSoundTimer:
		vm.soundTimer = vm.v[ins.X]
	case OpAddIndex:
		vm.i += uint16(vm.v[ins.X])
	case OpLoadFontAddress:
		vm.i = FontStart + uint16(vm.v[ins.X]&0x0F)*fontGlyphSize
	case OpStoreBCD:
		return vm.execStoreBCD(ins.X)
	case OpStoreRegisters:
		return vm.execStoreRegisters(ins.X)
	case OpLoadRegisters:
		return vm.execLoadRegisters(ins.X)
	}
	return nil
}

// skipIf advances the program counter past the next instruction when the
// condition holds.
func (vm *Chip8) skipIf(condition bool) {
	if condition {
		vm.pc += 2
	}
}
