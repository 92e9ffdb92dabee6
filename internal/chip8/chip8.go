// Package chip8 implements the CHIP-8 virtual machine core.
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games. This package owns the machine state (memory, registers,
// stack, timers, framebuffer, keypad) and the fetch/decode/execute cycle for
// the base 35-instruction set. It performs no I/O and no internal threading,
// the host adapter drives it through Step, TickTimers and the key methods.
package chip8

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Display dimensions of the base CHIP-8 system.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// stackSize is the maximum subroutine call depth.
const stackSize = 16

// Chip8 is the state of one CHIP-8 virtual machine.
// It is exclusively owned by a single host session, all mutation happens
// synchronously inside Step, TickTimers, LoadROM and Reset. The machine
// provides no internal synchronization, the caller serializes access.
type Chip8 struct {
	logger *log.Logger
	quirks Quirks
	rng    *rand.Rand

	memory memory
	v      [16]uint8 // general purpose registers V0-VF
	i      uint16    // index register
	pc     uint16
	sp     uint8
	stack  [stackSize]uint16

	delayTimer uint8
	soundTimer uint8

	framebuffer    [DisplayWidth * DisplayHeight]byte
	displayUpdated bool

	keys       [16]bool
	waitingKey bool // blocked on FX0A until a key is pressed
	waitingReg uint8

	halted error // fatal fault that stopped execution, nil while running
}

// New returns a new CHIP-8 virtual machine in its initial state: font set
// loaded, program counter at ProgramStart, everything else zeroed.
func New(logger *log.Logger, quirks Quirks) *Chip8 {
	vm := &Chip8{
		logger: logger,
		quirks: quirks,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	vm.Reset()
	return vm
}

// Reset restores the initial machine state: memory is cleared and the font
// set reloaded, registers, stack, timers, framebuffer and key states are
// zeroed and the program counter is set to ProgramStart. Any halt condition
// is cleared.
func (vm *Chip8) Reset() {
	vm.memory.init()
	vm.v = [16]uint8{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.sp = 0
	vm.stack = [stackSize]uint16{}
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.framebuffer = [DisplayWidth * DisplayHeight]byte{}
	vm.displayUpdated = false
	vm.keys = [16]bool{}
	vm.waitingKey = false
	vm.halted = nil
}

// LoadROM copies a raw ROM image into memory starting at ProgramStart.
// A ROM larger than MaxROMSize is rejected with ROMTooLargeError and the
// machine state is left unchanged. On success registers, stack, timers,
// display and key states are cleared and the program counter is set to
// ProgramStart, the font set is not reloaded.
func (vm *Chip8) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ROMTooLargeError{Size: len(rom), Max: MaxROMSize}
	}

	for i := ProgramStart; i < MemorySize; i++ {
		vm.memory.data[i] = 0
	}
	copy(vm.memory.data[ProgramStart:], rom)

	vm.v = [16]uint8{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.sp = 0
	vm.stack = [stackSize]uint16{}
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.framebuffer = [DisplayWidth * DisplayHeight]byte{}
	vm.displayUpdated = false
	vm.keys = [16]bool{}
	vm.waitingKey = false
	vm.halted = nil
	return nil
}

// TickTimers decrements the delay and sound timers by one, floored at zero.
// It is intended to be called at a fixed 60 Hz rate by the host, decoupled
// from the instruction execution rate.
func (vm *Chip8) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// KeyDown marks a keypad key as pressed. Indexes outside 0x0-0xF are ignored.
func (vm *Chip8) KeyDown(key uint8) {
	if int(key) < len(vm.keys) {
		vm.keys[key] = true
	}
}

// KeyUp marks a keypad key as released. Indexes outside 0x0-0xF are ignored.
func (vm *Chip8) KeyUp(key uint8) {
	if int(key) < len(vm.keys) {
		vm.keys[key] = false
	}
}

// Framebuffer returns the display pixels as 0/1 values in row-major order.
// The returned slice aliases the internal framebuffer, it is valid until the
// next Step or Reset call.
func (vm *Chip8) Framebuffer() []byte {
	return vm.framebuffer[:]
}

// DisplayUpdated reports whether a draw occurred since the flag was last
// cleared.
func (vm *Chip8) DisplayUpdated() bool {
	return vm.displayUpdated
}

// ClearDisplayUpdated clears the display dirty flag, to be called by the
// host after it consumed a frame.
func (vm *Chip8) ClearDisplayUpdated() {
	vm.displayUpdated = false
}

// SoundActive reports whether the sound timer is running and a tone should
// be audible. Audio synthesis is up to the host.
func (vm *Chip8) SoundActive() bool {
	return vm.soundTimer > 0
}

// DelayTimer returns the current delay timer value.
func (vm *Chip8) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the current sound timer value.
func (vm *Chip8) SoundTimer() uint8 {
	return vm.soundTimer
}

// WaitingForKey reports whether execution is suspended on a blocking key
// wait (FX0A). Step remains a no-op until a key is pressed.
func (vm *Chip8) WaitingForKey() bool {
	return vm.waitingKey
}

// ProgramCounter returns the current program counter, useful for diagnostics
// after a fatal fault.
func (vm *Chip8) ProgramCounter() uint16 {
	return vm.pc
}

// push stores a return address on the stack.
func (vm *Chip8) push(address uint16) error {
	if vm.sp >= stackSize {
		return StackOverflowError{Address: vm.pc}
	}
	vm.stack[vm.sp] = address
	vm.sp++
	return nil
}

// pop removes and returns the topmost return address from the stack.
func (vm *Chip8) pop() (uint16, error) {
	if vm.sp == 0 {
		return 0, StackUnderflowError{Address: vm.pc}
	}
	vm.sp--
	return vm.stack[vm.sp], nil
}
