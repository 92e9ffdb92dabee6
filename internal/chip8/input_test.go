package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSkipIfKeyPressed(t *testing.T) {
	tests := []struct {
		name    string
		opcode  uint16
		key     uint8
		pressed bool
		skipped bool
	}{
		{"key pressed", 0xE19E, 0x5, true, true},
		{"key not pressed", 0xE19E, 0x5, false, false},
		{"inverse key pressed", 0xE1A1, 0x5, true, false},
		{"inverse key not pressed", 0xE1A1, 0x5, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := newTestVM(t)
			vm.v[1] = tt.key
			if tt.pressed {
				vm.KeyDown(tt.key)
			}

			assert.NoError(t, runOpcode(t, vm, tt.opcode))

			expected := uint16(ProgramStart + 2)
			if tt.skipped {
				expected += 2
			}
			assert.Equal(t, expected, vm.pc)
		})
	}
}

func TestWaitKeyBlocks(t *testing.T) {
	vm := newTestVM(t)

	// FX0A leaves the program counter unchanged until a key is pressed
	assert.NoError(t, runOpcode(t, vm, 0xF30A))
	assert.True(t, vm.WaitingForKey())
	assert.Equal(t, uint16(ProgramStart), vm.pc)

	for i := 0; i < 5; i++ {
		assert.NoError(t, vm.Step())
		assert.True(t, vm.WaitingForKey())
		assert.Equal(t, uint16(ProgramStart), vm.pc)
	}

	vm.KeyDown(0xB)
	assert.NoError(t, vm.Step())

	assert.False(t, vm.WaitingForKey())
	assert.Equal(t, uint8(0xB), vm.v[3])
	assert.Equal(t, uint16(ProgramStart+2), vm.pc)
}

func TestWaitKeyImmediate(t *testing.T) {
	vm := newTestVM(t)
	vm.KeyDown(0x7)

	// a key that is already down completes the wait in the same step
	assert.NoError(t, runOpcode(t, vm, 0xF30A))
	assert.False(t, vm.WaitingForKey())
	assert.Equal(t, uint8(0x7), vm.v[3])
	assert.Equal(t, uint16(ProgramStart+2), vm.pc)
}

func TestWaitKeyResumeViaKeyDown(t *testing.T) {
	vm := newTestVM(t)

	assert.NoError(t, runOpcode(t, vm, 0xF00A))
	assert.True(t, vm.WaitingForKey())

	vm.KeyDown(0x2)
	vm.KeyUp(0x2) // released before the next step, wait continues

	assert.NoError(t, vm.Step())
	assert.True(t, vm.WaitingForKey())

	vm.KeyDown(0x2)
	assert.NoError(t, vm.Step())
	assert.False(t, vm.WaitingForKey())
	assert.Equal(t, uint8(0x2), vm.v[0])
}

func TestSkipKeyOutOfRangeValue(t *testing.T) {
	vm := newTestVM(t)
	vm.v[1] = 0x42 // not a valid key, treated as not pressed

	assert.NoError(t, runOpcode(t, vm, 0xE19E))
	assert.Equal(t, uint16(ProgramStart+2), vm.pc)

	assert.NoError(t, runOpcode(t, vm, 0xE1A1))
	assert.Equal(t, uint16(ProgramStart+6), vm.pc)
}
