package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoadIndex(t *testing.T) {
	vm := newTestVM(t)

	assert.NoError(t, runOpcode(t, vm, 0xA123))
	assert.Equal(t, uint16(0x123), vm.i)
}

func TestAddIndex(t *testing.T) {
	vm := newTestVM(t)
	vm.i = 0x100
	vm.v[1] = 0x20

	assert.NoError(t, runOpcode(t, vm, 0xF11E))
	assert.Equal(t, uint16(0x120), vm.i)
}

func TestLoadFontAddress(t *testing.T) {
	tests := []struct {
		name     string
		digit    uint8
		expected uint16
	}{
		{"digit 0", 0x0, FontStart},
		{"digit 1", 0x1, FontStart + 5},
		{"digit F", 0xF, FontStart + 15*5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := newTestVM(t)
			vm.v[4] = tt.digit

			assert.NoError(t, runOpcode(t, vm, 0xF429))
			assert.Equal(t, tt.expected, vm.i)
		})
	}
}

func TestStoreBCD(t *testing.T) {
	tests := []struct {
		name     string
		value    uint8
		expected [3]byte
	}{
		{"three digits", 234, [3]byte{2, 3, 4}},
		{"two digits", 42, [3]byte{0, 4, 2}},
		{"one digit", 7, [3]byte{0, 0, 7}},
		{"zero", 0, [3]byte{0, 0, 0}},
		{"max value", 255, [3]byte{2, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := newTestVM(t)
			vm.v[1] = tt.value
			vm.i = 0x300

			assert.NoError(t, runOpcode(t, vm, 0xF133))
			assert.Equal(t, tt.expected[0], vm.memory.data[0x300])
			assert.Equal(t, tt.expected[1], vm.memory.data[0x301])
			assert.Equal(t, tt.expected[2], vm.memory.data[0x302])
		})
	}
}

func TestStoreLoadRegistersRoundTrip(t *testing.T) {
	vm := newTestVM(t)
	values := [8]uint8{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	copy(vm.v[:], values[:])
	vm.i = 0x300

	assert.NoError(t, runOpcode(t, vm, 0xF755)) // store V0..V7
	assert.Equal(t, uint16(0x300), vm.i)        // no index quirk

	vm.v = [16]uint8{}
	assert.NoError(t, runOpcode(t, vm, 0xF765)) // load V0..V7

	for reg := 0; reg < 8; reg++ {
		assert.Equal(t, values[reg], vm.v[reg])
	}
	assert.Equal(t, uint8(0), vm.v[8])
}

func TestStoreRegistersIndexQuirk(t *testing.T) {
	vm := newQuirkVM(t, Quirks{IndexIncrement: true})
	vm.v[0] = 0xAA
	vm.v[1] = 0xBB
	vm.i = 0x300

	assert.NoError(t, runOpcode(t, vm, 0xF155))
	assert.Equal(t, uint16(0x302), vm.i)

	vm.i = 0x300
	assert.NoError(t, runOpcode(t, vm, 0xF165))
	assert.Equal(t, uint16(0x302), vm.i)
}

func TestStoreRegistersWriteProtected(t *testing.T) {
	vm := newTestVM(t)
	vm.i = 0x100 // inside the reserved interpreter region

	err := runOpcode(t, vm, 0xF055)
	var memErr MemoryAccessError
	assert.True(t, errors.As(err, &memErr))
	assert.True(t, memErr.Write)
	assert.Equal(t, uint16(0x100), memErr.Address)
}

func TestStoreBCDWriteProtected(t *testing.T) {
	vm := newTestVM(t)
	vm.v[1] = 123
	vm.i = 0x1FF

	err := runOpcode(t, vm, 0xF133)
	var memErr MemoryAccessError
	assert.True(t, errors.As(err, &memErr))
	assert.True(t, memErr.Write)
}

func TestLoadRegistersOutOfBounds(t *testing.T) {
	vm := newTestVM(t)
	vm.i = MemorySize - 2

	err := runOpcode(t, vm, 0xF365)
	var memErr MemoryAccessError
	assert.True(t, errors.As(err, &memErr))
	assert.False(t, memErr.Write)
}
