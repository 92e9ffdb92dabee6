package gui

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeypadCode(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		key  uint8
	}{
		{sdl.SCANCODE_1, 0x1},
		{sdl.SCANCODE_2, 0x2},
		{sdl.SCANCODE_3, 0x3},
		{sdl.SCANCODE_4, 0xC},
		{sdl.SCANCODE_Q, 0x4},
		{sdl.SCANCODE_W, 0x5},
		{sdl.SCANCODE_E, 0x6},
		{sdl.SCANCODE_R, 0xD},
		{sdl.SCANCODE_A, 0x7},
		{sdl.SCANCODE_S, 0x8},
		{sdl.SCANCODE_D, 0x9},
		{sdl.SCANCODE_F, 0xE},
		{sdl.SCANCODE_Z, 0xA},
		{sdl.SCANCODE_X, 0x0},
		{sdl.SCANCODE_C, 0xB},
		{sdl.SCANCODE_V, 0xF},
	}

	for _, tt := range tests {
		key, ok := keypadCode(tt.code)
		assert.True(t, ok)
		assert.Equal(t, tt.key, key)
	}

	_, ok := keypadCode(sdl.SCANCODE_SPACE)
	assert.False(t, ok)
}
