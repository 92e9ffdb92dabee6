package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendSDL,
					Rate:     options.DefaultInstructionRate,
					Scale:    10,
				},
			},
		},
		{
			name: "terminal frontend",
			args: []string{"prog", "-frontend", "terminal", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendTerminal,
					Rate:     options.DefaultInstructionRate,
					Scale:    10,
				},
			},
		},
		{
			name: "custom rate and scale",
			args: []string{"prog", "-rate", "1000", "-scale", "4", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendSDL,
					Rate:     1000,
					Scale:    4,
				},
			},
		},
		{
			name: "quirk flags",
			args: []string{"prog", "-quirk-shift-y", "-quirk-index", "-quirk-jump-vx", "-quirk-clip", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				Flags: options.Flags{
					Frontend: options.FrontendSDL,
					Rate:     options.DefaultInstructionRate,
					Scale:    10,
				},
				QuirkFlags: options.QuirkFlags{
					ShiftSourceY:   true,
					IndexIncrement: true,
					JumpVX:         true,
					ClipSprites:    true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{
			name:       "no arguments",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "flag after ROM file",
			args:       []string{"prog", "test.ch8", "-debug"},
			usageError: true,
		},
		{
			name: "unsupported frontend",
			args: []string{"prog", "-frontend", "vulkan", "test.ch8"},
		},
		{
			name: "negative rate",
			args: []string{"prog", "-rate", "-1", "test.ch8"},
		},
		{
			name: "zero scale",
			args: []string{"prog", "-scale", "0", "test.ch8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}

func TestValidateFrontend(t *testing.T) {
	assert.NoError(t, validateFrontend(options.FrontendSDL))
	assert.NoError(t, validateFrontend(options.FrontendTerminal))
	assert.Error(t, validateFrontend("opengl"))
}
