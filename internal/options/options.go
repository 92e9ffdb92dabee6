// Package options contains the program options.
package options

// Frontend names selectable via the -frontend flag.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "terminal"
)

// DefaultInstructionRate is the default CPU speed in instructions per second.
// Most classic ROMs are tuned for a machine running at roughly this speed.
const DefaultInstructionRate = 700

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Frontend string // display frontend: sdl, terminal
	Rate     int    // instructions per second, 0 starts paused
	Scale    int    // window pixel scale factor (sdl frontend)
	Debug    bool
	Quiet    bool
}

// QuirkFlags contains compatibility toggles for ROMs written against
// diverging interpreter behaviors.
type QuirkFlags struct {
	ShiftSourceY   bool // 8XY6/8XYE shift VY instead of VX
	IndexIncrement bool // FX55/FX65 leave I incremented by X+1
	JumpVX         bool // BNNN jumps with VX instead of V0
	ClipSprites    bool // clip sprites at the display edge instead of wrapping
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}
