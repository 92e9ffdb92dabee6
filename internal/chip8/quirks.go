package chip8

// Quirks selects between documented behavioral divergences of historical
// CHIP-8 interpreters. ROM corpora disagree on the expected behavior for
// these instructions, so each variant is an explicit configuration flag.
// The zero value selects the most common modern conventions.
type Quirks struct {
	// ShiftSourceY makes 8XY6/8XYE shift a copy of Vy into Vx instead of
	// shifting Vx in place, matching the original COSMAC VIP interpreter.
	ShiftSourceY bool

	// IndexIncrement makes FX55/FX65 increment the index register by X+1
	// as a side effect, matching the original COSMAC VIP interpreter.
	IndexIncrement bool

	// JumpVX makes BNNN add the register selected by the high nibble of
	// the address instead of V0 (the CHIP-48/SUPER-CHIP behavior).
	JumpVX bool

	// ClipSprites makes DXYN clip sprites at the display edges instead of
	// wrapping them around (toroidal addressing). Only the pixel placement
	// is affected, the start coordinates always wrap.
	ClipSprites bool
}
