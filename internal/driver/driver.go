// Package driver paces a CHIP-8 virtual machine against wall-clock time.
// It owns one machine, runs instruction steps at a configurable rate and
// ticks the delay/sound timers at a fixed 60 Hz, decoupled from the
// instruction throughput. The driver performs no internal threading, the
// host event loop calls Tick and serializes all access.
package driver

import (
	"fmt"
	"time"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// timerRate is the fixed timer frequency in ticks per second.
const timerRate = 60

// Driver drives a CHIP-8 machine in real time.
type Driver struct {
	logger *log.Logger
	vm     *chip8.Chip8

	instructionRate int
	stepInterval    time.Duration
	timerInterval   time.Duration

	lastStep  time.Time
	lastTimer time.Time

	now func() time.Time
}

// New returns a driver owning a fresh CHIP-8 machine that executes
// instructionRate steps per second. A rate of 0 pauses instruction
// execution, timers keep running.
func New(logger *log.Logger, instructionRate int, quirks chip8.Quirks) *Driver {
	d := &Driver{
		logger:        logger,
		vm:            chip8.New(logger, quirks),
		timerInterval: time.Second / timerRate,
		now:           time.Now,
	}
	d.SetInstructionRate(instructionRate)

	start := d.now()
	d.lastStep = start
	d.lastTimer = start
	return d
}

// SetInstructionRate reconfigures how many instruction steps per second the
// driver executes. A rate of 0 or below pauses instruction execution.
func (d *Driver) SetInstructionRate(instructionRate int) {
	d.instructionRate = instructionRate
	if instructionRate > 0 {
		d.stepInterval = time.Second / time.Duration(instructionRate)
	} else {
		d.stepInterval = 0
	}
}

// Tick advances the machine by the wall-clock time elapsed since the last
// call: it executes as many instruction steps as the configured rate allows
// and ticks the timers at 60 Hz. Catch-up work is capped at one second so a
// stalled host does not trigger a burst of backlogged frames.
func (d *Driver) Tick() error {
	now := d.now()

	if d.stepInterval > 0 {
		elapsed := now.Sub(d.lastStep)
		if elapsed >= d.stepInterval {
			steps := int(elapsed / d.stepInterval)
			if steps > d.instructionRate {
				steps = d.instructionRate
			}
			for i := 0; i < steps; i++ {
				if err := d.vm.Step(); err != nil {
					return fmt.Errorf("executing instruction: %w", err)
				}
			}
			d.lastStep = now
		}
	}

	elapsed := now.Sub(d.lastTimer)
	if elapsed >= d.timerInterval {
		ticks := int(elapsed / d.timerInterval)
		if ticks > timerRate {
			ticks = timerRate
		}
		for i := 0; i < ticks; i++ {
			d.vm.TickTimers()
		}
		d.lastTimer = now
	}

	return nil
}

// LoadROM loads a ROM image into the machine.
func (d *Driver) LoadROM(rom []byte) error {
	if err := d.vm.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	d.logger.Debug("ROM loaded", log.Int("size", len(rom)))
	return nil
}

// Reset restores the machine to its initial state.
func (d *Driver) Reset() {
	d.vm.Reset()
}

// KeyDown forwards a keypad press to the machine.
func (d *Driver) KeyDown(key uint8) {
	d.vm.KeyDown(key)
}

// KeyUp forwards a keypad release to the machine.
func (d *Driver) KeyUp(key uint8) {
	d.vm.KeyUp(key)
}

// Framebuffer returns a copy of the display pixels in row-major order and
// whether the display changed since the last call. The dirty flag is cleared
// by reading it.
func (d *Driver) Framebuffer() ([]byte, bool) {
	updated := d.vm.DisplayUpdated()
	if updated {
		d.vm.ClearDisplayUpdated()
	}

	pixels := d.vm.Framebuffer()
	frame := make([]byte, len(pixels))
	copy(frame, pixels)
	return frame, updated
}

// SoundActive reports whether the host should play a tone.
func (d *Driver) SoundActive() bool {
	return d.vm.SoundActive()
}

// Width returns the display width in pixels.
func (d *Driver) Width() int {
	return chip8.DisplayWidth
}

// Height returns the display height in pixels.
func (d *Driver) Height() int {
	return chip8.DisplayHeight
}
