// Package terminal implements a text mode display frontend.
package terminal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retroenv/chip8go/internal/driver"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// ANSI control sequences used for rendering.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	bell        = "\a"

	pixelOn  = "██"
	pixelOff = "  "
)

// keyHoldDuration is how long a key press read from the terminal is held
// down before it is released. Terminals only deliver key presses, no
// release events.
const keyHoldDuration = 100 * time.Millisecond

// loopDelay throttles the event loop, the driver paces the machine.
const loopDelay = time.Millisecond

// Terminal renders the machine display as text and feeds keyboard input
// read from stdin in raw mode to the keypad.
type Terminal struct {
	logger *log.Logger
	driver *driver.Driver

	keys chan uint8
	quit chan struct{}

	heldKey     uint8
	keyHeld     bool
	releaseTime time.Time

	soundPlaying bool
}

// New returns a new terminal frontend rendering the given driver's display.
func New(logger *log.Logger, d *driver.Driver) *Terminal {
	return &Terminal{
		logger: logger,
		driver: d,
		keys:   make(chan uint8, 1),
		quit:   make(chan struct{}),
	}
}

// Run switches the terminal to raw mode and runs the emulation loop until
// escape or ctrl-c is pressed, the context is cancelled or the machine
// faults.
func (t *Terminal) Run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			t.logger.Error("Restoring terminal failed", log.Err(err))
		}
		fmt.Print(showCursor)
	}()

	fmt.Print(hideCursor + clearScreen)

	// the reader goroutine stays blocked on stdin until process exit
	go t.readKeys()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.quit:
			return nil
		case key := <-t.keys:
			t.pressKey(key)
		default:
		}

		t.releaseExpiredKey()

		if err := t.driver.Tick(); err != nil {
			return fmt.Errorf("running machine: %w", err)
		}

		if frame, updated := t.driver.Framebuffer(); updated {
			fmt.Print(renderFrame(frame, t.driver.Width(), t.driver.Height()))
		}
		t.updateSound()

		time.Sleep(loopDelay)
	}
}

// readKeys reads single bytes from stdin and translates them to keypad
// presses or the quit signal.
func (t *Terminal) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}

		b := buf[0]
		if b == 0x03 || b == 0x1b { // ctrl-c, escape
			close(t.quit)
			return
		}

		key, ok := keypadChar(b)
		if !ok {
			continue
		}
		select {
		case t.keys <- key:
		default:
		}
	}
}

// pressKey holds down a keypad key, replacing any previously held key.
func (t *Terminal) pressKey(key uint8) {
	if t.keyHeld && t.heldKey != key {
		t.driver.KeyUp(t.heldKey)
	}
	t.driver.KeyDown(key)
	t.heldKey = key
	t.keyHeld = true
	t.releaseTime = time.Now().Add(keyHoldDuration)
}

// releaseExpiredKey releases the held key once its hold duration passed.
func (t *Terminal) releaseExpiredKey() {
	if t.keyHeld && time.Now().After(t.releaseTime) {
		t.driver.KeyUp(t.heldKey)
		t.keyHeld = false
	}
}

// updateSound rings the terminal bell when the sound timer becomes active.
func (t *Terminal) updateSound() {
	active := t.driver.SoundActive()
	if active && !t.soundPlaying {
		fmt.Print(bell)
	}
	t.soundPlaying = active
}

// renderFrame converts a row-major framebuffer into a string drawing the
// display at the top left corner of the terminal. Each pixel is rendered
// two characters wide to approximate a square shape.
func renderFrame(frame []byte, width, height int) string {
	var sb strings.Builder
	sb.WriteString(cursorHome)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if frame[y*width+x] != 0 {
				sb.WriteString(pixelOn)
			} else {
				sb.WriteString(pixelOff)
			}
		}
		// raw mode requires an explicit carriage return
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// keypadChar maps keys of a QWERTY keyboard to the CHIP-8 keypad, using
// the same layout as the SDL frontend:
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
func keypadChar(b byte) (uint8, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	switch b {
	case '1':
		return 0x1, true
	case '2':
		return 0x2, true
	case '3':
		return 0x3, true
	case '4':
		return 0xC, true
	case 'q':
		return 0x4, true
	case 'w':
		return 0x5, true
	case 'e':
		return 0x6, true
	case 'r':
		return 0xD, true
	case 'a':
		return 0x7, true
	case 's':
		return 0x8, true
	case 'd':
		return 0x9, true
	case 'f':
		return 0xE, true
	case 'z':
		return 0xA, true
	case 'x':
		return 0x0, true
	case 'c':
		return 0xB, true
	case 'v':
		return 0xF, true
	default:
		return 0, false
	}
}
