// Package gui implements the SDL display frontend.
package gui

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8go/internal/driver"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowTitle = "chip8go"

	backgroundColor = 0x1A237E
	pixelColor      = 0x9FA8DA

	// loopDelayMS throttles the event loop, the driver paces the machine.
	loopDelayMS = 1
)

// GUI renders the machine display in an SDL window and feeds keyboard
// events to the keypad.
type GUI struct {
	logger *log.Logger
	driver *driver.Driver
	scale  int32

	window  *sdl.Window
	surface *sdl.Surface
}

// New returns a new SDL frontend rendering the given driver's display,
// scaled by the given pixel size factor.
func New(logger *log.Logger, d *driver.Driver, scale int) *GUI {
	return &GUI{
		logger: logger,
		driver: d,
		scale:  int32(scale),
	}
}

// Run opens the window and runs the emulation loop until the window is
// closed, escape is pressed, the context is cancelled or the machine faults.
func (g *GUI) Run(ctx context.Context) error {
	if err := g.setupWindow(); err != nil {
		return err
	}
	defer g.destroyWindow()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		quit, err := g.processEvents()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if err := g.driver.Tick(); err != nil {
			return fmt.Errorf("running machine: %w", err)
		}

		if frame, updated := g.driver.Framebuffer(); updated {
			if err := g.render(frame); err != nil {
				return err
			}
		}

		sdl.Delay(loopDelayMS)
	}
}

func (g *GUI) setupWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(g.driver.Width())*g.scale, int32(g.driver.Height())*g.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	g.window = window

	surface, err := window.GetSurface()
	if err != nil {
		return fmt.Errorf("getting window surface: %w", err)
	}
	g.surface = surface

	if err := g.surface.FillRect(nil, backgroundColor); err != nil {
		return fmt.Errorf("clearing window surface: %w", err)
	}
	return g.window.UpdateSurface()
}

func (g *GUI) destroyWindow() {
	if g.window != nil {
		if err := g.window.Destroy(); err != nil {
			g.logger.Error("Destroying window failed", log.Err(err))
		}
	}
	sdl.Quit()
}

// processEvents drains the SDL event queue and reports whether the
// application should quit.
func (g *GUI) processEvents() (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if t.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return true, nil
			}

			key, ok := keypadCode(t.Keysym.Scancode)
			if !ok {
				continue
			}
			switch t.GetType() {
			case sdl.KEYDOWN:
				g.driver.KeyDown(key)
			case sdl.KEYUP:
				g.driver.KeyUp(key)
			}
		}
	}
	return false, nil
}

// render draws the row-major framebuffer scaled onto the window surface.
func (g *GUI) render(frame []byte) error {
	if err := g.surface.FillRect(nil, backgroundColor); err != nil {
		return fmt.Errorf("clearing window surface: %w", err)
	}

	width := g.driver.Width()
	for y := 0; y < g.driver.Height(); y++ {
		for x := 0; x < width; x++ {
			if frame[y*width+x] == 0 {
				continue
			}
			rect := sdl.Rect{
				X: int32(x) * g.scale,
				Y: int32(y) * g.scale,
				W: g.scale,
				H: g.scale,
			}
			if err := g.surface.FillRect(&rect, pixelColor); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	return g.window.UpdateSurface()
}

// keypadCode maps keys of a QWERTY keyboard to the CHIP-8 keypad:
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
func keypadCode(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	default:
		return 0, false
	}
}
