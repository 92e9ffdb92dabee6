// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateQuirks maps the quirk command line flags to machine quirks
func CreateQuirks(opts options.Program) chip8.Quirks {
	return chip8.Quirks{
		ShiftSourceY:   opts.ShiftSourceY,
		IndexIncrement: opts.IndexIncrement,
		JumpVX:         opts.JumpVX,
		ClipSprites:    opts.ClipSprites,
	}
}
