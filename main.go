// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8go/internal/cli"
	"github.com/retroenv/chip8go/internal/config"
	"github.com/retroenv/chip8go/internal/driver"
	"github.com/retroenv/chip8go/internal/gui"
	"github.com/retroenv/chip8go/internal/loader"
	"github.com/retroenv/chip8go/internal/options"
	"github.com/retroenv/chip8go/internal/terminal"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM file: %w", err)
	}

	d := driver.New(logger, opts.Rate, config.CreateQuirks(opts))
	if err := d.LoadROM(rom); err != nil {
		return err
	}

	logger.Info("Starting emulation",
		log.String("input", opts.Input),
		log.String("frontend", opts.Frontend),
		log.Int("rate", opts.Rate))

	switch opts.Frontend {
	case options.FrontendTerminal:
		return terminal.New(logger, d).Run(ctx)
	default:
		return gui.New(logger, d, opts.Scale).Run(ctx)
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8go", log.String("version", buildinfo.Version(version, commit, date)))
}
