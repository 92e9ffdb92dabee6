// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8go/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8go [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)

	if err := validateFrontend(opts.Frontend); err != nil {
		return err
	}

	if opts.Rate < 0 {
		return fmt.Errorf("instruction rate can not be negative: %d", opts.Rate)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1: %d", opts.Scale)
	}
	return nil
}

func validateFrontend(frontend string) error {
	validFrontends := []string{options.FrontendSDL, options.FrontendTerminal}
	for _, valid := range validFrontends {
		if frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		frontend, strings.Join(validFrontends, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendSDL, "display frontend to use (sdl/terminal)")
	flags.IntVar(&opts.Rate, "rate", options.DefaultInstructionRate, "CPU speed in instructions per second, 0 starts paused")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixel scale factor for the sdl frontend")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.ShiftSourceY, "quirk-shift-y", false, "shift instructions operate on VY instead of VX")
	flags.BoolVar(&opts.IndexIncrement, "quirk-index", false, "register store/load instructions increment the index register")
	flags.BoolVar(&opts.JumpVX, "quirk-jump-vx", false, "jump with offset uses VX instead of V0")
	flags.BoolVar(&opts.ClipSprites, "quirk-clip", false, "clip sprites at the display edge instead of wrapping")
}
