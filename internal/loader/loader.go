// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8go/internal/chip8"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a ROM file and validates that it fits into machine memory.
// ROM files are raw binary images without a header.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a ROM image from a reader and validates its size.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte past the limit to detect oversized images without
	// buffering arbitrarily large files
	rom, err := io.ReadAll(io.LimitReader(reader, chip8.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}

	if len(rom) > chip8.MaxROMSize {
		return nil, chip8.ROMTooLargeError{Size: len(rom), Max: chip8.MaxROMSize}
	}
	return rom, nil
}
