package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8go/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x12, 0x00, 0xA2, 0x2A}
		tmpFile := createTempFile(t, data)

		loader := New()
		rom, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, data, rom)
	})

	t.Run("load maximum sized ROM", func(t *testing.T) {
		data := make([]byte, chip8.MaxROMSize)
		tmpFile := createTempFile(t, data)

		loader := New()
		rom, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, chip8.MaxROMSize)
	})

	t.Run("error on oversized ROM", func(t *testing.T) {
		data := make([]byte, chip8.MaxROMSize+1)
		tmpFile := createTempFile(t, data)

		loader := New()
		_, err := loader.Load(tmpFile)

		var romErr chip8.ROMTooLargeError
		assert.True(t, errors.As(err, &romErr))
		assert.Equal(t, chip8.MaxROMSize, romErr.Max)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		_, err := loader.Load("/nonexistent/file.ch8")
		assert.Error(t, err)
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("load ROM data", func(t *testing.T) {
		data := []byte{0x60, 0x01, 0x70, 0x02}
		loader := New()

		rom, err := loader.LoadFromReader(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, data, rom)
	})

	t.Run("empty reader", func(t *testing.T) {
		loader := New()

		rom, err := loader.LoadFromReader(bytes.NewReader(nil))
		assert.NoError(t, err)
		assert.Len(t, rom, 0)
	})

	t.Run("error on oversized data", func(t *testing.T) {
		data := make([]byte, chip8.MaxROMSize+100)
		loader := New()

		_, err := loader.LoadFromReader(bytes.NewReader(data))

		var romErr chip8.ROMTooLargeError
		assert.True(t, errors.As(err, &romErr))
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
