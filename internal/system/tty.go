//go:build linux

// Package system wraps the console ioctls the framebuffer sink needs so
// the VFD picture is not fought over by the text-mode cursor.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE
)

// SetGraphicsMode switches the active console to KD_GRAPHICS, which
// suppresses the hardware cursor while we own the framebuffer.
func SetGraphicsMode() error { return setConsoleMode(kdGraphics) }

// RestoreTextMode returns the console to KD_TEXT.
func RestoreTextMode() error { return setConsoleMode(kdText) }

func setConsoleMode(mode int) error {
	var lastErr error
	for _, path := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(path, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", path, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", path, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor and ShowCursor write the ANSI cursor escapes to the active
// virtual terminal, covering the gap before the graphics-mode switch
// takes effect.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, path := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write to virtual terminal: %w", lastErr)
}
