//go:build !linux

package system

import "errors"

var errUnsupported = errors.New("console control requires linux")

func SetGraphicsMode() error { return errUnsupported }
func RestoreTextMode() error { return errUnsupported }
func HideCursor() error      { return errUnsupported }
func ShowCursor() error      { return errUnsupported }
