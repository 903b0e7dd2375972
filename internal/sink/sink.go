// Package sink contains the presentation sinks that put the finished
// framebuffer in front of someone: the Linux framebuffer device on the
// real dashboard, an ebiten window during development, or nothing at all
// for headless runs.
package sink

import (
	"context"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// Logger is the slice of the application logger the sinks need.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Warnf(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Null discards every frame. Used headless and in tests.
type Null struct{}

func (Null) Start(ctx context.Context) error { return nil }
func (Null) Present(fb *vfd.Framebuffer)     {}
func (Null) Stop() error                     { return nil }

func (Null) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
