//go:build !linux

package sink

import (
	"context"
	"errors"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// FBDev is only available on Linux; elsewhere Start fails so the CLI can
// tell the user to pick the window sink.
type FBDev struct{}

func NewFBDev(device string, log Logger) *FBDev { return &FBDev{} }

func (s *FBDev) Start(ctx context.Context) error {
	return errors.New("framebuffer sink requires linux")
}
func (s *FBDev) Present(fb *vfd.Framebuffer)   {}
func (s *FBDev) Run(ctx context.Context) error { return nil }
func (s *FBDev) Stop() error                   { return nil }
