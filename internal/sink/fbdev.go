//go:build linux

package sink

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"sync"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/render"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/system"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// FBDev blits frames to a Linux framebuffer device. The binary grid is
// rasterized in phosphor colors and scaled to the largest rectangle that
// fits the panel while keeping the pixel aspect.
type FBDev struct {
	device string
	log    Logger

	mu   sync.Mutex
	dev  *fb.Device
	dest image.Rectangle
}

func NewFBDev(device string, log Logger) *FBDev {
	return &FBDev{device: device, log: log}
}

// Start opens the framebuffer device and switches the console to
// graphics mode so the text cursor stays out of the picture. An open
// failure is fatal to startup.
func (s *FBDev) Start(ctx context.Context) error {
	dev, err := fb.Open(s.device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", s.device, err)
	}
	s.dev = dev

	bounds := dev.Bounds()
	s.dest = fitRect(bounds, vfd.Width, vfd.Height)
	s.log.Infof("fbdev", "opened %s, panel %dx%d, display rect %v",
		s.device, bounds.Dx(), bounds.Dy(), s.dest)

	if err := system.SetGraphicsMode(); err != nil {
		s.log.Warnf("fbdev", "console graphics mode: %v", err)
	}
	if err := system.HideCursor(); err != nil {
		s.log.Warnf("fbdev", "hide cursor: %v", err)
	}

	draw.Draw(dev, bounds, &image.Uniform{C: render.ColorFrame}, image.Point{}, draw.Src)
	return nil
}

func (s *FBDev) Present(fb *vfd.Framebuffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return
	}
	img := render.Rasterize(fb)
	xdraw.NearestNeighbor.Scale(s.dev, s.dest, img, img.Bounds(), xdraw.Src, nil)
}

func (s *FBDev) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (s *FBDev) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return nil
	}
	if err := system.ShowCursor(); err != nil {
		s.log.Warnf("fbdev", "show cursor: %v", err)
	}
	if err := system.RestoreTextMode(); err != nil {
		s.log.Warnf("fbdev", "console text mode: %v", err)
	}
	s.dev.Close()
	s.dev = nil
	return nil
}

// fitRect returns the largest centered rectangle inside bounds with the
// grid's aspect ratio, preferring whole pixel multiples.
func fitRect(bounds image.Rectangle, gridW, gridH int) image.Rectangle {
	scaleX := bounds.Dx() / gridW
	scaleY := bounds.Dy() / gridH
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale < 1 {
		scale = 1
	}
	w := gridW * scale
	h := gridH * scale
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
