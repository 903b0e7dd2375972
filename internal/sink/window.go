package sink

import (
	"context"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/render"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// bezel is the metal frame around the glass, in VFD pixels.
const bezel = 3

// Window shows the display in a desktop window, stand-in for the real
// panel during development. Present is called from the render goroutine;
// the ebiten draw loop picks up the latest frame under the mutex.
type Window struct {
	scale int
	log   Logger

	mu    sync.Mutex
	frame *image.RGBA

	glass *ebiten.Image
}

func NewWindow(scale int, log Logger) *Window {
	if scale < 1 {
		scale = 1
	}
	return &Window{scale: scale, log: log}
}

func (w *Window) Start(ctx context.Context) error { return nil }

func (w *Window) Present(fb *vfd.Framebuffer) {
	img := render.Rasterize(fb)
	w.mu.Lock()
	w.frame = img
	w.mu.Unlock()
}

// Run owns the ebiten event loop; it blocks until the window closes or
// the context is cancelled. Must be called from the main goroutine.
func (w *Window) Run(ctx context.Context) error {
	logicalW := vfd.Width + 2*bezel
	logicalH := vfd.Height + 2*bezel
	ebiten.SetWindowTitle("VFD Satellite Display")
	ebiten.SetWindowSize(logicalW*w.scale, logicalH*w.scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&windowGame{sink: w, ctx: ctx})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (w *Window) Stop() error { return nil }

type windowGame struct {
	sink *Window
	ctx  context.Context
}

func (g *windowGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorFrame)

	w := g.sink
	w.mu.Lock()
	frame := w.frame
	w.mu.Unlock()
	if frame == nil {
		return
	}

	if w.glass == nil {
		w.glass = ebiten.NewImage(vfd.Width, vfd.Height)
	}
	w.glass.WritePixels(frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(bezel, bezel)
	screen.DrawImage(w.glass, op)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return vfd.Width + 2*bezel, vfd.Height + 2*bezel
}
