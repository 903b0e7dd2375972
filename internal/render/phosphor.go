package render

import (
	"image"
	"image/color"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/vfd"
)

// VFD phosphor palette shared by every presentation sink.
var (
	ColorOn    = color.RGBA{R: 0x00, G: 0xFF, B: 0xC8, A: 0xFF} // lit cyan-green
	ColorOff   = color.RGBA{R: 0x00, G: 0x14, B: 0x0F, A: 0xFF} // unlit glass
	ColorFrame = color.RGBA{R: 0x50, G: 0x50, B: 0x5A, A: 0xFF} // bezel
)

// Rasterize converts the binary grid into a 1:1 RGBA image in phosphor
// colors. Sinks scale it to whatever their output needs.
func Rasterize(fb *vfd.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) {
				img.SetRGBA(x, y, ColorOn)
			} else {
				img.SetRGBA(x, y, ColorOff)
			}
		}
	}
	return img
}
