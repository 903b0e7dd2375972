package vfd

// Display dimensions of the actual VFD glass.
const (
	Width  = 256
	Height = 48
)

// Framebuffer is a fixed-size binary pixel grid. Every pixel is strictly
// on or off; there is no shading. Drawing happens through Region sub-views
// so each dashboard component is clipped to its own rectangle.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
}

// New creates a framebuffer with the standard VFD dimensions.
func New() *Framebuffer { return NewSize(Width, Height) }

// NewSize creates a framebuffer with custom dimensions (used by tests).
func NewSize(width, height int) *Framebuffer {
	return &Framebuffer{width: width, height: height, pix: make([]uint8, width*height)}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Clear switches every pixel off.
func (f *Framebuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// Pixel reports whether the pixel at absolute coordinates is lit.
// Out-of-bounds reads return false.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.pix[y*f.width+x] != 0
}

func (f *Framebuffer) set(x, y int, on bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	if on {
		f.pix[y*f.width+x] = 1
	} else {
		f.pix[y*f.width+x] = 0
	}
}

func (f *Framebuffer) xor(x, y int) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] ^= 1
}

// Region returns a clipped sub-view of the framebuffer. Coordinates passed
// to the region's drawing primitives are local to its top-left corner and
// writes outside the rectangle are silently dropped.
func (f *Framebuffer) Region(x, y, w, h int) *Region {
	return &Region{fb: f, x: x, y: y, w: w, h: h}
}

// Full returns a region covering the whole framebuffer.
func (f *Framebuffer) Full() *Region {
	return f.Region(0, 0, f.width, f.height)
}

// Region is a bounded writable view into a Framebuffer. All drawing
// primitives live here; components never touch the framebuffer directly.
type Region struct {
	fb   *Framebuffer
	x, y int
	w, h int
}

func (r *Region) Width() int  { return r.w }
func (r *Region) Height() int { return r.h }

// Set sets a single pixel at region-local coordinates.
func (r *Region) Set(x, y int, on bool) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.fb.set(r.x+x, r.y+y, on)
}

// Pixel reads a pixel at region-local coordinates.
func (r *Region) Pixel(x, y int) bool {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return false
	}
	return r.fb.Pixel(r.x+x, r.y+y)
}

// Xor inverts a single pixel at region-local coordinates.
func (r *Region) Xor(x, y int) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.fb.xor(r.x+x, r.y+y)
}

// Clear switches every pixel of the region off.
func (r *Region) Clear() {
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.Set(x, y, false)
		}
	}
}

// HLine draws a horizontal line starting at (x, y).
func (r *Region) HLine(x, y, length int, on bool) {
	for i := 0; i < length; i++ {
		r.Set(x+i, y, on)
	}
}

// VLine draws a vertical line starting at (x, y).
func (r *Region) VLine(x, y, length int, on bool) {
	for i := 0; i < length; i++ {
		r.Set(x, y+i, on)
	}
}

// Line draws a line between two points using Bresenham stepping.
func (r *Region) Line(x0, y0, x1, y1 int, on bool) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy
	for {
		r.Set(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws a rectangle outline.
func (r *Region) Rect(x, y, w, h int, on bool) {
	r.HLine(x, y, w, on)
	r.HLine(x, y+h-1, w, on)
	r.VLine(x, y, h, on)
	r.VLine(x+w-1, y, h, on)
}

// FillRect fills a rectangle.
func (r *Region) FillRect(x, y, w, h int, on bool) {
	for dy := 0; dy < h; dy++ {
		r.HLine(x, y+dy, w, on)
	}
}

// Icon blits an icon bitmap with its top-left corner at (x, y).
// Only set bits are drawn; the background shows through.
func (r *Region) Icon(x, y int, icon Icon, on bool) {
	for row, bits := range icon {
		for col, p := range bits {
			if p != 0 {
				r.Set(x+col, y+row, on)
			}
		}
	}
}

// IconCentered blits an icon centered on (cx, cy).
func (r *Region) IconCentered(cx, cy int, icon Icon, on bool) {
	w, h := icon.Size()
	r.Icon(cx-w/2, cy-h/2, icon, on)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
