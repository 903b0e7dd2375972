package vfd

import "testing"

func TestOutOfBoundsWritesAreNoOps(t *testing.T) {
	fb := New()
	full := fb.Full()
	full.Set(-1, 0, true)
	full.Set(0, -1, true)
	full.Set(Width, 0, true)
	full.Set(0, Height, true)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if fb.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) lit by out-of-bounds write", x, y)
			}
		}
	}
	if fb.Pixel(-1, -1) || fb.Pixel(Width, Height) {
		t.Error("out-of-bounds read returned true")
	}
}

func TestRegionClipsWrites(t *testing.T) {
	fb := New()
	r := fb.Region(64, 0, 64, 48)

	r.Set(0, 0, true)
	r.Set(63, 47, true)
	r.Set(-1, 0, true)  // would be absolute x=63, outside the region
	r.Set(64, 0, true)  // would be absolute x=128
	r.FillRect(60, 44, 10, 10, true) // spills past both edges

	if !fb.Pixel(64, 0) || !fb.Pixel(127, 47) {
		t.Error("in-region writes did not land")
	}
	if fb.Pixel(63, 0) || fb.Pixel(128, 0) {
		t.Error("region wrote outside its rectangle")
	}
	// The clipped fill must not leak right of the region boundary.
	for y := 44; y < 48; y++ {
		if fb.Pixel(128, y) {
			t.Errorf("fill leaked to absolute x=128, y=%d", y)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	fb := NewSize(16, 16)
	r := fb.Full()
	r.Line(1, 1, 12, 9, true)

	if !fb.Pixel(1, 1) || !fb.Pixel(12, 9) {
		t.Error("line endpoints not set")
	}
}

func TestRectAndFill(t *testing.T) {
	fb := NewSize(16, 16)
	r := fb.Full()

	r.Rect(2, 2, 6, 5, true)
	if !fb.Pixel(2, 2) || !fb.Pixel(7, 2) || !fb.Pixel(2, 6) || !fb.Pixel(7, 6) {
		t.Error("rect corners missing")
	}
	if fb.Pixel(4, 4) {
		t.Error("rect outline filled its interior")
	}

	fb.Clear()
	r.FillRect(2, 2, 3, 3, true)
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if !fb.Pixel(x, y) {
				t.Errorf("fill missed (%d,%d)", x, y)
			}
		}
	}
}

func TestTextAdvanceAndGlyphs(t *testing.T) {
	fb := NewSize(32, 8)
	r := fb.Full()

	end := r.Text(0, 0, "10", true)
	if end != 8 {
		t.Errorf("cursor after two glyphs = %d, want 8", end)
	}
	// '1' top row is 0b010: only the middle column lit.
	if fb.Pixel(0, 0) || !fb.Pixel(1, 0) || fb.Pixel(2, 0) {
		t.Error("glyph '1' top row wrong")
	}
	// '0' top row is 0b111 at x offset 4.
	if !fb.Pixel(4, 0) || !fb.Pixel(5, 0) || !fb.Pixel(6, 0) {
		t.Error("glyph '0' top row wrong")
	}
	// Lowercase maps to the same glyph as uppercase.
	fb.Clear()
	r.Text(0, 0, "p", true)
	lower := fb.Pixel(0, 0)
	fb.Clear()
	r.Text(0, 0, "P", true)
	if lower != fb.Pixel(0, 0) {
		t.Error("case folding broken")
	}
}

func TestTextXORInverts(t *testing.T) {
	fb := NewSize(16, 8)
	r := fb.Full()

	// On an empty background XOR behaves like a normal draw.
	r.TextXOR(0, 0, "8")
	if !fb.Pixel(0, 0) {
		t.Error("xor draw on empty background did not set pixels")
	}
	// Drawing the same glyph again inverts it back to empty.
	r.TextXOR(0, 0, "8")
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			if fb.Pixel(x, y) {
				t.Fatalf("double XOR left pixel (%d,%d) lit", x, y)
			}
		}
	}
}

func TestIconCentered(t *testing.T) {
	fb := NewSize(32, 32)
	r := fb.Full()
	r.IconCentered(16, 16, IconWheel, true)

	w, h := IconWheel.Size()
	if w != 7 || h != 7 {
		t.Fatalf("IconWheel size = %dx%d", w, h)
	}
	// Center pixel of the wheel bitmap is set.
	if !fb.Pixel(16, 16) {
		t.Error("center of centered icon not lit")
	}
}
