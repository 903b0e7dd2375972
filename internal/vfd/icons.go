package vfd

// Icon is a small monochrome bitmap, one row per slice element, one byte
// per pixel (0 = transparent, anything else = lit).
type Icon [][]uint8

// Size returns the icon's width and height in pixels.
func (ic Icon) Size() (w, h int) {
	if len(ic) == 0 {
		return 0, 0
	}
	return len(ic[0]), len(ic)
}

// IconEngine is the ICE node and fuel-bar marker.
var IconEngine = Icon{
	{0, 0, 1, 1, 1, 1, 0, 0, 0},
	{0, 0, 0, 1, 1, 0, 0, 0, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 1, 0, 0, 1, 1, 0, 0},
}

// IconBattery is the traction battery node.
var IconBattery = Icon{
	{0, 1, 1, 0, 0, 0, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// IconWheel is the wheel/output node.
var IconWheel = Icon{
	{0, 1, 1, 1, 1, 1, 0},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{0, 1, 1, 1, 1, 1, 0},
}

// IconLightning marks the MG power bar.
var IconLightning = Icon{
	{0, 0, 1, 1, 0},
	{0, 1, 1, 0, 0},
	{1, 1, 1, 1, 0},
	{0, 0, 1, 1, 0},
	{0, 1, 1, 0, 0},
	{0, 1, 0, 0, 0},
	{1, 0, 0, 0, 0},
}
