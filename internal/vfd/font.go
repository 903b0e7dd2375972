package vfd

// 3x5 bitmap font. Each glyph is five rows of three column bits, MSB on
// the left. The set is deliberately tiny: digits, sign characters and the
// handful of letters the dashboard labels need.
var font3x5 = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b010, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'O': {0b111, 0b101, 0b101, 0b101, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'G': {0b111, 0b100, 0b101, 0b101, 0b111},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
}

// glyph advance: 3 pixel columns plus 1 spacing column.
const charAdvance = 4

// Char draws a single 3x5 glyph at (x, y). Unknown characters draw
// nothing but still occupy their cell.
func (r *Region) Char(x, y int, ch rune, on bool) {
	rows, ok := font3x5[upper(ch)]
	if !ok {
		return
	}
	for rowIdx, row := range rows {
		for col := 0; col < 3; col++ {
			if row&(1<<(2-col)) != 0 {
				r.Set(x+col, y+rowIdx, on)
			}
		}
	}
}

// Text draws a string in the 3x5 font and returns the x position after the
// last glyph so callers can continue a line.
func (r *Region) Text(x, y int, text string, on bool) int {
	cursor := x
	for _, ch := range text {
		r.Char(cursor, y, ch, on)
		cursor += charAdvance
	}
	return cursor
}

// TextXOR draws a string in the 3x5 font inverting every glyph pixel, so
// the text stays readable on top of filled areas.
func (r *Region) TextXOR(x, y int, text string) int {
	cursor := x
	for _, ch := range text {
		if rows, ok := font3x5[upper(ch)]; ok {
			for rowIdx, row := range rows {
				for col := 0; col < 3; col++ {
					if row&(1<<(2-col)) != 0 {
						r.Xor(cursor+col, y+rowIdx)
					}
				}
			}
		}
		cursor += charAdvance
	}
	return cursor
}

// TextWidth returns the pixel width of a string in the 3x5 font, without
// the trailing spacing column.
func TextWidth(text string) int {
	n := 0
	for range text {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*charAdvance - 1
}

func upper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
