package game

// RGBA is an 8-bit per channel colour with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Hex unpacks 0xRRGGBBAA.
func Hex(hx uint32) RGBA {
	return RGBA{
		R: uint8(hx >> 24),
		G: uint8(hx >> 16),
		B: uint8(hx >> 8),
		A: uint8(hx),
	}
}

// Floats returns the colour as normalized components for vertex upload.
func (c RGBA) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

var Palette = struct {
	Background RGBA
	Foreground RGBA
	Left       RGBA
	Right      RGBA
	Trail      [3]RGBA

	BlockSplit  RGBA
	BlockDelete RGBA
	BlockShrink RGBA
	BlockExpand RGBA
}{
	Background: Hex(0x193b59ff),
	Foreground: Hex(0xf2d2b6ff),
	Left:       Hex(0x55ea46ee),
	Right:      Hex(0xdc143cee),
	Trail: [3]RGBA{
		Hex(0xf2ad9488),
		Hex(0xf2897288),
		Hex(0xbacac088),
	},

	BlockSplit:  Hex(0xffff00ee),
	BlockDelete: Hex(0x000000ff),
	BlockShrink: Hex(0x555555ff),
	BlockExpand: Hex(0x5514eeee),
}
