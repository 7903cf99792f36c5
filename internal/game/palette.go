package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// BlockPalette is the pool new blocks draw their colour from, uniformly
// at random.
var BlockPalette = [...]RGB{
	{R: 235, G: 91, B: 91},
	{R: 242, G: 166, B: 74},
	{R: 247, G: 220, B: 93},
	{R: 120, G: 204, B: 110},
	{R: 86, G: 186, B: 196},
	{R: 96, G: 132, B: 230},
	{R: 164, G: 108, B: 225},
	{R: 230, G: 118, B: 186},
}

var Palette = struct {
	Background    RGB
	GridLine      RGB
	Cursor        RGB
	CursorBlocked RGB
	Bone          RGB
	Joint         RGB
	Fingertip     RGB
	HeldGlow      RGB
}{
	Background:    RGB{R: 24, G: 26, B: 33},
	GridLine:      RGB{R: 58, G: 62, B: 76},
	Cursor:        RGB{R: 120, G: 200, B: 255},
	CursorBlocked: RGB{R: 255, G: 110, B: 90},
	Bone:          RGB{R: 150, G: 160, B: 180},
	Joint:         RGB{R: 220, G: 226, B: 238},
	Fingertip:     RGB{R: 255, G: 240, B: 160},
	HeldGlow:      RGB{R: 255, G: 255, B: 210},
}
