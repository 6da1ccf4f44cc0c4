package render

import "image/color"

// Palette holds the colours the shells draw with.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Lines color.RGBA
	Hover color.RGBA
}

// DefaultPalette draws white cells on black with white grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:  color.RGBA{A: 255},
		Lines: color.RGBA{R: 255, G: 255, B: 255, A: 96},
		Hover: color.RGBA{R: 255, G: 80, B: 80, A: 255},
	}
}

// fillRGBA converts binary cell data (0/1) into RGBA pixels, one pixel per
// cell. buf is grown when it is too small.
func (p Palette) fillRGBA(buf []byte, cells []uint8) []byte {
	if cap(buf) < 4*len(cells) {
		buf = make([]byte, 4*len(cells))
	}
	buf = buf[:4*len(cells)]
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
	return buf
}
