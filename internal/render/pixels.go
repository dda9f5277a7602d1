// Package render converts cell buffers into pixels for the viewer.
package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the palette clamp to its last entry; an empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Palette returns k display colors: quiescent black, state 1 white, and
// the remaining states spread around the hue wheel.
func Palette(k int) []color.RGBA {
	if k < 1 {
		k = 1
	}
	p := make([]color.RGBA, k)
	p[0] = color.RGBA{0, 0, 0, 255}
	if k > 1 {
		p[1] = color.RGBA{255, 255, 255, 255}
	}
	for i := 2; i < k; i++ {
		h := float64(i-2) / float64(k-2) * 360
		r, g, b := hueToRGB(h)
		p[i] = color.RGBA{r, g, b, 255}
	}
	return p
}

// hueToRGB maps a hue in degrees to a fully saturated RGB triple.
func hueToRGB(h float64) (uint8, uint8, uint8) {
	seg := h / 60
	x := uint8(255 * (1 - absf(modf(seg, 2)-1)))
	switch int(seg) % 6 {
	case 0:
		return 255, x, 0
	case 1:
		return x, 255, 0
	case 2:
		return 0, 255, x
	case 3:
		return 0, x, 255
	case 4:
		return x, 0, 255
	default:
		return 255, 0, x
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func modf(v, m float64) float64 {
	for v >= m {
		v -= m
	}
	return v
}
