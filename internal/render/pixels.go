package render

import "math"

// GlowPixels returns a diameter×diameter premultiplied RGBA buffer of a white
// disc whose opacity falls linearly from the centre to zero at the rim.
func GlowPixels(diameter int) []byte {
	if diameter <= 0 {
		return nil
	}
	buf := make([]byte, 4*diameter*diameter)
	fillGlowRGBA(buf, diameter)
	return buf
}

// fillGlowRGBA writes the radial falloff into buf, sampling at pixel centres.
func fillGlowRGBA(buf []byte, diameter int) {
	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		dy := float64(y) + 0.5 - r
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - r
			a := 1 - math.Hypot(dx, dy)/r
			if a < 0 {
				a = 0
			}
			v := uint8(a*255 + 0.5)
			base := (y*diameter + x) * 4
			buf[base+0] = v
			buf[base+1] = v
			buf[base+2] = v
			buf[base+3] = v
		}
	}
}
