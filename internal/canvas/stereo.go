package canvas

// ShiftRule decides the horizontal displacement of a projected pixel from
// its logical position and mask opacity. The left eye uses a constant zero;
// the right eye shifts only pixels that are still mostly unscratched, which
// is what makes the intact top layer pop out of the screen.
type ShiftRule func(x, y int, alpha uint8) int

// ParallaxThreshold is the mask opacity above which a pixel counts as
// unscratched for stereo purposes.
const ParallaxThreshold = 128

// ZeroShift leaves every pixel in place.
func ZeroShift(int, int, uint8) int { return 0 }

// ParallaxShift displaces pixels whose opacity exceeds ParallaxThreshold by
// offset pixels, truncated from the session's depth setting.
func ParallaxShift(offset int) ShiftRule {
	return func(_, _ int, alpha uint8) int {
		if alpha > ParallaxThreshold {
			return offset
		}
		return 0
	}
}

// Project renders the composite into a ScreenWidth-wide eye view, centered
// with Margin columns of black border on each side. dst must hold
// ScreenWidth*Height*3 bytes and uses the same display layout as the
// canvas buffers (index = x*Height + (Height-1-y), B,G,R). Pixels whose
// shifted destination falls outside the screen are dropped.
func Project(dst []uint8, composite *Layer, mask *Mask, shift ShiftRule) {
	for i := range dst {
		dst[i] = 0
	}
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			idx := DisplayIndex(x, y)
			dstX := x + Margin + shift(x, y, mask.pix[idx])
			if dstX < 0 || dstX >= ScreenWidth {
				continue
			}
			src := idx * 3
			dstIdx := (dstX*Height + (Height - 1 - y)) * 3
			dst[dstIdx+0] = composite.pix[src+0]
			dst[dstIdx+1] = composite.pix[src+1]
			dst[dstIdx+2] = composite.pix[src+2]
		}
	}
}
