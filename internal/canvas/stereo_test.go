package canvas

import "testing"

func eyeAt(dst []uint8, x, y int) (r, g, b uint8) {
	i := (x*Height + (Height - 1 - y)) * 3
	return dst[i+2], dst[i+1], dst[i]
}

func TestProjectCentersWithMargins(t *testing.T) {
	comp := NewLayer()
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			comp.setRGB(x, y, 200, 150, 100)
		}
	}
	m := NewMask()
	m.Reset(0) // nothing shifts

	dst := make([]uint8, ScreenWidth*Height*3)
	Project(dst, comp, m, ParallaxShift(5))

	for _, x := range []int{0, Margin - 1, Margin + Width, ScreenWidth - 1} {
		if r, g, b := eyeAt(dst, x, 120); r != 0 || g != 0 || b != 0 {
			t.Fatalf("margin column %d not black: (%d,%d,%d)", x, r, g, b)
		}
	}
	for _, x := range []int{Margin, Margin + Width/2, Margin + Width - 1} {
		if r, g, b := eyeAt(dst, x, 120); r != 200 || g != 150 || b != 100 {
			t.Fatalf("canvas column %d = (%d,%d,%d), want source color", x, r, g, b)
		}
	}
}

func TestProjectParallaxShiftsOpaqueOnly(t *testing.T) {
	comp := NewLayer()
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			comp.setRGB(x, y, 200, 150, 100)
		}
	}
	m := NewMask() // fully opaque
	// Scratch a region so it stays unshifted.
	ApplyBrush(m, BrushSquare, 100, 100, 10)

	const offset = 7
	dst := make([]uint8, ScreenWidth*Height*3)
	Project(dst, comp, m, ParallaxShift(offset))

	// An opaque source column lands offset pixels to the right.
	if r, _, _ := eyeAt(dst, Margin+0+offset, 10); r != 200 {
		t.Fatal("opaque pixel not shifted by depth offset")
	}
	// Scratched pixels land unshifted.
	if r, _, _ := eyeAt(dst, Margin+100, 100); r != 200 {
		t.Fatal("scratched pixel displaced")
	}
}

func TestProjectLeftEyeUnshifted(t *testing.T) {
	comp := NewLayer()
	comp.setRGB(0, 0, 99, 98, 97)
	m := NewMask()

	dst := make([]uint8, ScreenWidth*Height*3)
	Project(dst, comp, m, ZeroShift)
	if r, g, b := eyeAt(dst, Margin, 0); r != 99 || g != 98 || b != 97 {
		t.Fatalf("left eye displaced pixel: (%d,%d,%d)", r, g, b)
	}
}

func TestProjectClipsShiftedPixels(t *testing.T) {
	comp := NewLayer()
	for y := 0; y < Height; y++ {
		comp.setRGB(Width-1, y, 250, 0, 0)
	}
	m := NewMask() // opaque, everything shifts

	// Shift far enough that the rightmost columns leave the screen.
	offset := Margin + 10
	dst := make([]uint8, ScreenWidth*Height*3)
	Project(dst, comp, m, ParallaxShift(offset))

	// Destination x would be Margin+Width-1+offset >= ScreenWidth: dropped,
	// and no wraparound appears at the left edge.
	for x := 0; x < Margin; x++ {
		if r, _, _ := eyeAt(dst, x, 50); r != 0 {
			t.Fatalf("clipped pixel wrapped to column %d", x)
		}
	}
}

func TestParallaxShiftThreshold(t *testing.T) {
	rule := ParallaxShift(4)
	if got := rule(0, 0, ParallaxThreshold); got != 0 {
		t.Fatalf("alpha at threshold shifted by %d", got)
	}
	if got := rule(0, 0, ParallaxThreshold+1); got != 4 {
		t.Fatalf("opaque alpha shifted by %d, want 4", got)
	}
}
