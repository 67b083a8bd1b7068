package canvas

import "testing"

func TestDisplayIndexTransform(t *testing.T) {
	if got := DisplayIndex(0, Height-1); got != 0 {
		t.Fatalf("DisplayIndex(0,%d) = %d, want 0", Height-1, got)
	}
	if got := DisplayIndex(0, 0); got != Height-1 {
		t.Fatalf("DisplayIndex(0,0) = %d, want %d", got, Height-1)
	}
	if got := DisplayIndex(Width-1, 0); got != Width*Height-1 {
		t.Fatalf("DisplayIndex(%d,0) = %d, want %d", Width-1, got, Width*Height-1)
	}
}

func TestGenerateTopLayerChecker(t *testing.T) {
	l := NewLayer()
	col := PaletteColorAt(0)
	GenerateTopLayer(l, ModeCheckerOnWhite, col, DefaultCellSize)

	// Cell (0,0) is even, so it carries the white background; cell (1,0)
	// carries the palette color.
	if r, g, b := l.RGBAt(5, 5); r != 255 || g != 255 || b != 255 {
		t.Fatalf("background cell = (%d,%d,%d), want white", r, g, b)
	}
	if r, g, b := l.RGBAt(DefaultCellSize+5, 5); r != col.R || g != col.G || b != col.B {
		t.Fatalf("colored cell = (%d,%d,%d), want %+v", r, g, b, col)
	}

	GenerateTopLayer(l, ModeCheckerOnBlack, col, DefaultCellSize)
	if r, g, b := l.RGBAt(5, 5); r != 0 || g != 0 || b != 0 {
		t.Fatalf("black-mode background cell = (%d,%d,%d), want black", r, g, b)
	}
}

func TestGenerateSolidModes(t *testing.T) {
	top := NewLayer()
	revealed := NewLayer()
	col := PaletteColorAt(3)

	GenerateTopLayer(top, ModeSolidOnWhite, col, DefaultCellSize)
	GenerateRevealedLayer(revealed, ModeSolidOnWhite, col, DefaultCellSize)
	if r, g, b := top.RGBAt(100, 100); r != 255 || g != 255 || b != 255 {
		t.Fatalf("solid-white top = (%d,%d,%d), want white", r, g, b)
	}
	if r, g, b := revealed.RGBAt(100, 100); r != col.R || g != col.G || b != col.B {
		t.Fatalf("solid revealed = (%d,%d,%d), want %+v", r, g, b, col)
	}

	GenerateTopLayer(top, ModeSolidOnBlack, col, DefaultCellSize)
	if r, g, b := top.RGBAt(100, 100); r != 20 || g != 20 || b != 20 {
		t.Fatalf("solid-black top = (%d,%d,%d), want dark gray", r, g, b)
	}
}

func TestRevealedLayerIsRotated(t *testing.T) {
	top := NewLayer()
	revealed := NewLayer()
	col := PaletteColorAt(0)
	GenerateTopLayer(top, ModeCheckerOnWhite, col, DefaultCellSize)
	GenerateRevealedLayer(revealed, ModeCheckerOnWhite, col, DefaultCellSize)

	// The hidden checkerboard samples the cell test at (y, W-1-x).
	for _, pt := range [][2]int{{0, 0}, {37, 5}, {150, 120}, {319, 239}} {
		x, y := pt[0], pt[1]
		rotX, rotY := y, Width-1-x
		wr, wg, wb := checkerAt(rotX, rotY, ModeCheckerOnWhite, col, DefaultCellSize)
		if r, g, b := revealed.RGBAt(x, y); r != wr || g != wg || b != wb {
			t.Fatalf("revealed(%d,%d) = (%d,%d,%d), want rotated cell (%d,%d,%d)",
				x, y, r, g, b, wr, wg, wb)
		}
	}
}

func TestGenerateWritesEveryPixel(t *testing.T) {
	l := &Layer{pix: make([]uint8, Width*Height*3)}
	for i := range l.pix {
		l.pix[i] = 0xAA
	}
	GenerateTopLayer(l, ModeCheckerOnWhite, PaletteColorAt(4), DefaultCellSize)
	// ModeCheckerOnWhite never emits the 0xAA sentinel in all three
	// channels at once, so any survivor means a missed pixel.
	col := PaletteColorAt(4)
	for i := 0; i < Width*Height; i++ {
		b, g, r := l.pix[i*3], l.pix[i*3+1], l.pix[i*3+2]
		white := r == 255 && g == 255 && b == 255
		colored := r == col.R && g == col.G && b == col.B
		if !white && !colored {
			t.Fatalf("pixel index %d not written: (%d,%d,%d)", i, r, g, b)
		}
	}
}

func TestModeCycleAndParse(t *testing.T) {
	m := ModeCheckerOnBlack
	seen := map[Mode]bool{}
	for i := 0; i < numModes; i++ {
		seen[m] = true
		m = m.Next()
	}
	if m != ModeCheckerOnBlack || len(seen) != numModes {
		t.Fatalf("mode cycle broken: back at %v after %d seen", m, len(seen))
	}
	for mode := range seen {
		got, err := ParseMode(mode.String())
		if err != nil || got != mode {
			t.Fatalf("ParseMode(%q) = %v, %v", mode, got, err)
		}
	}
	if _, err := ParseMode("plaid"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
