// Package canvas implements the scratch-off drawing surface: two fixed
// color layers, a byte alpha mask mutated by brushes, bounded undo/redo
// history, alpha compositing and stereoscopic projection.
//
// All pixel buffers use the display's native layout: the buffer is the
// logical canvas transposed 90 degrees, so logical pixel (x, y) lives at
// linear index DisplayIndex(x, y). Color buffers store three bytes per
// pixel in B,G,R order. Components that need another orientation or
// channel order convert at their own output boundary.
package canvas

// Logical canvas and display dimensions in pixels.
const (
	Width  = 320
	Height = 240

	// ScreenWidth is the width of the stereo display the eye views are
	// rendered for. The canvas is centered in it with equal margins.
	ScreenWidth = 400
	Margin      = (ScreenWidth - Width) / 2
)

// DisplayIndex maps logical pixel (x, y) to its linear index in a
// display-layout buffer. Every buffer-writing routine must use this same
// transform so the layers, mask and projected output stay aligned.
func DisplayIndex(x, y int) int {
	return x*Height + (Height - 1 - y)
}

// Layer is one full-screen color plane in display layout, three bytes per
// pixel in B,G,R order.
type Layer struct {
	pix []uint8
}

// NewLayer allocates a zeroed color layer.
func NewLayer() *Layer {
	return &Layer{pix: make([]uint8, Width*Height*3)}
}

// Pix returns the raw pixel storage.
func (l *Layer) Pix() []uint8 { return l.pix }

// setRGB writes one logical pixel in the layer's native B,G,R order.
func (l *Layer) setRGB(x, y int, r, g, b uint8) {
	i := DisplayIndex(x, y) * 3
	l.pix[i+0] = b
	l.pix[i+1] = g
	l.pix[i+2] = r
}

// RGBAt reads back one logical pixel.
func (l *Layer) RGBAt(x, y int) (r, g, b uint8) {
	i := DisplayIndex(x, y) * 3
	return l.pix[i+2], l.pix[i+1], l.pix[i+0]
}

// Mask is the scratch mask: one opacity byte per canvas pixel.
// 0 shows the revealed layer, 255 the top layer.
type Mask struct {
	pix []uint8
}

// NewMask returns a mask initialized fully opaque.
func NewMask() *Mask {
	m := &Mask{pix: make([]uint8, Width*Height)}
	m.Reset(0xff)
	return m
}

// Reset fills the whole mask with v.
func (m *Mask) Reset(v uint8) {
	for i := range m.pix {
		m.pix[i] = v
	}
}

// Pix returns the raw mask storage.
func (m *Mask) Pix() []uint8 { return m.pix }

// At returns the opacity of logical pixel (x, y).
func (m *Mask) At(x, y int) uint8 {
	return m.pix[DisplayIndex(x, y)]
}

// Snapshot returns a copy of the mask contents.
func (m *Mask) Snapshot() []uint8 {
	out := make([]uint8, len(m.pix))
	copy(out, m.pix)
	return out
}

// Restore overwrites the mask with a previously taken snapshot.
func (m *Mask) Restore(snap []uint8) {
	copy(m.pix, snap)
}
