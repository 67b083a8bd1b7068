package canvas

// Depth offset bounds and stick conversion constants.
const (
	MinDepthOffset     = -10.0
	MaxDepthOffset     = 15.0
	DefaultDepthOffset = 3.0

	// stickDeadzone ignores small analog values so the depth does not
	// drift; stickScale converts raw stick units to depth per frame.
	stickDeadzone = 20
	stickScale    = 1000.0

	DefaultBrushSize = 5
)

// Session holds all mutable drawing configuration for one running canvas:
// selected color, pattern mode, brush, depth offset, layer order and the
// pointer tracking used for stroke interpolation. It is owned by the
// application loop and passed into component calls; there are no package
// globals behind it.
type Session struct {
	ColorIndex  int
	Mode        Mode
	Brush       BrushShape
	BrushSize   int
	DepthOffset float64

	// SwapLayers flips which layer the compositor treats as bottom.
	SwapLayers bool

	lastX, lastY int
	tracking     bool
}

// SessionOption modifies a Session during creation.
type SessionOption func(*Session)

// WithMode sets the initial canvas mode.
func WithMode(m Mode) SessionOption { return func(s *Session) { s.Mode = m } }

// WithColorIndex sets the initial palette index, clamped into range.
func WithColorIndex(idx int) SessionOption {
	return func(s *Session) { s.ColorIndex = clampInt(idx, 0, PaletteLen()-1) }
}

// WithBrush sets the initial brush shape.
func WithBrush(b BrushShape) SessionOption { return func(s *Session) { s.Brush = b } }

// WithBrushSize sets the initial brush radius, clamped into range.
func WithBrushSize(r int) SessionOption {
	return func(s *Session) { s.BrushSize = clampInt(r, MinBrushSize, MaxBrushSize) }
}

// NewSession creates a Session with the application defaults.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		Mode:        ModeCheckerOnWhite,
		Brush:       BrushCircle,
		BrushSize:   DefaultBrushSize,
		DepthOffset: DefaultDepthOffset,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Color returns the currently selected palette entry.
func (s *Session) Color() PaletteColor {
	return PaletteColorAt(s.ColorIndex)
}

// CycleColor advances the palette selection by delta, wrapping.
func (s *Session) CycleColor(delta int) {
	n := PaletteLen()
	s.ColorIndex = ((s.ColorIndex+delta)%n + n) % n
}

// CycleMode advances to the next canvas mode.
func (s *Session) CycleMode() {
	s.Mode = s.Mode.Next()
}

// CycleBrush advances to the next brush shape.
func (s *Session) CycleBrush() {
	s.Brush = s.Brush.Next()
}

// AdjustBrushSize grows or shrinks the brush radius within its bounds.
func (s *Session) AdjustBrushSize(delta int) {
	s.BrushSize = clampInt(s.BrushSize+delta, MinBrushSize, MaxBrushSize)
}

// AdjustDepth feeds one analog stick sample into the depth offset:
// offset += -stickY/stickScale, with a deadzone below stickDeadzone and the
// result clamped to [MinDepthOffset, MaxDepthOffset].
func (s *Session) AdjustDepth(stickY float64) {
	if stickY > -stickDeadzone && stickY < stickDeadzone {
		return
	}
	s.DepthOffset += -stickY / stickScale
	if s.DepthOffset < MinDepthOffset {
		s.DepthOffset = MinDepthOffset
	}
	if s.DepthOffset > MaxDepthOffset {
		s.DepthOffset = MaxDepthOffset
	}
}

// ResetDepth restores the default depth offset, as on canvas clear.
func (s *Session) ResetDepth() {
	s.DepthOffset = DefaultDepthOffset
}

// Layers orders the two color layers for the compositor, honoring the swap
// toggle. revealed is the layer under the mask, top the one over it.
func (s *Session) Layers(revealed, top *Layer) (bottom, over *Layer) {
	if s.SwapLayers {
		return top, revealed
	}
	return revealed, top
}

// BeginStroke starts pointer tracking at the first sample of a gesture.
func (s *Session) BeginStroke(x, y int) {
	s.lastX, s.lastY = x, y
	s.tracking = true
}

// StrokeTo reports the segment from the previous sample to (x, y) and
// advances the tracking point. ok is false when no gesture is in progress,
// in which case the caller should begin one instead.
func (s *Session) StrokeTo(x, y int) (x0, y0 int, ok bool) {
	if !s.tracking {
		return 0, 0, false
	}
	x0, y0 = s.lastX, s.lastY
	s.lastX, s.lastY = x, y
	return x0, y0, true
}

// EndStroke forgets the tracked pointer when the gesture ends.
func (s *Session) EndStroke() {
	s.tracking = false
}

// Tracking reports whether a stroke gesture is in progress.
func (s *Session) Tracking() bool { return s.tracking }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
