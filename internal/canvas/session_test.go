package canvas

import (
	"math"
	"testing"
)

func TestSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.Mode != ModeCheckerOnWhite || s.Brush != BrushCircle {
		t.Fatalf("unexpected defaults: mode %v brush %v", s.Mode, s.Brush)
	}
	if s.BrushSize != DefaultBrushSize || s.DepthOffset != DefaultDepthOffset {
		t.Fatalf("unexpected defaults: size %d depth %v", s.BrushSize, s.DepthOffset)
	}
}

func TestSessionOptionsClamp(t *testing.T) {
	s := NewSession(WithColorIndex(99), WithBrushSize(500))
	if s.ColorIndex != PaletteLen()-1 {
		t.Fatalf("color index not clamped: %d", s.ColorIndex)
	}
	if s.BrushSize != MaxBrushSize {
		t.Fatalf("brush size not clamped: %d", s.BrushSize)
	}
}

func TestCycleColorWraps(t *testing.T) {
	s := NewSession()
	s.CycleColor(-1)
	if s.ColorIndex != PaletteLen()-1 {
		t.Fatalf("backwards wrap: %d", s.ColorIndex)
	}
	s.CycleColor(1)
	if s.ColorIndex != 0 {
		t.Fatalf("forwards wrap: %d", s.ColorIndex)
	}
}

func TestAdjustBrushSizeBounds(t *testing.T) {
	s := NewSession()
	for i := 0; i < 100; i++ {
		s.AdjustBrushSize(1)
	}
	if s.BrushSize != MaxBrushSize {
		t.Fatalf("grow past max: %d", s.BrushSize)
	}
	for i := 0; i < 100; i++ {
		s.AdjustBrushSize(-1)
	}
	if s.BrushSize != MinBrushSize {
		t.Fatalf("shrink past min: %d", s.BrushSize)
	}
}

func TestAdjustDepthDeadzone(t *testing.T) {
	s := NewSession()
	s.AdjustDepth(10)
	s.AdjustDepth(-19)
	if s.DepthOffset != DefaultDepthOffset {
		t.Fatalf("deadzone leaked: %v", s.DepthOffset)
	}
}

func TestAdjustDepthScaleAndClamp(t *testing.T) {
	s := NewSession()
	s.AdjustDepth(-500)
	want := DefaultDepthOffset + 0.5
	if math.Abs(s.DepthOffset-want) > 1e-9 {
		t.Fatalf("depth after one sample = %v, want %v", s.DepthOffset, want)
	}
	for i := 0; i < 100; i++ {
		s.AdjustDepth(-1000)
	}
	if s.DepthOffset != MaxDepthOffset {
		t.Fatalf("depth not clamped high: %v", s.DepthOffset)
	}
	for i := 0; i < 100; i++ {
		s.AdjustDepth(1000)
	}
	if s.DepthOffset != MinDepthOffset {
		t.Fatalf("depth not clamped low: %v", s.DepthOffset)
	}
}

func TestStrokeTracking(t *testing.T) {
	s := NewSession()
	if _, _, ok := s.StrokeTo(5, 5); ok {
		t.Fatal("stroke segment reported before gesture start")
	}
	s.BeginStroke(10, 20)
	x0, y0, ok := s.StrokeTo(30, 40)
	if !ok || x0 != 10 || y0 != 20 {
		t.Fatalf("first segment = (%d,%d,%v)", x0, y0, ok)
	}
	x0, y0, _ = s.StrokeTo(50, 60)
	if x0 != 30 || y0 != 40 {
		t.Fatalf("tracking point not advanced: (%d,%d)", x0, y0)
	}
	s.EndStroke()
	if _, _, ok := s.StrokeTo(1, 1); ok {
		t.Fatal("stroke segment reported after gesture end")
	}
}
