package config

import (
	"strings"
	"testing"

	"github.com/example/sqribble/internal/canvas"
)

func TestParse(t *testing.T) {
	input := `
save_dir = /tmp/sqribble
cell_size = 16
canvas_mode = solid-black
brush_shape = soft
brush_size = 12

[notify]
save = true
copy = false
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.SaveDir != "/tmp/sqribble" {
		t.Errorf("Expected save_dir '/tmp/sqribble', got '%s'", cfg.SaveDir)
	}
	if cfg.CellSize != 16 {
		t.Errorf("Expected cell_size 16, got %d", cfg.CellSize)
	}
	if cfg.CanvasMode != canvas.ModeSolidOnBlack {
		t.Errorf("Expected canvas_mode solid-black, got %v", cfg.CanvasMode)
	}
	if cfg.BrushShape != canvas.BrushSoft {
		t.Errorf("Expected brush_shape soft, got %v", cfg.BrushShape)
	}
	if cfg.BrushSize != 12 {
		t.Errorf("Expected brush_size 12, got %d", cfg.BrushSize)
	}
	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# nothing but a comment\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := New()
	if *cfg != *want {
		t.Errorf("empty config did not yield defaults: %+v", cfg)
	}
}

func TestParseClampsBrushSize(t *testing.T) {
	cfg, err := Parse(strings.NewReader("brush_size = 900\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.BrushSize != canvas.MaxBrushSize {
		t.Errorf("brush_size not clamped: %d", cfg.BrushSize)
	}
}

func TestParseRejectsBadMode(t *testing.T) {
	if _, err := Parse(strings.NewReader("canvas_mode = plaid\n")); err == nil {
		t.Fatal("expected error for unknown canvas_mode")
	}
}

func TestCircular(t *testing.T) {
	input := `save_dir = /home/user/pictures
cell_size = 24
canvas_mode = checker-black
brush_shape = square
brush_size = 9

[notify]
save = true
copy = true
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Round-trip parse failed: %v", err)
	}

	if *cfg != *cfg2 {
		t.Errorf("Round trip mismatch:\nfirst:  %+v\nsecond: %+v", cfg, cfg2)
	}
}
