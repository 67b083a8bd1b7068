package config

import (
	"fmt"
	"strings"

	"github.com/example/sqribble/internal/canvas"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	SaveDir    string
	CellSize   int
	CanvasMode canvas.Mode
	BrushShape canvas.BrushShape
	BrushSize  int
	Notify     Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		CellSize:   canvas.DefaultCellSize,
		CanvasMode: canvas.ModeCheckerOnWhite,
		BrushShape: canvas.BrushCircle,
		BrushSize:  canvas.DefaultBrushSize,
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "cell_size = %d\n", c.CellSize)
	fmt.Fprintf(&sb, "canvas_mode = %s\n", c.CanvasMode)
	fmt.Fprintf(&sb, "brush_shape = %s\n", c.BrushShape)
	fmt.Fprintf(&sb, "brush_size = %d\n", c.BrushSize)
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	return sb.String()
}
