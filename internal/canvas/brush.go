package canvas

import (
	"fmt"
	"math"
	"strings"
)

// BrushShape selects how a brush stamp modifies the mask.
type BrushShape int

const (
	// BrushCircle clears a hard-edged disc.
	BrushCircle BrushShape = iota
	// BrushSquare clears the whole bounding box.
	BrushSquare
	// BrushSoft feathers the edge with a quadratic falloff.
	BrushSoft

	numBrushShapes = 3
)

// Brush radius bounds enforced at the point of adjustment.
const (
	MinBrushSize = 1
	MaxBrushSize = 50
)

func (s BrushShape) String() string {
	switch s {
	case BrushCircle:
		return "circle"
	case BrushSquare:
		return "square"
	case BrushSoft:
		return "soft"
	}
	return fmt.Sprintf("brush(%d)", int(s))
}

// ParseBrushShape maps a config or flag value to a BrushShape.
func ParseBrushShape(s string) (BrushShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return BrushCircle, nil
	case "square":
		return BrushSquare, nil
	case "soft":
		return BrushSoft, nil
	}
	return 0, fmt.Errorf("unknown brush shape %q", s)
}

// Next returns the following shape, wrapping around.
func (s BrushShape) Next() BrushShape {
	return (s + 1) % numBrushShapes
}

// ApplyBrush stamps the brush once, centered on logical pixel (cx, cy).
// Centers outside the canvas are a no-op. Within the stamp, x is clamped on
// both sides while negative y is clamped to row zero; the top edge keeps an
// intentional one-pixel overscan so fast strokes along it leave no seam.
func ApplyBrush(m *Mask, shape BrushShape, cx, cy, radius int) {
	if cx < 0 || cx >= Width || cy < 0 || cy >= Height {
		return
	}
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			px := cx + dx
			py := cy + dy
			if px < 0 || px >= Width || py >= Height {
				continue
			}
			if py < 0 {
				py = 0
			}
			idx := DisplayIndex(px, py)

			switch shape {
			case BrushCircle:
				if dx*dx+dy*dy <= radius*radius {
					m.pix[idx] = 0
				}
			case BrushSquare:
				m.pix[idx] = 0
			case BrushSoft:
				dist := math.Sqrt(float64(dx*dx + dy*dy))
				if dist <= float64(radius) {
					falloff := dist / float64(radius)
					falloff *= falloff
					alpha := uint8(math.Round(falloff * 255))
					// Soft stamps only ever lower opacity, so overlapping
					// strokes accumulate instead of healing.
					if cur := m.pix[idx]; cur < alpha {
						alpha = cur
					}
					m.pix[idx] = alpha
				}
			}
		}
	}
}

// ApplyBrushLine stamps the brush at every grid cell on the straight path
// from (x0, y0) to (x1, y1), so a stroke stays gap-free however far apart
// consecutive pointer samples land.
func ApplyBrushLine(m *Mask, shape BrushShape, x0, y0, x1, y1, radius int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		ApplyBrush(m, shape, x0, y0, radius)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
