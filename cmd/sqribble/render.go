package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/sqribble/internal/canvas"
	"github.com/example/sqribble/internal/snapshot"
)

// timeNow is swapped out by tests that need deterministic filenames.
var timeNow = time.Now

// renderCmd composites the two layers headlessly and writes the result as
// a snapshot BMP. Operands are scratch strokes, each "x0,y0[,x1,y1]".
type renderCmd struct {
	output    string
	stdout    bool
	mode      string
	color     int
	brush     string
	brushSize int
	cellSize  int
	strokes   []stroke
	*root
	fs *flag.FlagSet
}

type stroke struct {
	x0, y0, x1, y1 int
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "write the BMP to this path instead of a timestamped file")
	fs.BoolVar(&c.stdout, "stdout", false, "write BMP data to stdout")
	fs.StringVar(&c.mode, "mode", r.config.CanvasMode.String(), "canvas style: checker-black, checker-white, solid-white, or solid-black")
	fs.IntVar(&c.color, "color", 0, "palette index of the hidden color")
	fs.StringVar(&c.brush, "brush", r.config.BrushShape.String(), "brush shape: circle, square, or soft")
	fs.IntVar(&c.brushSize, "size", r.config.BrushSize, "brush radius in pixels")
	fs.IntVar(&c.cellSize, "cell", r.config.CellSize, "checkerboard cell size in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.stdout && c.output != "" {
		return nil, fmt.Errorf("-stdout cannot be used with -output")
	}
	for _, arg := range fs.Args() {
		st, err := parseStroke(arg)
		if err != nil {
			return nil, err
		}
		c.strokes = append(c.strokes, st)
	}
	return c, nil
}

func parseStroke(val string) (stroke, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 2 && len(parts) != 4 {
		return stroke{}, fmt.Errorf("invalid stroke %q: want x0,y0 or x0,y0,x1,y1", val)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return stroke{}, fmt.Errorf("invalid stroke %q: %w", val, err)
		}
		nums[i] = v
	}
	st := stroke{x0: nums[0], y0: nums[1], x1: nums[0], y1: nums[1]}
	if len(nums) == 4 {
		st.x1, st.y1 = nums[2], nums[3]
	}
	return st, nil
}

func (c *renderCmd) Run() error {
	mode, err := canvas.ParseMode(c.mode)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	brush, err := canvas.ParseBrushShape(c.brush)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	sess := canvas.NewSession(
		canvas.WithMode(mode),
		canvas.WithColorIndex(c.color),
		canvas.WithBrush(brush),
		canvas.WithBrushSize(c.brushSize),
	)
	cell := c.cellSize
	if cell <= 0 {
		cell = canvas.DefaultCellSize
	}

	top := canvas.NewLayer()
	revealed := canvas.NewLayer()
	canvas.GenerateTopLayer(top, sess.Mode, sess.Color(), cell)
	canvas.GenerateRevealedLayer(revealed, sess.Mode, sess.Color(), cell)

	mask := canvas.NewMask()
	for _, st := range c.strokes {
		canvas.ApplyBrush(mask, sess.Brush, st.x0, st.y0, sess.BrushSize)
		canvas.ApplyBrushLine(mask, sess.Brush, st.x0, st.y0, st.x1, st.y1, sess.BrushSize)
	}

	comp := canvas.NewLayer()
	bottom, over := sess.Layers(revealed, top)
	canvas.Composite(comp, bottom, over, mask)

	if c.stdout {
		if err := snapshot.Encode(os.Stdout, comp.Pix()); err != nil {
			return fmt.Errorf("write BMP to stdout: %w", err)
		}
		fmt.Fprintln(os.Stderr, "wrote BMP data to stdout")
		return nil
	}
	var saved string
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("create output %q: %w", c.output, err)
		}
		var w io.Writer = f
		if err := snapshot.Encode(w, comp.Pix()); err != nil {
			if cerr := f.Close(); cerr != nil {
				log.Printf("close %s: %v", c.output, cerr)
			}
			return fmt.Errorf("write BMP to %q: %w", c.output, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %q: %w", c.output, err)
		}
		saved = c.output
	} else {
		saved, err = snapshot.Save(c.root.saveDir, comp.Pix(), timeNow())
		if err != nil {
			return err
		}
	}
	if abs, err := filepath.Abs(saved); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	c.root.notifySave(saved)
	return nil
}
