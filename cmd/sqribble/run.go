package main

import (
	"flag"
	"fmt"

	"github.com/example/sqribble/internal/app"
	"github.com/example/sqribble/internal/canvas"
)

type runCmd struct {
	mode      string
	color     int
	brush     string
	brushSize int
	skipHelp  bool
	*root
	fs *flag.FlagSet
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.mode, "mode", r.config.CanvasMode.String(), "canvas style: checker-black, checker-white, solid-white, or solid-black")
	fs.IntVar(&c.color, "color", 0, "palette index of the hidden color")
	fs.StringVar(&c.brush, "brush", r.config.BrushShape.String(), "brush shape: circle, square, or soft")
	fs.IntVar(&c.brushSize, "size", r.config.BrushSize, "brush radius in pixels")
	fs.BoolVar(&c.skipHelp, "skip-help", false, "start directly on the canvas instead of the instructions screen")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *runCmd) Run() error {
	mode, err := canvas.ParseMode(c.mode)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	brush, err := canvas.ParseBrushShape(c.brush)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	sess := canvas.NewSession(
		canvas.WithMode(mode),
		canvas.WithColorIndex(c.color),
		canvas.WithBrush(brush),
		canvas.WithBrushSize(c.brushSize),
	)
	startMode := app.ModeInstructions
	if c.skipHelp {
		startMode = app.ModeCanvas
	}
	a := app.New(
		app.WithConfig(c.root.config),
		app.WithSession(sess),
		app.WithNotifier(c.root.notifier),
		app.WithSaveDir(c.root.saveDir),
		app.WithMode(startMode),
	)
	a.Run()
	return nil
}
