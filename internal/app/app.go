// Package app runs the interactive scratch canvas window: a shiny event
// loop that feeds pointer and key events into the drawing core and paints
// the composited, stereo-projected result every frame.
package app

import (
	"sync"

	"golang.org/x/exp/shiny/driver"

	"github.com/example/sqribble/internal/canvas"
	"github.com/example/sqribble/internal/config"
	"github.com/example/sqribble/internal/notify"
)

// Mode is the screen the window is currently showing. The drawing core
// only mutates state while the canvas screen is active.
type Mode int

const (
	// ModeInstructions shows the startup help screen.
	ModeInstructions Mode = iota
	// ModeGallery pages through saved snapshots.
	ModeGallery
	// ModeCanvas is the drawing surface.
	ModeCanvas
)

// Window layout: the stereo view sits above a status strip, with the
// touch canvas centered underneath.
const (
	statusHeight = 24

	windowWidth  = canvas.ScreenWidth
	stereoTop    = 0
	statusTop    = canvas.Height
	canvasTop    = statusTop + statusHeight
	canvasLeft   = canvas.Margin
	windowHeight = canvasTop + canvas.Height
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// App holds the wiring for one interactive session.
type App struct {
	Config   *config.Config
	Session  *canvas.Session
	Notifier *notify.Notifier
	SaveDir  string
	Mode     Mode

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithConfig supplies the loaded configuration.
func WithConfig(cfg *config.Config) Option { return func(a *App) { a.Config = cfg } }

// WithSession supplies a prepared drawing session.
func WithSession(s *canvas.Session) Option { return func(a *App) { a.Session = s } }

// WithNotifier supplies the desktop notifier used after save/copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithSaveDir sets where snapshots are written.
func WithSaveDir(dir string) Option { return func(a *App) { a.SaveDir = dir } }

// WithMode sets the initial screen mode.
func WithMode(m Mode) Option { return func(a *App) { a.Mode = m } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		Config:  config.New(),
		Mode:    ModeInstructions,
		SaveDir: ".",
	}
	for _, o := range opts {
		o(a)
	}
	if a.Session == nil {
		a.Session = canvas.NewSession(
			canvas.WithMode(a.Config.CanvasMode),
			canvas.WithBrush(a.Config.BrushShape),
			canvas.WithBrushSize(a.Config.BrushSize),
		)
	}
	return a
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.main) }
