package app

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sqribble/internal/canvas"
	"github.com/example/sqribble/internal/clipboard"
	"github.com/example/sqribble/internal/gallery"
	"github.com/example/sqribble/internal/snapshot"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts is implemented by values that expose key bindings.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// quitEvent is posted to the window to shut the loop down from an action.
type quitEvent struct{}

// wheelStickSample converts one scroll wheel notch into an analog stick
// deflection fed to the depth control.
const wheelStickSample = 500

func (a *App) main(s screen.Screen) {
	sess := a.Session
	cellSize := a.Config.CellSize
	if cellSize <= 0 {
		cellSize = canvas.DefaultCellSize
	}

	width, height := windowWidth, windowHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Sqribble"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	var top, revealed *canvas.Layer
	regen := func() {
		// Fresh layer instances every time so in-flight paints keep
		// reading a consistent buffer.
		nt := canvas.NewLayer()
		nr := canvas.NewLayer()
		canvas.GenerateTopLayer(nt, sess.Mode, sess.Color(), cellSize)
		canvas.GenerateRevealedLayer(nr, sess.Mode, sess.Color(), cellSize)
		top, revealed = nt, nr
	}
	regen()
	mask := canvas.NewMask()
	var history canvas.History

	screenMode := a.Mode
	rightEye := false
	var items []galleryItem
	gallerySel := 0
	var message string
	var messageUntil time.Time

	flash := func(msg string) {
		message = msg
		log.Print(msg)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
		}
	}()

	openGallery := func() {
		entries, err := gallery.List(a.SaveDir)
		if err != nil {
			log.Printf("gallery: %v", err)
			flash("cannot read gallery")
			return
		}
		items = loadGalleryItems(entries)
		gallerySel = 0
		screenMode = ModeGallery
	}

	loadEntry := func(it galleryItem) {
		pix, err := snapshot.Load(it.path)
		if err != nil {
			log.Printf("load: %v", err)
			flash("cannot load " + it.name)
			return
		}
		// A loaded snapshot replaces both layers so scratching it
		// re-reveals the same picture.
		nt := canvas.NewLayer()
		nr := canvas.NewLayer()
		copy(nt.Pix(), pix)
		copy(nr.Pix(), pix)
		top, revealed = nt, nr
		mask.Reset(0xff)
		history.Clear()
		screenMode = ModeCanvas
		flash("loaded " + it.name)
	}

	logicalImage := func() *image.RGBA {
		comp := canvas.NewLayer()
		bottom, over := sess.Layers(revealed, top)
		canvas.Composite(comp, bottom, over, mask)
		img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
		blitDisplay(img, comp.Pix(), canvas.Width, 0, 0)
		return img
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				keyboardAction[sc] = name
			}
		}
	}

	register("undo", shortcutList{{Rune: 'z'}}, func() {
		if !history.Undo(mask) {
			flash("nothing to undo")
		}
	})
	register("redo", shortcutList{{Rune: 'y'}}, func() {
		if !history.Redo(mask) {
			flash("nothing to redo")
		}
	})
	register("clear", shortcutList{{Rune: 'x'}}, func() {
		history.Push(mask)
		mask.Reset(0xff)
		flash("canvas cleared")
	})
	register("style", shortcutList{{Rune: 'b'}}, func() {
		sess.CycleMode()
		regen()
		flash("style: " + sess.Mode.String())
	})
	register("brush", shortcutList{{Rune: 'a'}}, func() {
		sess.CycleBrush()
		flash("brush: " + sess.Brush.String())
	})
	register("grow", shortcutList{{Code: key.CodeUpArrow}}, func() {
		sess.AdjustBrushSize(1)
	})
	register("shrink", shortcutList{{Code: key.CodeDownArrow}}, func() {
		sess.AdjustBrushSize(-1)
	})
	register("nextcolor", shortcutList{{Code: key.CodeRightArrow}}, func() {
		sess.CycleColor(1)
		regen()
		flash("color: " + sess.Color().Name)
	})
	register("prevcolor", shortcutList{{Code: key.CodeLeftArrow}}, func() {
		sess.CycleColor(-1)
		regen()
		flash("color: " + sess.Color().Name)
	})
	register("swap", shortcutList{{Rune: 'v'}}, func() {
		sess.SwapLayers = !sess.SwapLayers
	})
	register("eye", shortcutList{{Rune: 'e'}}, func() {
		rightEye = !rightEye
	})
	register("depthreset", shortcutList{{Rune: 'r'}}, func() {
		sess.ResetDepth()
	})
	register("save", shortcutList{{Rune: 's'}}, func() {
		comp := canvas.NewLayer()
		bottom, over := sess.Layers(revealed, top)
		canvas.Composite(comp, bottom, over, mask)
		path, err := snapshot.Save(a.SaveDir, comp.Pix(), time.Now())
		if err != nil {
			log.Printf("save: %v", err)
			flash("save failed")
			return
		}
		flash("saved " + path)
		if a.Notifier != nil {
			a.Notifier.Save(path)
		}
	})
	register("copy", shortcutList{{Rune: 'c'}}, func() {
		if err := clipboard.WriteImage(logicalImage()); err != nil {
			log.Printf("copy: %v", err)
			flash("copy failed")
			return
		}
		flash("copied to clipboard")
		if a.Notifier != nil {
			a.Notifier.Copy("drawing")
		}
	})
	register("gallery", shortcutList{{Rune: 'g'}}, func() { openGallery() })
	register("help", shortcutList{{Code: key.CodeTab}}, func() {
		if screenMode == ModeInstructions {
			screenMode = ModeCanvas
		} else {
			screenMode = ModeInstructions
		}
	})
	register("quit", shortcutList{{Rune: 'q'}}, func() { w.Send(quitEvent{}) })

	handleShortcut := func(action string) {
		if fn, ok := actions[action]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	cancelPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case quitEvent:
			cancelPaint()
			return
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				cancelPaint()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			bottom, over := sess.Layers(revealed, top)
			st := paintState{
				width:        width,
				height:       height,
				screen:       screenMode,
				bottom:       bottom,
				top:          over,
				mask:         mask.Snapshot(),
				depth:        sess.DepthOffset,
				rightEye:     rightEye,
				status:       statusLine(sess, rightEye),
				message:      message,
				messageUntil: messageUntil,
				gallery:      items,
				gallerySel:   gallerySel,
			}
			select {
			case paintCh <- st:
			default:
				<-paintCh
				paintCh <- st
			}
		case mouse.Event:
			if e.Direction == mouse.DirPress && (e.Button == mouse.ButtonWheelUp || e.Button == mouse.ButtonWheelDown) {
				if screenMode == ModeCanvas {
					sample := float64(wheelStickSample)
					if e.Button == mouse.ButtonWheelUp {
						sample = -sample
					}
					sess.AdjustDepth(sample)
					w.Send(paint.Event{})
				}
				continue
			}
			switch screenMode {
			case ModeInstructions:
				if e.Direction == mouse.DirPress {
					screenMode = ModeCanvas
					w.Send(paint.Event{})
				}
			case ModeGallery:
				if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
					if idx, ok := galleryHit(int(e.X), int(e.Y), len(items)); ok {
						gallerySel = idx
						loadEntry(items[idx])
					}
					w.Send(paint.Event{})
				}
			case ModeCanvas:
				if e.Button != mouse.ButtonLeft && e.Direction != mouse.DirNone {
					continue
				}
				mx := int(e.X) - canvasLeft
				my := int(e.Y) - canvasTop
				switch e.Direction {
				case mouse.DirPress:
					if mx < 0 || mx >= canvas.Width || my < 0 || my >= canvas.Height {
						continue
					}
					history.Push(mask)
					canvas.ApplyBrush(mask, sess.Brush, mx, my, sess.BrushSize)
					sess.BeginStroke(mx, my)
					w.Send(paint.Event{})
				case mouse.DirNone:
					if x0, y0, ok := sess.StrokeTo(mx, my); ok {
						canvas.ApplyBrushLine(mask, sess.Brush, x0, y0, mx, my, sess.BrushSize)
						w.Send(paint.Event{})
					}
				case mouse.DirRelease:
					if x0, y0, ok := sess.StrokeTo(mx, my); ok {
						canvas.ApplyBrushLine(mask, sess.Brush, x0, y0, mx, my, sess.BrushSize)
					}
					sess.EndStroke()
					w.Send(paint.Event{})
				}
			}
		case key.Event:
			if e.Direction == key.DirRelease {
				continue
			}
			action := keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]
			if action == "" {
				action = keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
			}
			if screenMode == ModeInstructions && action != "quit" {
				screenMode = ModeCanvas
				w.Send(paint.Event{})
				continue
			}
			if screenMode == ModeGallery {
				switch {
				case e.Code == key.CodeEscape || action == "gallery":
					screenMode = ModeCanvas
					w.Send(paint.Event{})
				case e.Code == key.CodeLeftArrow && gallerySel > 0:
					gallerySel--
					w.Send(paint.Event{})
				case e.Code == key.CodeRightArrow && gallerySel < len(items)-1:
					gallerySel++
					w.Send(paint.Event{})
				case e.Code == key.CodeReturnEnter && gallerySel < len(items):
					loadEntry(items[gallerySel])
					w.Send(paint.Event{})
				case action == "quit":
					handleShortcut(action)
				}
				continue
			}
			if action != "" {
				handleShortcut(action)
			}
		}
	}
}

func statusLine(sess *canvas.Session, rightEye bool) string {
	eye := "L"
	if rightEye {
		eye = "R"
	}
	return fmt.Sprintf("%s | %s %d | %s | depth %+.1f (%s)",
		sess.Color().Name, sess.Brush, sess.BrushSize, sess.Mode, sess.DepthOffset, eye)
}
