package app

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sqribble/internal/canvas"
	"github.com/example/sqribble/internal/gallery"
)

var messageFace = basicfont.Face7x13

// Gallery grid geometry. Three columns of thumbnails with labels.
const (
	galleryCols   = 3
	galleryRows   = 4
	galleryThumbW = 96
	galleryThumbH = 72
	galleryCellW  = 128
	galleryCellH  = 100
	galleryTop    = 40
)

func galleryLeft() int { return (windowWidth - galleryCols*galleryCellW) / 2 }

// galleryItem pairs a saved snapshot with its pre-scaled thumbnail.
type galleryItem struct {
	path  string
	name  string
	thumb *image.RGBA
}

func loadGalleryItems(entries []gallery.Entry) []galleryItem {
	max := galleryCols * galleryRows
	if len(entries) > max {
		entries = entries[:max]
	}
	items := make([]galleryItem, 0, len(entries))
	for _, e := range entries {
		thumb, err := gallery.Thumbnail(e.Path, galleryThumbW, galleryThumbH)
		if err != nil {
			log.Printf("thumbnail %s: %v", e.Name, err)
			continue
		}
		items = append(items, galleryItem{path: e.Path, name: e.Name, thumb: thumb})
	}
	return items
}

// galleryHit maps a window coordinate onto a thumbnail index.
func galleryHit(x, y, n int) (int, bool) {
	x -= galleryLeft()
	y -= galleryTop
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / galleryCellW
	row := y / galleryCellH
	if col >= galleryCols || row >= galleryRows {
		return 0, false
	}
	idx := row*galleryCols + col
	if idx >= n {
		return 0, false
	}
	return idx, true
}

type paintState struct {
	width, height int
	screen        Mode
	bottom, top   *canvas.Layer
	mask          []uint8
	depth         float64
	rightEye      bool
	status        string
	message       string
	messageUntil  time.Time
	gallery       []galleryItem
	gallerySel    int
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	rgba := b.RGBA()
	draw.Draw(rgba, rgba.Bounds(), &image.Uniform{color.RGBA{40, 40, 40, 255}}, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	switch st.screen {
	case ModeInstructions:
		drawInstructions(rgba)
	case ModeGallery:
		drawGallery(rgba, st.gallery, st.gallerySel)
	case ModeCanvas:
		drawCanvasScreen(ctx, rgba, st)
	}
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: rgba, Src: image.Black, Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(rgba, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func drawCanvasScreen(ctx context.Context, rgba *image.RGBA, st paintState) {
	mask := canvas.NewMask()
	mask.Restore(st.mask)

	comp := canvas.NewLayer()
	canvas.Composite(comp, st.bottom, st.top, mask)
	if ctx.Err() != nil {
		return
	}

	var rule canvas.ShiftRule = canvas.ZeroShift
	if st.rightEye {
		rule = canvas.ParallaxShift(int(math.Round(st.depth)))
	}
	eye := make([]uint8, canvas.ScreenWidth*canvas.Height*3)
	canvas.Project(eye, comp, mask, rule)
	if ctx.Err() != nil {
		return
	}

	blitDisplay(rgba, eye, canvas.ScreenWidth, 0, stereoTop)

	strip := image.Rect(0, statusTop, windowWidth, canvasTop)
	draw.Draw(rgba, strip, &image.Uniform{color.RGBA{24, 24, 24, 255}}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: rgba, Src: image.White, Face: messageFace}
	d.Dot = fixed.P(6, statusTop+messageFace.Metrics().Ascent.Ceil()+4)
	d.DrawString(st.status)
	if ctx.Err() != nil {
		return
	}

	blitDisplay(rgba, comp.Pix(), canvas.Width, canvasLeft, canvasTop)
}

// blitDisplay copies a display-layout BGR buffer of logical width w onto
// dst at (dstX, dstY), converting each pixel to RGBA. Pixels falling
// outside dst are skipped.
func blitDisplay(dst *image.RGBA, pix []uint8, w, dstX, dstY int) {
	bounds := dst.Bounds()
	for x := 0; x < w; x++ {
		if dstX+x < bounds.Min.X || dstX+x >= bounds.Max.X {
			continue
		}
		for y := 0; y < canvas.Height; y++ {
			if dstY+y < bounds.Min.Y || dstY+y >= bounds.Max.Y {
				continue
			}
			i := (x*canvas.Height + (canvas.Height - 1 - y)) * 3
			o := dst.PixOffset(dstX+x, dstY+y)
			dst.Pix[o] = pix[i+2]
			dst.Pix[o+1] = pix[i+1]
			dst.Pix[o+2] = pix[i]
			dst.Pix[o+3] = 0xff
		}
	}
}

var instructionLines = []string{
	"SQRIBBLE",
	"",
	"Drag the lower canvas to scratch the picture through.",
	"",
	"  Z / Y          undo / redo",
	"  X              clear canvas",
	"  A              cycle brush shape",
	"  B              cycle canvas style",
	"  Up / Down      brush size",
	"  Left / Right   cycle color",
	"  Wheel          3D depth",
	"  R              reset depth",
	"  E              left / right eye view",
	"  V              swap layers",
	"  S              save snapshot",
	"  C              copy to clipboard",
	"  G              gallery",
	"  Tab            toggle this screen",
	"  Q              quit",
	"",
	"Click or press any key to begin.",
}

func drawInstructions(rgba *image.RGBA) {
	d := &font.Drawer{Dst: rgba, Src: image.White, Face: messageFace}
	lineHeight := messageFace.Metrics().Height.Ceil() + 4
	y := 30
	for _, line := range instructionLines {
		d.Dot = fixed.P(24, y)
		d.DrawString(line)
		y += lineHeight
	}
}

func drawGallery(rgba *image.RGBA, items []galleryItem, sel int) {
	d := &font.Drawer{Dst: rgba, Src: image.White, Face: messageFace}
	d.Dot = fixed.P(24, 24)
	if len(items) == 0 {
		d.DrawString("Gallery is empty. Press S on the canvas to save a snapshot.")
		return
	}
	d.DrawString("Gallery: click or Enter to load, Esc to return.")

	for i, it := range items {
		col := i % galleryCols
		row := i / galleryCols
		cx := galleryLeft() + col*galleryCellW
		cy := galleryTop + row*galleryCellH
		tr := image.Rect(cx+(galleryCellW-galleryThumbW)/2, cy,
			cx+(galleryCellW-galleryThumbW)/2+galleryThumbW, cy+galleryThumbH)
		if i == sel {
			border := tr.Inset(-3)
			draw.Draw(rgba, border, &image.Uniform{color.RGBA{255, 215, 0, 255}}, image.Point{}, draw.Src)
		}
		draw.Draw(rgba, tr, it.thumb, it.thumb.Bounds().Min, draw.Src)
		label := it.name
		ld := &font.Drawer{Dst: rgba, Src: image.White, Face: messageFace}
		lw := ld.MeasureString(label).Ceil()
		if lw > galleryCellW {
			// Trim the prefix so the timestamp stays visible.
			for len(label) > 3 && ld.MeasureString("..."+label[1:]).Ceil() > galleryCellW {
				label = label[1:]
			}
			label = "..." + label
			lw = ld.MeasureString(label).Ceil()
		}
		ld.Dot = fixed.P(cx+(galleryCellW-lw)/2, cy+galleryThumbH+14)
		ld.DrawString(label)
	}
}
