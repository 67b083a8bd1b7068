package app

import (
	"image"
	"strings"
	"testing"

	"github.com/example/sqribble/internal/canvas"
)

func TestBlitDisplayConvertsBGR(t *testing.T) {
	layer := canvas.NewLayer()
	pix := layer.Pix()
	// One red pixel at logical (3, 7). Layer storage is B, G, R.
	i := canvas.DisplayIndex(3, 7) * 3
	pix[i] = 0
	pix[i+1] = 0
	pix[i+2] = 0xff

	dst := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	blitDisplay(dst, pix, canvas.Width, 0, 0)

	r, g, b, a := dst.At(3, 7).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || b>>8 != 0 || a>>8 != 0xff {
		t.Errorf("got RGBA %d,%d,%d,%d want 255,0,0,255", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestBlitDisplayOffsetAndClip(t *testing.T) {
	layer := canvas.NewLayer()
	for i := range layer.Pix() {
		layer.Pix()[i] = 0x80
	}

	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	// Offset pushes most of the canvas outside the destination. Must not
	// panic and must fill the overlapping region.
	blitDisplay(dst, layer.Pix(), canvas.Width, 40, 40)

	if _, g, _, _ := dst.At(45, 45).RGBA(); g>>8 != 0x80 {
		t.Errorf("overlap pixel not written, green=%d", g>>8)
	}
	if _, g, _, _ := dst.At(10, 10).RGBA(); g>>8 != 0 {
		t.Errorf("pixel outside blit region was written, green=%d", g>>8)
	}
}

func TestGalleryHit(t *testing.T) {
	left := galleryLeft()
	tests := []struct {
		name    string
		x, y, n int
		idx     int
		ok      bool
	}{
		{"first cell", left + 10, galleryTop + 10, 5, 0, true},
		{"second column", left + galleryCellW + 10, galleryTop + 10, 5, 1, true},
		{"second row", left + 10, galleryTop + galleryCellH + 10, 5, 3, true},
		{"beyond count", left + 2*galleryCellW + 10, galleryTop + galleryCellH + 10, 5, 0, false},
		{"left of grid", left - 5, galleryTop + 10, 5, 0, false},
		{"above grid", left + 10, galleryTop - 5, 5, 0, false},
	}
	for _, tc := range tests {
		idx, ok := galleryHit(tc.x, tc.y, tc.n)
		if ok != tc.ok || (ok && idx != tc.idx) {
			t.Errorf("%s: galleryHit(%d,%d,%d) = %d,%v want %d,%v", tc.name, tc.x, tc.y, tc.n, idx, ok, tc.idx, tc.ok)
		}
	}
}

func TestStatusLine(t *testing.T) {
	sess := canvas.NewSession()
	line := statusLine(sess, false)
	for _, want := range []string{sess.Color().Name, "circle", "(L)"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
	if line := statusLine(sess, true); !strings.Contains(line, "(R)") {
		t.Errorf("status %q missing right eye marker", line)
	}
}

func TestWindowLayout(t *testing.T) {
	if windowWidth != canvas.ScreenWidth {
		t.Errorf("window width %d does not match stereo view width %d", windowWidth, canvas.ScreenWidth)
	}
	if canvasTop <= statusTop {
		t.Errorf("canvas region overlaps status strip: canvasTop=%d statusTop=%d", canvasTop, statusTop)
	}
	if canvasLeft+canvas.Width > windowWidth {
		t.Errorf("canvas does not fit window: left=%d width=%d window=%d", canvasLeft, canvas.Width, windowWidth)
	}
}
