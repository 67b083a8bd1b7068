// Package gallery lists saved snapshots and prepares thumbnails for the
// gallery screen.
package gallery

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"

	"github.com/example/sqribble/internal/snapshot"
)

// Entry describes one saved snapshot on disk.
type Entry struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// List returns the snapshots under dir, newest first. A missing directory
// yields an empty list, not an error.
func List(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot dir: %w", err)
	}

	var entries []Entry
	for _, item := range items {
		name := item.Name()
		if item.IsDir() || !strings.HasPrefix(name, snapshot.FilePrefix) || !strings.HasSuffix(name, snapshot.FileExt) {
			continue
		}
		info, err := item.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Path:    filepath.Join(dir, name),
			Name:    name,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ModTime.Equal(entries[j].ModTime) {
			return entries[i].Name > entries[j].Name
		}
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}

// Thumbnail decodes the snapshot at path and scales it to w x h. Decoding
// goes through the registered image formats, so anything the BMP decoder
// accepts renders a preview; strict validation happens only when a
// snapshot is loaded back onto the canvas.
func Thumbnail(path string, w, h int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open thumbnail source: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
