// Package snapshot reads and writes the canvas snapshot file format: an
// uncompressed 24-bit BMP, 320x240, rows stored bottom to top with pixels
// in B,G,R order. The pixel payload is copied byte for byte from the
// display-layout composite buffer, so saved files round-trip exactly.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/example/sqribble/internal/canvas"
)

const (
	// FilePrefix and FileExt frame the timestamped snapshot filenames.
	FilePrefix = "sqribble_"
	FileExt    = ".bmp"

	fileHeaderSize = 14
	infoHeaderSize = 40
	dataOffset     = fileHeaderSize + infoHeaderSize
	pixelBytes     = canvas.Width * canvas.Height * 3
)

// Filename derives a snapshot filename from the given time.
func Filename(t time.Time) string {
	return FilePrefix + t.Format("20060102_150405") + FileExt
}

// Encode writes pix, a display-layout W*H*3 composite buffer, to w in the
// snapshot BMP layout.
func Encode(w io.Writer, pix []uint8) error {
	if len(pix) != pixelBytes {
		return fmt.Errorf("composite buffer is %d bytes, want %d", len(pix), pixelBytes)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("BM")
	le := func(v uint32) { binary.Write(bw, binary.LittleEndian, v) }
	le16 := func(v uint16) { binary.Write(bw, binary.LittleEndian, v) }

	le(uint32(dataOffset + pixelBytes)) // file size
	le(0)                               // reserved
	le(uint32(dataOffset))

	le(infoHeaderSize)
	le(uint32(canvas.Width))
	le(uint32(canvas.Height))
	le16(1)  // planes
	le16(24) // bits per pixel
	le(0)    // compression: none
	le(0)    // image size, optional when uncompressed
	le(0)    // x pixels per meter
	le(0)    // y pixels per meter
	le(0)    // palette colors
	le(0)    // important colors

	// BMP rows run bottom to top and the buffer is already B,G,R, so each
	// pixel is copied straight through DisplayIndex. Row stride is 320*3,
	// a multiple of four, so no padding is needed.
	for y := canvas.Height - 1; y >= 0; y-- {
		for x := 0; x < canvas.Width; x++ {
			i := canvas.DisplayIndex(x, y) * 3
			bw.Write(pix[i : i+3])
		}
	}
	return bw.Flush()
}

// Save writes pix to a timestamped file under dir and returns the path.
// The file is created, written and closed within this call; on failure no
// retry is attempted.
func Save(dir string, pix []uint8, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := Encode(f, pix); err != nil {
		f.Close()
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}

// Decode parses a snapshot BMP from r and returns the pixel payload in
// display layout. Files that are not uncompressed 24-bit BMPs of exactly
// the canvas dimensions are rejected.
func Decode(r io.Reader) ([]uint8, error) {
	var header [dataOffset]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if header[0] != 'B' || header[1] != 'M' {
		return nil, fmt.Errorf("not a BMP file")
	}
	offset := binary.LittleEndian.Uint32(header[10:14])
	width := int32(binary.LittleEndian.Uint32(header[18:22]))
	height := int32(binary.LittleEndian.Uint32(header[22:26]))
	bpp := binary.LittleEndian.Uint16(header[28:30])
	compression := binary.LittleEndian.Uint32(header[30:34])

	if bpp != 24 || compression != 0 {
		return nil, fmt.Errorf("unsupported BMP variant: %d bpp, compression %d", bpp, compression)
	}
	if width != canvas.Width || height != canvas.Height {
		return nil, fmt.Errorf("snapshot is %dx%d, want %dx%d", width, height, canvas.Width, canvas.Height)
	}
	if offset > dataOffset {
		if _, err := io.CopyN(io.Discard, r, int64(offset-dataOffset)); err != nil {
			return nil, fmt.Errorf("skip to pixel data: %w", err)
		}
	}

	pix := make([]uint8, pixelBytes)
	row := make([]uint8, canvas.Width*3)
	for y := canvas.Height - 1; y >= 0; y-- {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("read pixel row %d: %w", y, err)
		}
		for x := 0; x < canvas.Width; x++ {
			copy(pix[canvas.DisplayIndex(x, y)*3:], row[x*3:x*3+3])
		}
	}
	return pix, nil
}

// Load reads the snapshot at path. On any validation failure the returned
// error leaves the caller's canvas state untouched.
func Load(path string) ([]uint8, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	pix, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pix, nil
}
