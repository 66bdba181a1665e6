// Package imageio reads carriers from disk and writes marked images back
// without lossy compression.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var (
	ErrUnreadable  = errors.New("unreadable image")
	ErrLossyFormat = errors.New("lossy output format")
)

// Load opens and decodes the image at path. It returns the decoded image
// and the name of its format.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return img, format, nil
}

// FormatOf maps a file extension to an output format name.
func FormatOf(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return ext
	}
}

// Encode writes img in a lossless format: png, bmp or tiff.
// Lossy formats are refused with ErrLossyFormat since they would erase the mark.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "jpeg", "webp", "gif":
		return fmt.Errorf("%w: %s", ErrLossyFormat, format)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// Save encodes img into path, choosing the format from the extension.
// The file is written under a temporary name and renamed once complete.
func Save(path string, img image.Image) (err error) {
	format := FormatOf(path)
	if format == "jpeg" || format == "webp" || format == "gif" {
		return fmt.Errorf("%w: %s", ErrLossyFormat, format)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", name, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", name, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", name, defErr)
		}
		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", name, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = Encode(outFile, img, format); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", strings.ToUpper(format), name, err)
	}
	canRename = true
	return nil
}

// FitBlocks scales img up to the next multiple of size in both directions.
// Images that already fit are returned as they are.
func FitBlocks(img image.Image, size int) image.Image {
	b := img.Bounds()
	w := (b.Dx() + size - 1) / size * size
	h := (b.Dy() + size - 1) / size * size
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dest := image.NewRGBA64(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, b, draw.Src, nil)
	return dest
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
