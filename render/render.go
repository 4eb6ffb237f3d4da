// Package render turns a finished maze into a raster image, one pixel per
// cell: walls are black and paths are white.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding supported by Encode.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var (
	// ErrUnknownFormat indicates an image format other than png, bmp or tiff.
	ErrUnknownFormat = errors.New("render: unknown image format")

	wallColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	pathColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Source is the read-only view of a maze the renderer needs.
type Source interface {
	Width() int
	Height() int
	Cell(x, y int) maze.CellType
}

// ParseFormat maps a format name (case-insensitive, "tif" allowed) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to PNG
// when the path has none.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// Image draws src at one pixel per cell.
func Image(src Source) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, src.Width(), src.Height()))
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if src.Cell(x, y) == maze.Path {
				img.SetRGBA(x, y, pathColor)
			} else {
				img.SetRGBA(x, y, wallColor)
			}
		}
	}
	return img
}

// Encode draws src and writes it to w in format f.
func Encode(w io.Writer, src Source, f Format) error {
	img := Image(src)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Save writes src to path, choosing the format from the file extension.
func Save(path string, src Source) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(file, src, f)
}
