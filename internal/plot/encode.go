package plot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image format.
type Format string

const (
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatPNG  Format = "png"
)

func FormatFromPath(path string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")); f {
	case FormatWebP, FormatTGA, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("plot: unsupported image extension: %s", path)
}

func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("plot: unsupported format %q", f)
	}
	if err != nil {
		return fmt.Errorf("plot: %s encode: %w", f, err)
	}
	return nil
}

// WriteFile encodes img in the format implied by path's extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
