package plot

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to w×h with CatmullRom filtering. Filtering runs
// on premultiplied alpha so transparent pixels do not darken zone edges.
// Images already within w×h are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = uint8((uint32(img.Pix[i+c])*a + 127) / 255)
		}
		out.Pix[i+3] = uint8(a)
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		if a > 0 {
			for c := 0; c < 3; c++ {
				out.Pix[i+c] = uint8(min((uint32(img.Pix[i+c])*255+a/2)/a, 255))
			}
		}
		out.Pix[i+3] = uint8(a)
	}
	return out
}
