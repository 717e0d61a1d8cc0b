package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"

	"github.com/FiveMP/FiveMP-API/internal/zone"
	"github.com/FiveMP/FiveMP-API/pkg/mathutil"

	"golang.org/x/sync/errgroup"
)

var ErrEmptySet = errors.New("plot: zone set is empty")

// Palette colors zones by their index in the set, wrapping around.
var Palette = []color.NRGBA{
	{230, 25, 75, 255},
	{60, 180, 75, 255},
	{0, 130, 200, 255},
	{245, 130, 48, 255},
	{145, 30, 180, 255},
	{70, 240, 240, 255},
	{240, 50, 230, 255},
	{210, 245, 60, 255},
}

// Options controls a top-down render.
type Options struct {
	Size        int            // output edge length in pixels
	Supersample int            // samples per output pixel along each axis
	Z           mathutil.Float // height of the horizontal slice
	Padding     mathutil.Float // world units added around the zones
	Workers     int
}

// Render draws a square top-down view of the set's footprint sliced at
// opts.Z. Each pixel takes the color of the last zone containing its centre;
// pixels outside every zone stay transparent. World +Y points up the image.
func Render(set *zone.Set, opts Options) (*image.NRGBA, error) {
	lo, hi, ok := set.Bounds()
	if !ok {
		return nil, ErrEmptySet
	}
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.Supersample <= 0 {
		opts.Supersample = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	pad := mathutil.Vector2{X: opts.Padding, Y: opts.Padding}
	lo, hi = lo.Sub(pad), hi.Add(pad)
	extent := max(hi.X-lo.X, hi.Y-lo.Y)
	if extent <= 0 {
		extent = 1
	}
	half := mathutil.Vector2{X: extent / 2, Y: extent / 2}
	origin := mathutil.LerpVector(lo, 0.5, hi).Sub(half)

	n := opts.Size * opts.Supersample
	step := extent / mathutil.Float(n)
	img := image.NewNRGBA(image.Rect(0, 0, n, n))

	g := errgroup.Group{}
	g.SetLimit(opts.Workers)
	for py := 0; py < n; py++ {
		g.Go(func() error {
			wy := origin.Y + extent - (mathutil.Float(py)+0.5)*step
			for px := 0; px < n; px++ {
				wx := origin.X + (mathutil.Float(px)+0.5)*step
				idx, err := topZone(set, mathutil.Vector3{X: wx, Y: wy, Z: opts.Z})
				if err != nil {
					return err
				}
				if idx >= 0 {
					img.SetNRGBA(px, py, Palette[idx%len(Palette)])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size, opts.Size)
	}
	return img, nil
}

// topZone returns the index of the last zone containing p, or -1.
func topZone(set *zone.Set, p mathutil.Vector3) (int, error) {
	idx := -1
	for i := range set.Zones {
		in, err := set.Zones[i].Contains(p)
		if err != nil {
			return -1, fmt.Errorf("plot: %q: %w", set.Zones[i].Name, err)
		}
		if in {
			idx = i
		}
	}
	return idx, nil
}
