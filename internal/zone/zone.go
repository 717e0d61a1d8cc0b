package zone

import (
	"errors"
	"fmt"

	"github.com/FiveMP/FiveMP-API/pkg/mathutil"
)

// Kind names the primitive a zone is made of.
type Kind string

const (
	KindCircle  Kind = "circle"
	KindTube    Kind = "tube"
	KindBall    Kind = "ball"
	KindArea    Kind = "area"
	KindCuboid  Kind = "cuboid"
	KindPolygon Kind = "polygon"
)

var ErrUnknownKind = errors.New("zone: unknown kind")

// Zone is one named region. Which fields are read depends on Kind:
//
//	circle, tube, ball: Center, Radius (tube also Height, Center.Z is the base)
//	area, cuboid:       Min, Max (cuboid also Rotation, in degrees)
//	polygon:            Points
type Zone struct {
	Name     string             `json:"name" yaml:"name"`
	Kind     Kind               `json:"kind" yaml:"kind"`
	Center   mathutil.Vector3   `json:"center" yaml:"center"`
	Radius   mathutil.Float     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Height   mathutil.Float     `json:"height,omitempty" yaml:"height,omitempty"`
	Min      mathutil.Vector3   `json:"min" yaml:"min"`
	Max      mathutil.Vector3   `json:"max" yaml:"max"`
	Rotation mathutil.Vector3   `json:"rotation" yaml:"rotation"`
	Points   []mathutil.Vector2 `json:"points,omitempty" yaml:"points,omitempty"`
}

// Contains reports whether p lies inside the zone. 2D kinds ignore p.Z.
func (z *Zone) Contains(p mathutil.Vector3) (bool, error) {
	switch z.Kind {
	case KindCircle:
		return mathutil.IsPointInCircle(z.Center.X, z.Center.Y, z.Radius, p.X, p.Y), nil
	case KindTube:
		return mathutil.IsPointInTube(z.Center.X, z.Center.Y, z.Center.Z, z.Height, z.Radius, p.X, p.Y, p.Z), nil
	case KindBall:
		return mathutil.IsPointInBall(z.Center.X, z.Center.Y, z.Center.Z, z.Radius, p.X, p.Y, p.Z), nil
	case KindArea:
		return mathutil.IsPointInArea(z.Min.X, z.Min.Y, z.Max.X, z.Max.Y, p.X, p.Y), nil
	case KindCuboid:
		if !z.Rotation.IsNull() {
			p = z.toLocal(p)
		}
		return mathutil.IsPointInCuboid(z.Min.X, z.Min.Y, z.Min.Z, z.Max.X, z.Max.Y, z.Max.Z, p.X, p.Y, p.Z), nil
	case KindPolygon:
		return mathutil.IsPointInPolygon(z.Points, p.X, p.Y)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownKind, z.Kind)
}

// toLocal undoes the cuboid rotation around its centre so the axis-aligned
// test can be applied.
func (z *Zone) toLocal(p mathutil.Vector3) mathutil.Vector3 {
	c := mathutil.LerpVector(z.Min, 0.5, z.Max)
	inv := mathutil.RotationMatrix(z.Rotation).Transpose()
	return inv.MulVector3(p.Sub(c)).Add(c)
}

// Validate checks the fields required by the zone's kind.
func (z *Zone) Validate() error {
	switch z.Kind {
	case KindCircle, KindBall:
		if z.Radius <= 0 {
			return fmt.Errorf("radius must be positive, got %v", z.Radius)
		}
	case KindTube:
		if z.Radius <= 0 {
			return fmt.Errorf("radius must be positive, got %v", z.Radius)
		}
		if z.Height < 0 {
			return fmt.Errorf("height must not be negative, got %v", z.Height)
		}
	case KindArea:
		if z.Min.X > z.Max.X || z.Min.Y > z.Max.Y {
			return fmt.Errorf("min %v exceeds max %v", z.Min.XY(), z.Max.XY())
		}
	case KindCuboid:
		if z.Min.X > z.Max.X || z.Min.Y > z.Max.Y || z.Min.Z > z.Max.Z {
			return fmt.Errorf("min %v exceeds max %v", z.Min, z.Max)
		}
	case KindPolygon:
		if len(z.Points) < 3 {
			return mathutil.ErrPolygonTooSmall
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, z.Kind)
	}
	return nil
}

// Bounds returns the zone's footprint on the XY plane.
func (z *Zone) Bounds() (lo, hi mathutil.Vector2) {
	switch z.Kind {
	case KindCircle, KindTube, KindBall:
		r := mathutil.Vector2{X: z.Radius, Y: z.Radius}
		c := z.Center.XY()
		return c.Sub(r), c.Add(r)
	case KindArea:
		return z.Min.XY(), z.Max.XY()
	case KindCuboid:
		if z.Rotation.IsNull() {
			return z.Min.XY(), z.Max.XY()
		}
		// any rotation stays inside the circumscribed sphere
		c := mathutil.LerpVector(z.Min, 0.5, z.Max)
		h := c.DistanceTo(z.Max)
		r := mathutil.Vector2{X: h, Y: h}
		return c.XY().Sub(r), c.XY().Add(r)
	case KindPolygon:
		if len(z.Points) == 0 {
			return
		}
		lo, hi = z.Points[0], z.Points[0]
		for _, p := range z.Points[1:] {
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
		return lo, hi
	}
	return
}
