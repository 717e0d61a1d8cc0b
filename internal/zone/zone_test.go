package zone

import (
	"testing"

	"github.com/FiveMP/FiveMP-API/pkg/mathutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec3 = mathutil.Vector3
type vec2 = mathutil.Vector2

func testSet() *Set {
	return &Set{Zones: []Zone{
		{Name: "plaza", Kind: KindCircle, Center: vec3{X: 0, Y: 0}, Radius: 10},
		{Name: "tower", Kind: KindTube, Center: vec3{X: 20, Y: 0, Z: 5}, Radius: 3, Height: 50},
		{Name: "dome", Kind: KindBall, Center: vec3{X: 0, Y: 20, Z: 0}, Radius: 4},
		{Name: "lot", Kind: KindArea, Min: vec3{X: -5, Y: -5}, Max: vec3{X: 5, Y: 5}},
		{Name: "vault", Kind: KindCuboid, Min: vec3{X: 30, Y: 30, Z: 0}, Max: vec3{X: 40, Y: 35, Z: 3}},
		{Name: "park", Kind: KindPolygon, Points: []vec2{{X: -30, Y: -30}, {X: -20, Y: -30}, {X: -25, Y: -20}}},
	}}
}

func TestContainsMatchesPrimitives(t *testing.T) {
	set := testSet()
	points := []vec3{
		{X: 0, Y: 0, Z: 0}, {X: 9, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0},
		{X: 20, Y: 1, Z: 5}, {X: 20, Y: 1, Z: 55}, {X: 20, Y: 1, Z: 56},
		{X: 0, Y: 21, Z: 1}, {X: 0, Y: 20, Z: 5},
		{X: 5, Y: 5, Z: 100}, {X: 35, Y: 32, Z: 3}, {X: 35, Y: 32, Z: 3.5},
		{X: -25, Y: -25, Z: 0}, {X: -29, Y: -21, Z: 0},
	}

	for _, p := range points {
		for i := range set.Zones {
			z := &set.Zones[i]
			got, err := z.Contains(p)
			require.NoError(t, err)

			var want bool
			switch z.Kind {
			case KindCircle:
				want = mathutil.IsPointInCircle(z.Center.X, z.Center.Y, z.Radius, p.X, p.Y)
			case KindTube:
				want = mathutil.IsPointInTube(z.Center.X, z.Center.Y, z.Center.Z, z.Height, z.Radius, p.X, p.Y, p.Z)
			case KindBall:
				want = mathutil.IsPointInBall(z.Center.X, z.Center.Y, z.Center.Z, z.Radius, p.X, p.Y, p.Z)
			case KindArea:
				want = mathutil.IsPointInArea(z.Min.X, z.Min.Y, z.Max.X, z.Max.Y, p.X, p.Y)
			case KindCuboid:
				want = mathutil.IsPointInCuboid(z.Min.X, z.Min.Y, z.Min.Z, z.Max.X, z.Max.Y, z.Max.Z, p.X, p.Y, p.Z)
			case KindPolygon:
				want, err = mathutil.IsPointInPolygon(z.Points, p.X, p.Y)
				require.NoError(t, err)
			}
			assert.Equal(t, want, got, "%s at %v", z.Name, p)
		}
	}
}

func TestRotatedCuboid(t *testing.T) {
	z := Zone{
		Name:     "gate",
		Kind:     KindCuboid,
		Min:      vec3{X: -2, Y: -1, Z: 0},
		Max:      vec3{X: 2, Y: 1, Z: 2},
		Rotation: vec3{Z: 90},
	}

	in, err := z.Contains(vec3{X: 0, Y: 1.5, Z: 1})
	require.NoError(t, err)
	assert.True(t, in, "long side now runs along Y")

	in, err = z.Contains(vec3{X: 1.5, Y: 0, Z: 1})
	require.NoError(t, err)
	assert.False(t, in, "X extent shrank to the short side")

	lo, hi := z.Bounds()
	assert.LessOrEqual(t, lo.Y, mathutil.Float(-2))
	assert.GreaterOrEqual(t, hi.Y, mathutil.Float(2))
}

func TestZoneValidate(t *testing.T) {
	cases := []struct {
		name string
		zone Zone
	}{
		{"zero radius", Zone{Kind: KindCircle}},
		{"negative ball", Zone{Kind: KindBall, Radius: -1}},
		{"negative height", Zone{Kind: KindTube, Radius: 1, Height: -1}},
		{"inverted area", Zone{Kind: KindArea, Min: vec3{X: 1}, Max: vec3{X: 0}}},
		{"inverted cuboid", Zone{Kind: KindCuboid, Min: vec3{Z: 1}, Max: vec3{Z: 0}}},
	}
	for _, c := range cases {
		assert.Error(t, c.zone.Validate(), c.name)
	}

	poly := Zone{Kind: KindPolygon, Points: []vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	assert.ErrorIs(t, poly.Validate(), mathutil.ErrPolygonTooSmall)

	odd := Zone{Kind: "hexagon"}
	assert.ErrorIs(t, odd.Validate(), ErrUnknownKind)
	_, err := odd.Contains(vec3{})
	assert.ErrorIs(t, err, ErrUnknownKind)

	for i := range testSet().Zones {
		assert.NoError(t, testSet().Zones[i].Validate())
	}
}

func TestPolygonContainsTooSmall(t *testing.T) {
	z := Zone{Name: "line", Kind: KindPolygon, Points: []vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	_, err := z.Contains(vec3{})
	assert.ErrorIs(t, err, mathutil.ErrPolygonTooSmall)

	set := &Set{Zones: []Zone{z}}
	_, err = set.Locate(vec3{})
	assert.ErrorIs(t, err, mathutil.ErrPolygonTooSmall)
}
