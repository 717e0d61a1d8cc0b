package mathutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, Float(5), Distance2D(1, 1, 4, 5))
	assert.Equal(t, Float(3), Distance3D(0, 0, 0, 1, 2, 2))
	assert.Equal(t, Float(0), Distance2D(7, 7, 7, 7))
}

func TestIsPointInCircle(t *testing.T) {
	assert.True(t, IsPointInCircle(0, 0, 5, 4, 0))
	assert.False(t, IsPointInCircle(0, 0, 5, 5, 0), "boundary is excluded")
	assert.False(t, IsPointInCircle(0, 0, 5, 4, 4))
	assert.True(t, IsPointInCircle(100, -50, 1, 100.5, -50.5))
}

func TestIsPointInTube(t *testing.T) {
	// base at z=0, 10 high, radius 5
	assert.True(t, IsPointInTube(0, 0, 0, 10, 5, 1, 1, 5))
	assert.True(t, IsPointInTube(0, 0, 0, 10, 5, 1, 1, 0), "lower bound is inclusive")
	assert.True(t, IsPointInTube(0, 0, 0, 10, 5, 1, 1, 10), "upper bound is inclusive")
	assert.False(t, IsPointInTube(0, 0, 0, 10, 5, 1, 1, 10.5))
	assert.False(t, IsPointInTube(0, 0, 0, 10, 5, 1, 1, -0.5))
	assert.False(t, IsPointInTube(0, 0, 0, 10, 5, 5, 0, 5), "side is excluded")
}

func TestIsPointInBall(t *testing.T) {
	assert.True(t, IsPointInBall(0, 0, 0, 3, 1, 2, 1.9))
	assert.False(t, IsPointInBall(0, 0, 0, 3, 1, 2, 2), "surface is excluded")
	assert.False(t, IsPointInBall(10, 10, 10, 1, 0, 0, 0))
}

func TestIsPointInArea(t *testing.T) {
	assert.True(t, IsPointInArea(0, 0, 10, 10, 10, 10), "boundary is included")
	assert.True(t, IsPointInArea(0, 0, 10, 10, 0, 0))
	assert.True(t, IsPointInArea(0, 0, 10, 10, 5, 5))
	assert.False(t, IsPointInArea(0, 0, 10, 10, 10.01, 5))
	assert.False(t, IsPointInArea(0, 0, 10, 10, 5, -0.01))
}

func TestIsPointInCuboid(t *testing.T) {
	assert.True(t, IsPointInCuboid(0, 0, 0, 1, 2, 3, 1, 2, 3))
	assert.True(t, IsPointInCuboid(0, 0, 0, 1, 2, 3, 0.5, 1, 1.5))
	assert.False(t, IsPointInCuboid(0, 0, 0, 1, 2, 3, 0.5, 1, 3.5))
	assert.False(t, IsPointInCuboid(0, 0, 0, 1, 2, 3, -1, 1, 1))
}

func TestContainmentConcurrent(t *testing.T) {
	type query struct {
		x, y, z Float
	}
	queries := make([]query, 0, 400)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			queries = append(queries, query{Float(i) - 10, Float(j) - 10, Float(i+j) / 4})
		}
	}
	square := []Vector2{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}

	classify := func(q query) [5]bool {
		inPoly, _ := IsPointInPolygon(square, q.x, q.y)
		return [5]bool{
			IsPointInCircle(0, 0, 6, q.x, q.y),
			IsPointInTube(0, 0, 0, 4, 6, q.x, q.y, q.z),
			IsPointInBall(0, 0, 0, 7, q.x, q.y, q.z),
			IsPointInCuboid(-3, -3, 0, 3, 3, 3, q.x, q.y, q.z),
			inPoly,
		}
	}

	want := make([][5]bool, len(queries))
	for i, q := range queries {
		want[i] = classify(q)
	}

	const workers = 32
	got := make([][][5]bool, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([][5]bool, len(queries))
			for i, q := range queries {
				out[i] = classify(q)
			}
			got[w] = out
		}(w)
	}
	wg.Wait()

	for w := range got {
		assert.Equal(t, want, got[w], "worker %d", w)
	}
}
