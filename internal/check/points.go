package check

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FiveMP/FiveMP-API/pkg/mathutil"
)

// Point is one position to classify.
type Point struct {
	ID       string           `json:"id"`
	Position mathutil.Vector3 `json:"position"`
}

// ReadPoints parses CSV rows of "id,x,y,z" or "x,y,z". Rows without an id
// are numbered from 1 by row. Lines starting with '#' are skipped.
func ReadPoints(r io.Reader) ([]Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var points []Point
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("check: read points: %w", err)
		}

		id := strconv.Itoa(row)
		switch len(rec) {
		case 3:
		case 4:
			id, rec = strings.TrimSpace(rec[0]), rec[1:]
		default:
			return nil, fmt.Errorf("check: row %d: want 3 or 4 fields, got %d", row, len(rec))
		}

		var pos [3]mathutil.Float
		for i, field := range rec {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("check: row %d: %w", row, err)
			}
			pos[i] = mathutil.Float(f)
		}

		points = append(points, Point{
			ID:       id,
			Position: mathutil.Vector3{X: pos[0], Y: pos[1], Z: pos[2]},
		})
	}
	return points, nil
}
