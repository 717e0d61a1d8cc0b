package zone

import (
	"encoding/json"
	"fmt"

	"github.com/FiveMP/FiveMP-API/pkg/mathutil"

	"github.com/cespare/xxhash/v2"
)

// Set is an ordered collection of zones, as stored in a zone file.
type Set struct {
	Zones []Zone `json:"zones" yaml:"zones"`
}

// Validate checks every zone and rejects missing or duplicate names.
func (s *Set) Validate() error {
	seen := make(map[string]int, len(s.Zones))
	for i := range s.Zones {
		z := &s.Zones[i]
		if z.Name == "" {
			return fmt.Errorf("zone: #%d: missing name", i)
		}
		if j, dup := seen[z.Name]; dup {
			return fmt.Errorf("zone: #%d %q: name already used by #%d", i, z.Name, j)
		}
		seen[z.Name] = i
		if err := z.Validate(); err != nil {
			return fmt.Errorf("zone: #%d %q: %w", i, z.Name, err)
		}
	}
	return nil
}

func (s *Set) Lookup(name string) (*Zone, bool) {
	for i := range s.Zones {
		if s.Zones[i].Name == name {
			return &s.Zones[i], true
		}
	}
	return nil, false
}

// Locate returns the names of all zones containing p, in file order.
func (s *Set) Locate(p mathutil.Vector3) ([]string, error) {
	var names []string
	for i := range s.Zones {
		z := &s.Zones[i]
		in, err := z.Contains(p)
		if err != nil {
			return nil, fmt.Errorf("zone: %q: %w", z.Name, err)
		}
		if in {
			names = append(names, z.Name)
		}
	}
	return names, nil
}

// Bounds returns the union of all zone footprints. ok is false for an empty set.
func (s *Set) Bounds() (lo, hi mathutil.Vector2, ok bool) {
	for i := range s.Zones {
		zlo, zhi := s.Zones[i].Bounds()
		if !ok {
			lo, hi, ok = zlo, zhi, true
			continue
		}
		lo.X, lo.Y = min(lo.X, zlo.X), min(lo.Y, zlo.Y)
		hi.X, hi.Y = max(hi.X, zhi.X), max(hi.Y, zhi.Y)
	}
	return lo, hi, ok
}

// Fingerprint hashes the zone definitions. Equal sets give equal fingerprints.
func (s *Set) Fingerprint() (uint64, error) {
	d := xxhash.New()
	if err := json.NewEncoder(d).Encode(s.Zones); err != nil {
		return 0, fmt.Errorf("zone: fingerprint: %w", err)
	}
	return d.Sum64(), nil
}
