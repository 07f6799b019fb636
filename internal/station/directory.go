// Package station provides the static station table and lookups over it.
package station

import (
	"math"
	"strings"
)

// DefaultSearchLimit is the number of stations Search returns when no limit is given.
const DefaultSearchLimit = 8

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Station is a railway station with the lines serving it.
type Station struct {
	Name  string
	Lat   float64
	Lng   float64
	Lines []string
}

// PrimaryLine returns the first listed line, or "" if the station has none.
func (s Station) PrimaryLine() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return s.Lines[0]
}

// Directory is a read-only, ordered set of stations.
// It is safe for concurrent use since nothing mutates it after construction.
type Directory struct {
	stations []Station
}

// NewDirectory creates a Directory over a copy of stations, preserving order.
func NewDirectory(stations []Station) *Directory {
	cp := make([]Station, len(stations))
	copy(cp, stations)
	return &Directory{stations: cp}
}

var defaultDirectory = NewDirectory(table)

// Default returns the directory built from the embedded Tokyo station table.
func Default() *Directory {
	return defaultDirectory
}

// All returns the stations in table order.
func (d *Directory) All() []Station {
	out := make([]Station, len(d.stations))
	copy(out, d.stations)
	return out
}

// Len returns the number of stations.
func (d *Directory) Len() int {
	return len(d.stations)
}

// Search returns up to limit stations matching keyword, ranked in three tiers:
// name prefix matches, then other name substring matches, then stations whose
// name does not match but one of whose lines contains the keyword.
// Table order is kept within each tier. A blank keyword matches nothing.
func (d *Directory) Search(keyword string, limit int) []Station {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []Station{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var prefix, partial, byLine []Station
	for _, s := range d.stations {
		switch {
		case strings.HasPrefix(s.Name, keyword):
			prefix = append(prefix, s)
		case strings.Contains(s.Name, keyword):
			partial = append(partial, s)
		case servesLineMatching(s, keyword):
			byLine = append(byLine, s)
		}
	}

	results := make([]Station, 0, len(prefix)+len(partial)+len(byLine))
	results = append(results, prefix...)
	results = append(results, partial...)
	results = append(results, byLine...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func servesLineMatching(s Station, keyword string) bool {
	for _, line := range s.Lines {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

// Nearest returns the station closest to the point by great-circle distance.
// Exact ties go to the earlier station. An empty directory yields a zero Station.
func (d *Directory) Nearest(lat, lng float64) Station {
	s, _ := d.NearestExcept(lat, lng)
	return s
}

// NearestExcept is like Nearest but skips stations whose name is in names.
// ok is false when every station was excluded.
func (d *Directory) NearestExcept(lat, lng float64, names ...string) (Station, bool) {
	var (
		best     Station
		bestDist = math.Inf(1)
		found    bool
	)
	for _, s := range d.stations {
		if excluded(s.Name, names) {
			continue
		}
		if dist := HaversineKm(lat, lng, s.Lat, s.Lng); !found || dist < bestDist {
			best, bestDist, found = s, dist, true
		}
	}
	return best, found
}

func excluded(name string, names []string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Match finds the first station whose name appears in query, or which
// contains query once a trailing "駅" is removed. It is used to resolve
// free-text destination names such as "吉祥寺駅" or "吉祥寺駅北口".
func (d *Directory) Match(query string) (Station, bool) {
	bare := strings.TrimSuffix(query, "駅")
	for _, s := range d.stations {
		if strings.Contains(query, s.Name) || strings.Contains(s.Name, bare) {
			return s, true
		}
	}
	return Station{}, false
}

// Find returns the first station named exactly name.
func (d *Directory) Find(name string) (Station, bool) {
	for _, s := range d.stations {
		if s.Name == name {
			return s, true
		}
	}
	return Station{}, false
}

// HaversineKm returns the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
