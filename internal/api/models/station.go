package models

import "github.com/shuuden/shuuden/internal/station"

// Station is a rail station in the directory.
type Station struct {
	Name  string   `json:"name"`
	Lat   float64  `json:"lat"`
	Lng   float64  `json:"lng"`
	Lines []string `json:"lines"`
}

// StationList is the body of GET /v1/stations.
type StationList struct {
	Stations []Station `json:"stations"`
}

// NearestStation is the body of GET /v1/stations/nearest.
type NearestStation struct {
	Station    Station `json:"station"`
	DistanceKm float64 `json:"distanceKm"`
}

// NewStation converts a directory entry to its wire form.
func NewStation(s station.Station) Station {
	lines := s.Lines
	if lines == nil {
		lines = []string{}
	}
	return Station{Name: s.Name, Lat: s.Lat, Lng: s.Lng, Lines: lines}
}

// NewStationList converts directory entries to a list body.
func NewStationList(stations []station.Station) StationList {
	out := StationList{Stations: make([]Station, 0, len(stations))}
	for _, s := range stations {
		out.Stations = append(out.Stations, NewStation(s))
	}
	return out
}
