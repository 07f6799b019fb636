// Package search ranks ways home after the last train: transit, transit plus
// taxi, or taxi all the way, priced against the full-taxi baseline.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Kind classifies a route option by the segments it contains.
type Kind string

const (
	KindTrainOnly    Kind = "train_only"
	KindTrainAndTaxi Kind = "train_and_taxi"
	KindTaxiOnly     Kind = "taxi_only"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// String formats the coordinate as "lat,lng" as used in provider queries.
func (c Coordinate) String() string {
	return fmt.Sprintf("%v,%v", c.Lat, c.Lng)
}

// Home is the default destination used when a request names none.
var Home = Destination{
	Name:       "荻窪駅",
	Coordinate: Coordinate{Lat: 35.7041, Lng: 139.6199},
}

// homeAliases are the destination names treated as the home station.
var homeAliases = []string{"荻窪駅", "荻窪"}

// IsHome reports whether name refers to the home station.
func IsHome(name string) bool {
	for _, alias := range homeAliases {
		if name == alias {
			return true
		}
	}
	return false
}

// Destination is a named target point.
type Destination struct {
	Name       string
	Coordinate Coordinate
}

// TrainSegment is the rail part of an option.
// Times are clock strings as given by the source, e.g. "0:15".
type TrainSegment struct {
	Line          string
	From          string
	To            string
	DepartureTime string
	ArrivalTime   string
	Fare          int
}

// TaxiSegment is the taxi part of an option.
type TaxiSegment struct {
	From        string
	To          string
	DistanceKm  float64
	Fare        int
	DurationMin int
}

// RouteOption is one priced way home.
type RouteOption struct {
	Kind      Kind
	Summary   string
	Train     *TrainSegment
	Taxi      *TaxiSegment
	TotalCost int
	Savings   int
}

// newOption builds an option from its segments, deriving kind, total cost
// and savings against baseline.
func newOption(summary string, train *TrainSegment, taxi *TaxiSegment, baseline int) RouteOption {
	opt := RouteOption{Summary: summary, Train: train, Taxi: taxi}
	switch {
	case train != nil && taxi != nil:
		opt.Kind = KindTrainAndTaxi
		opt.TotalCost = train.Fare + taxi.Fare
	case train != nil:
		opt.Kind = KindTrainOnly
		opt.TotalCost = train.Fare
	default:
		opt.Kind = KindTaxiOnly
		if taxi != nil {
			opt.TotalCost = taxi.Fare
		}
	}
	opt.Savings = baseline - opt.TotalCost
	return opt
}

// Result is a ranked set of options for one request.
type Result struct {
	CurrentLocation    string
	Destination        string
	FullTaxiFare       int
	FullTaxiDistanceKm float64
	Options            []RouteOption
	SearchedAt         string
	IsDemo             bool
}

// sortBySavings orders options by savings, highest first, keeping discovery
// order among equals.
func sortBySavings(options []RouteOption) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Savings > options[j].Savings
	})
}

// Query is a fully resolved search: origin plus a destination with defaults applied.
type Query struct {
	Origin      Coordinate
	Destination Destination
}

// Producer produces a Result for a query.
type Producer interface {
	Produce(ctx context.Context, q Query) (*Result, error)
	// Name identifies the producer in logs and metrics.
	Name() string
}

// FormatSearchedAt renders t like "2025/1/15 0:23:45" in loc.
func FormatSearchedAt(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d/%d/%d %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
