package search

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shuuden/shuuden/internal/fare"
)

// LiveProducerName identifies the provider-backed producer.
const LiveProducerName = "live"

const (
	// StatusOK is the provider status for a successful directions query.
	StatusOK = "OK"
	// TravelModeTransit tags a step ridden on public transport.
	TravelModeTransit = "TRANSIT"

	maxTransitAlternatives = 3
	fallbackTrainFare      = 250
	lineSeparator          = " → "
	unknownLocation        = "現在地"
)

// DirectionsProvider answers transit and driving queries.
type DirectionsProvider interface {
	TransitRoutes(ctx context.Context, origin, dest Coordinate) (*TransitDirections, error)
	DrivingDistance(ctx context.Context, origin, dest Coordinate) (*DrivingDistance, error)
}

// Geocoder resolves a coordinate to a place name.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, c Coordinate) (string, error)
}

// TransitDirections is a transit query answer. Status is the provider's
// body-level status, e.g. "OK" or "ZERO_RESULTS".
type TransitDirections struct {
	Status string
	Routes []TransitRoute
}

// TransitRoute is one alternative itinerary.
type TransitRoute struct {
	Fare *Fare
	Legs []TransitLeg
}

// TransitLeg is an origin-to-destination leg of a route.
type TransitLeg struct {
	Fare  *Fare
	Steps []TransitStep
}

// TransitStep is a single movement such as one ride or one walk.
type TransitStep struct {
	TravelMode string
	Transit    *TransitDetails
}

// TransitDetails describes a ride on one line.
type TransitDetails struct {
	DepartureStop string
	ArrivalStop   string
	DepartureTime string
	ArrivalTime   string
	LineShortName string
	LineName      string
}

// Fare is a provider fare quote.
type Fare struct {
	Value    float64
	Currency string
}

// DrivingDistance is the road distance of the best driving route.
// Both fields are zero when no road route was found.
type DrivingDistance struct {
	DistanceKm  float64
	DurationMin int
}

// LiveInput gathers the provider answers needed to build a live result.
type LiveInput struct {
	Transit      *TransitDirections
	Driving      DrivingDistance
	LocationName string
	Destination  string
	SearchedAt   string
}

// BuildLiveResult turns provider answers into a ranked result. Up to three
// transit alternatives become train-only options; a taxi-only option for the
// whole driving distance is always appended.
func BuildLiveResult(in LiveInput) *Result {
	fullTaxiFare := fare.TaxiFare(in.Driving.DistanceKm, true)

	options := make([]RouteOption, 0, maxTransitAlternatives+1)
	if in.Transit != nil && in.Transit.Status == StatusOK {
		routes := in.Transit.Routes
		if len(routes) > maxTransitAlternatives {
			routes = routes[:maxTransitAlternatives]
		}
		for i := range routes {
			train, ok := trainSegment(&routes[i])
			if !ok {
				continue
			}
			summary := train.Line + " で " + in.Destination + "方面へ"
			options = append(options, newOption(summary, train, nil, fullTaxiFare))
		}
	}

	options = append(options, newOption(
		"タクシーで直接"+in.Destination+"へ",
		nil,
		&TaxiSegment{
			From:        in.LocationName,
			To:          in.Destination,
			DistanceKm:  in.Driving.DistanceKm,
			Fare:        fullTaxiFare,
			DurationMin: fare.TaxiDuration(in.Driving.DistanceKm),
		},
		fullTaxiFare,
	))
	sortBySavings(options)

	return &Result{
		CurrentLocation:    in.LocationName,
		Destination:        in.Destination,
		FullTaxiFare:       fullTaxiFare,
		FullTaxiDistanceKm: in.Driving.DistanceKm,
		Options:            options,
		SearchedAt:         in.SearchedAt,
		IsDemo:             false,
	}
}

// trainSegment summarises the transit steps of a route's first leg.
// Routes without ridden steps, or whose first or last ride has no details,
// are rejected. Rides in between without details are left out of the line name.
func trainSegment(route *TransitRoute) (*TrainSegment, bool) {
	if len(route.Legs) == 0 {
		return nil, false
	}
	leg := &route.Legs[0]

	var rides []*TransitDetails
	for i := range leg.Steps {
		step := &leg.Steps[i]
		if step.TravelMode == TravelModeTransit {
			rides = append(rides, step.Transit)
		}
	}
	if len(rides) == 0 {
		return nil, false
	}

	first, last := rides[0], rides[len(rides)-1]
	if first == nil || last == nil {
		return nil, false
	}

	lines := make([]string, 0, len(rides))
	for _, r := range rides {
		if r == nil {
			continue
		}
		name := r.LineShortName
		if name == "" {
			name = r.LineName
		}
		lines = append(lines, name)
	}

	return &TrainSegment{
		Line:          strings.Join(lines, lineSeparator),
		From:          first.DepartureStop,
		To:            last.ArrivalStop,
		DepartureTime: first.DepartureTime,
		ArrivalTime:   last.ArrivalTime,
		Fare:          routeFare(route, leg),
	}, true
}

// routeFare prefers the route fare, then the leg fare. A zero quote counts as missing.
func routeFare(route *TransitRoute, leg *TransitLeg) int {
	for _, f := range []*Fare{route.Fare, leg.Fare} {
		if f != nil && f.Value != 0 {
			return int(math.Round(f.Value))
		}
	}
	return fallbackTrainFare
}

// LiveProducerConfig holds configuration for the LiveProducer.
type LiveProducerConfig struct {
	// Directions is the transit and driving provider (required).
	Directions DirectionsProvider
	// Geocoder resolves the rider's position to a name (required).
	Geocoder Geocoder
	// Location is the zone used for timestamps (optional, defaults to Local).
	Location *time.Location
	// Now returns the current time (optional, defaults to time.Now).
	Now func() time.Time
	// Logger for producer operations.
	Logger zerolog.Logger
}

// LiveProducer builds results from a directions provider.
type LiveProducer struct {
	directions DirectionsProvider
	geocoder   Geocoder
	loc        *time.Location
	now        func() time.Time
	logger     zerolog.Logger
}

// NewLiveProducer creates a new LiveProducer.
func NewLiveProducer(cfg LiveProducerConfig) *LiveProducer {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &LiveProducer{
		directions: cfg.Directions,
		geocoder:   cfg.Geocoder,
		loc:        loc,
		now:        now,
		logger:     cfg.Logger,
	}
}

// Name returns the producer name.
func (p *LiveProducer) Name() string {
	return LiveProducerName
}

// Produce queries transit, driving and reverse geocoding concurrently and
// waits for all three. A failed directions call fails the whole search;
// a failed geocode falls back to a placeholder name.
func (p *LiveProducer) Produce(ctx context.Context, q Query) (*Result, error) {
	var (
		transit      *TransitDirections
		driving      *DrivingDistance
		locationName string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transit, err = p.directions.TransitRoutes(gctx, q.Origin, q.Destination.Coordinate)
		if err != nil {
			return fmt.Errorf("transit directions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		driving, err = p.directions.DrivingDistance(gctx, q.Origin, q.Destination.Coordinate)
		if err != nil {
			return fmt.Errorf("driving directions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		locationName = p.locationName(gctx, q.Origin)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	in := LiveInput{
		Transit:      transit,
		LocationName: locationName,
		Destination:  q.Destination.Name,
		SearchedAt:   FormatSearchedAt(p.now(), p.loc),
	}
	if driving != nil {
		in.Driving = *driving
	}

	routeCount := 0
	status := ""
	if transit != nil {
		routeCount = len(transit.Routes)
		status = transit.Status
	}
	p.logger.Debug().
		Str("transit_status", status).
		Int("transit_routes", routeCount).
		Float64("driving_km", in.Driving.DistanceKm).
		Str("location", locationName).
		Msg("live provider answers received")

	return BuildLiveResult(in), nil
}

func (p *LiveProducer) locationName(ctx context.Context, c Coordinate) string {
	name, err := p.geocoder.ReverseGeocode(ctx, c)
	if err != nil || name == "" {
		p.logger.Warn().
			Err(err).
			Float64("lat", c.Lat).
			Float64("lng", c.Lng).
			Msg("reverse geocoding failed, using placeholder")
		return unknownLocation
	}
	return name
}
