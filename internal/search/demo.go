package search

import (
	"context"
	"math"
	"time"

	"github.com/shuuden/shuuden/internal/fare"
	"github.com/shuuden/shuuden/internal/station"
)

// DemoProducerName identifies the offline producer.
const DemoProducerName = "demo"

// fallbackAnchor is used when a destination name matches no known station.
var fallbackAnchor = Coordinate{Lat: 35.6812, Lng: 139.7671}

// Fixed clock times for synthesized train legs.
const (
	demoDepartureTime = "0:15"
	demoArrivalTime   = "0:30"
)

// DemoProducerConfig holds configuration for the DemoProducer.
type DemoProducerConfig struct {
	// Stations is the station directory (optional, defaults to station.Default()).
	Stations *station.Directory
	// Location is the zone used for timestamps (optional, defaults to Local).
	Location *time.Location
	// Now returns the current time (optional, defaults to time.Now).
	Now func() time.Time
}

// DemoProducer builds results without any external provider: pre-authored
// scenarios for trips home, geometric estimates for anywhere else.
type DemoProducer struct {
	stations *station.Directory
	loc      *time.Location
	now      func() time.Time
}

// NewDemoProducer creates a new DemoProducer.
func NewDemoProducer(cfg DemoProducerConfig) *DemoProducer {
	stations := cfg.Stations
	if stations == nil {
		stations = station.Default()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &DemoProducer{stations: stations, loc: loc, now: now}
}

// Name returns the producer name.
func (p *DemoProducer) Name() string {
	return DemoProducerName
}

// Produce implements Producer. It never fails.
func (p *DemoProducer) Produce(_ context.Context, q Query) (*Result, error) {
	return p.Synthesize(q.Origin, q.Destination.Name), nil
}

// Synthesize returns a demo result for a rider at origin heading to destName.
func (p *DemoProducer) Synthesize(origin Coordinate, destName string) *Result {
	searchedAt := FormatSearchedAt(p.now(), p.loc)

	if IsHome(destName) {
		return closestScenario(origin).result(searchedAt)
	}
	return p.synthesize(origin, destName, searchedAt)
}

// closestScenario picks the scenario whose anchor is nearest in plain degree
// space. Ties go to the earlier scenario.
func closestScenario(origin Coordinate) scenario {
	best := scenarios[0]
	bestDist := math.Inf(1)
	for _, s := range scenarios {
		dLat := origin.Lat - s.anchor.Lat
		dLng := origin.Lng - s.anchor.Lng
		if d := math.Sqrt(dLat*dLat + dLng*dLng); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

func (p *DemoProducer) synthesize(origin Coordinate, destName, searchedAt string) *Result {
	from := p.stations.Nearest(origin.Lat, origin.Lng)

	dest := fallbackAnchor
	destStation, matched := p.stations.Match(destName)
	if matched {
		dest = Coordinate{Lat: destStation.Lat, Lng: destStation.Lng}
	}

	straightKm := station.HaversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng)
	roadKm := roundTenth(fare.RoadDistance(straightKm))
	fullTaxiFare := fare.TaxiFare(roadKm, true)

	exclude := []string{from.Name}
	if matched {
		exclude = append(exclude, destStation.Name)
	}
	mid, ok := p.stations.NearestExcept((origin.Lat+dest.Lat)/2, (origin.Lng+dest.Lng)/2, exclude...)
	if !ok {
		mid = from
	}

	midKm := roundTenth(fare.RoadDistance(station.HaversineKm(mid.Lat, mid.Lng, dest.Lat, dest.Lng)))
	trainFare := int(math.Round(straightKm*20 + 150))

	line := from.PrimaryLine()
	options := []RouteOption{
		newOption(
			line+"で"+mid.Name+"まで → タクシーで"+destName+"へ",
			&TrainSegment{
				Line:          line,
				From:          from.Name,
				To:            mid.Name,
				DepartureTime: demoDepartureTime,
				ArrivalTime:   demoArrivalTime,
				Fare:          trainFare,
			},
			&TaxiSegment{
				From:        mid.Name + "駅",
				To:          destName,
				DistanceKm:  midKm,
				Fare:        fare.TaxiFare(midKm, true),
				DurationMin: fare.TaxiDuration(midKm),
			},
			fullTaxiFare,
		),
		newOption(
			"タクシーで直接"+destName+"へ",
			nil,
			&TaxiSegment{
				From:        from.Name + "駅",
				To:          destName,
				DistanceKm:  roadKm,
				Fare:        fullTaxiFare,
				DurationMin: fare.TaxiDuration(roadKm),
			},
			fullTaxiFare,
		),
	}
	sortBySavings(options)

	return &Result{
		CurrentLocation:    from.Name + "駅周辺",
		Destination:        destName,
		FullTaxiFare:       fullTaxiFare,
		FullTaxiDistanceKm: roadKm,
		Options:            options,
		SearchedAt:         searchedAt,
		IsDemo:             true,
	}
}

// roundTenth rounds half away from zero to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
