package models

import "github.com/shuuden/shuuden/internal/search"

// SearchRequest is the body of POST /v1/search. Pointers tell a missing
// coordinate apart from zero.
type SearchRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	DestLat  *float64 `json:"destLat,omitempty"`
	DestLng  *float64 `json:"destLng,omitempty"`
	DestName *string  `json:"destName,omitempty"`
}

// SearchResult is a ranked set of ways home.
type SearchResult struct {
	CurrentLocation    string        `json:"currentLocation"`
	Destination        string        `json:"destination"`
	FullTaxiFare       int           `json:"fullTaxiFare"`
	FullTaxiDistanceKm float64       `json:"fullTaxiDistanceKm"`
	Options            []RouteOption `json:"options"`
	SearchedAt         string        `json:"searchedAt"`
	IsDemo             bool          `json:"isDemo"`
}

// RouteOption is one priced way home.
type RouteOption struct {
	Type      string        `json:"type"`
	Summary   string        `json:"summary"`
	Train     *TrainSegment `json:"train,omitempty"`
	Taxi      *TaxiSegment  `json:"taxi,omitempty"`
	TotalCost int           `json:"totalCost"`
	Savings   int           `json:"savings"`
}

// TrainSegment is the rail part of an option.
type TrainSegment struct {
	Line          string `json:"line"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Fare          int    `json:"fare"`
}

// TaxiSegment is the taxi part of an option.
type TaxiSegment struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKm  float64 `json:"distanceKm"`
	Fare        int     `json:"fare"`
	DurationMin int     `json:"durationMin"`
}

// NewSearchResult converts a search result to its wire form.
func NewSearchResult(r *search.Result) SearchResult {
	out := SearchResult{
		CurrentLocation:    r.CurrentLocation,
		Destination:        r.Destination,
		FullTaxiFare:       r.FullTaxiFare,
		FullTaxiDistanceKm: r.FullTaxiDistanceKm,
		Options:            make([]RouteOption, 0, len(r.Options)),
		SearchedAt:         r.SearchedAt,
		IsDemo:             r.IsDemo,
	}

	for _, opt := range r.Options {
		o := RouteOption{
			Type:      string(opt.Kind),
			Summary:   opt.Summary,
			TotalCost: opt.TotalCost,
			Savings:   opt.Savings,
		}
		if t := opt.Train; t != nil {
			o.Train = &TrainSegment{
				Line:          t.Line,
				From:          t.From,
				To:            t.To,
				DepartureTime: t.DepartureTime,
				ArrivalTime:   t.ArrivalTime,
				Fare:          t.Fare,
			}
		}
		if t := opt.Taxi; t != nil {
			o.Taxi = &TaxiSegment{
				From:        t.From,
				To:          t.To,
				DistanceKm:  t.DistanceKm,
				Fare:        t.Fare,
				DurationMin: t.DurationMin,
			}
		}
		out.Options = append(out.Options, o)
	}

	return out
}
