package googlemaps

import "github.com/shuuden/shuuden/internal/search"

// Directions API wire format. Only the fields the search uses are decoded.

type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary string          `json:"summary"`
	Fare    *fareQuote      `json:"fare,omitempty"`
	Legs    []directionsLeg `json:"legs"`
}

type directionsLeg struct {
	Distance     textValue        `json:"distance"`
	Duration     textValue        `json:"duration"`
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
	Fare         *fareQuote       `json:"fare,omitempty"`
	Steps        []directionsStep `json:"steps"`
}

type directionsStep struct {
	TravelMode     string          `json:"travel_mode"`
	TransitDetails *transitDetails `json:"transit_details,omitempty"`
}

type transitDetails struct {
	DepartureStop namedStop   `json:"departure_stop"`
	ArrivalStop   namedStop   `json:"arrival_stop"`
	DepartureTime clockTime   `json:"departure_time"`
	ArrivalTime   clockTime   `json:"arrival_time"`
	Line          transitLine `json:"line"`
}

type namedStop struct {
	Name string `json:"name"`
}

type clockTime struct {
	Text     string `json:"text"`
	Value    int64  `json:"value"`
	TimeZone string `json:"time_zone"`
}

type transitLine struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
}

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

type fareQuote struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

func (f *fareQuote) toFare() *search.Fare {
	if f == nil {
		return nil
	}
	return &search.Fare{Value: f.Value, Currency: f.Currency}
}

func (r *directionsResponse) toTransitDirections() *search.TransitDirections {
	out := &search.TransitDirections{
		Status: r.Status,
		Routes: make([]search.TransitRoute, 0, len(r.Routes)),
	}

	for i := range r.Routes {
		route := &r.Routes[i]
		tr := search.TransitRoute{
			Fare: route.Fare.toFare(),
			Legs: make([]search.TransitLeg, 0, len(route.Legs)),
		}
		for j := range route.Legs {
			leg := &route.Legs[j]
			tl := search.TransitLeg{
				Fare:  leg.Fare.toFare(),
				Steps: make([]search.TransitStep, 0, len(leg.Steps)),
			}
			for k := range leg.Steps {
				tl.Steps = append(tl.Steps, leg.Steps[k].toTransitStep())
			}
			tr.Legs = append(tr.Legs, tl)
		}
		out.Routes = append(out.Routes, tr)
	}

	return out
}

func (s *directionsStep) toTransitStep() search.TransitStep {
	step := search.TransitStep{TravelMode: s.TravelMode}
	if d := s.TransitDetails; d != nil {
		step.Transit = &search.TransitDetails{
			DepartureStop: d.DepartureStop.Name,
			ArrivalStop:   d.ArrivalStop.Name,
			DepartureTime: d.DepartureTime.Text,
			ArrivalTime:   d.ArrivalTime.Text,
			LineShortName: d.Line.ShortName,
			LineName:      d.Line.Name,
		}
	}
	return step
}
