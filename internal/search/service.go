package search

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/shuuden/shuuden/internal/search"

// Request is an incoming search. Destination fields are optional and default
// independently to Home.
type Request struct {
	OriginLat float64
	OriginLng float64
	DestLat   *float64
	DestLng   *float64
	DestName  *string
}

// ServiceConfig holds configuration for the search Service.
type ServiceConfig struct {
	// Live is the provider-backed producer. When nil, Demo serves every request.
	Live Producer
	// Demo is the offline producer (optional, defaults to NewDemoProducer with defaults).
	Demo Producer
	// Logger for service operations.
	Logger zerolog.Logger
}

// Service dispatches searches to the live or demo producer.
type Service struct {
	live     Producer
	demo     Producer
	logger   zerolog.Logger
	searches metric.Int64Counter
}

// NewService creates a new search Service.
func NewService(cfg ServiceConfig) *Service {
	demo := cfg.Demo
	if demo == nil {
		demo = NewDemoProducer(DemoProducerConfig{})
	}

	// Instrument creation only fails on invalid names; fall back to a no-op.
	searches, err := otel.Meter(meterName).Int64Counter(
		"search.requests",
		metric.WithDescription("Number of route searches by mode and outcome"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		cfg.Logger.Warn().Err(err).Msg("failed to create search counter")
	}

	return &Service{
		live:     cfg.Live,
		demo:     demo,
		logger:   cfg.Logger,
		searches: searches,
	}
}

// LiveMode reports whether searches are served by the live producer.
func (s *Service) LiveMode() bool {
	return s.live != nil
}

// Search validates and resolves the request, then produces a ranked result.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	q, err := resolve(req)
	if err != nil {
		return nil, err
	}

	producer := s.demo
	if s.live != nil {
		producer = s.live
	}

	start := time.Now()
	result, err := producer.Produce(ctx, q)
	s.record(ctx, producer.Name(), err)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("mode", producer.Name()).
			Dur("duration", time.Since(start)).
			Msg("search failed")
		return nil, fmt.Errorf("%s search: %w", producer.Name(), err)
	}

	s.logger.Info().
		Str("mode", producer.Name()).
		Str("destination", q.Destination.Name).
		Int("options", len(result.Options)).
		Int("full_taxi_fare", result.FullTaxiFare).
		Dur("duration", time.Since(start)).
		Msg("search completed")

	return result, nil
}

func (s *Service) record(ctx context.Context, mode string, err error) {
	if s.searches == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.searches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("search.mode", mode),
		attribute.String("search.outcome", outcome),
	))
}

// resolve applies destination defaults and validates coordinates.
func resolve(req Request) (Query, error) {
	q := Query{
		Origin:      Coordinate{Lat: req.OriginLat, Lng: req.OriginLng},
		Destination: Home,
	}
	if req.DestLat != nil {
		q.Destination.Coordinate.Lat = *req.DestLat
	}
	if req.DestLng != nil {
		q.Destination.Coordinate.Lng = *req.DestLng
	}
	if req.DestName != nil {
		q.Destination.Name = *req.DestName
	}

	if err := ValidateCoordinate(q.Origin); err != nil {
		return Query{}, fmt.Errorf("origin: %w", err)
	}
	if err := ValidateCoordinate(q.Destination.Coordinate); err != nil {
		return Query{}, fmt.Errorf("destination: %w", err)
	}
	return q, nil
}

// ValidateCoordinate checks that c is within the valid lat/lng range.
func ValidateCoordinate(c Coordinate) error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]: %w", c.Lat, ErrInvalidCoordinates)
	}
	if math.IsNaN(c.Lng) || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]: %w", c.Lng, ErrInvalidCoordinates)
	}
	return nil
}
