// Package app assembles the search service from configuration. Both the HTTP
// server and the CLI build their service here.
package app

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/shuuden/shuuden/internal/config"
	"github.com/shuuden/shuuden/internal/provider/googlemaps"
	"github.com/shuuden/shuuden/internal/provider/resilience"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
	"github.com/shuuden/shuuden/internal/telemetry"
)

// NewSearchService builds the search service. With an API key the service
// answers from Google Maps; without one it serves demo results. Provider
// clients register with registry when it is non-nil.
func NewSearchService(cfg *config.Config, logger zerolog.Logger, registry *resilience.Registry) (*search.Service, error) {
	demo := search.NewDemoProducer(search.DemoProducerConfig{
		Stations: station.Default(),
		Location: cfg.Location,
	})

	if !cfg.HasAPIKey() {
		logger.Warn().Msg("GOOGLE_MAPS_API_KEY not set, serving demo results")
		return search.NewService(search.ServiceConfig{
			Demo:   demo,
			Logger: logger,
		}), nil
	}

	live, err := newLiveProducer(cfg, logger, registry)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("base_url", cfg.GoogleMapsURL).
		Dur("timeout", cfg.ProviderTimeout).
		Msg("live search enabled")

	return search.NewService(search.ServiceConfig{
		Live:   live,
		Demo:   demo,
		Logger: logger,
	}), nil
}

func newLiveProducer(cfg *config.Config, logger zerolog.Logger, registry *resilience.Registry) (*search.LiveProducer, error) {
	directionsMetrics, err := telemetry.NewProviderMetrics(googlemaps.DirectionsProviderName)
	if err != nil {
		return nil, fmt.Errorf("directions metrics: %w", err)
	}
	geocodingMetrics, err := telemetry.NewProviderMetrics(googlemaps.GeocodingProviderName)
	if err != nil {
		return nil, fmt.Errorf("geocoding metrics: %w", err)
	}

	directions := googlemaps.NewClient(googlemaps.ClientConfig{
		APIKey:     cfg.GoogleMapsKey,
		BaseURL:    cfg.GoogleMapsURL,
		HTTPClient: providerClient(googlemaps.DirectionsProviderName, cfg, logger, registry),
		Metrics:    directionsMetrics,
		Logger:     logger.With().Str("provider", googlemaps.DirectionsProviderName).Logger(),
	})

	geocoder, err := googlemaps.NewGeocoder(googlemaps.GeocoderConfig{
		APIKey:    cfg.GoogleMapsKey,
		BaseURL:   cfg.GoogleMapsURL,
		Transport: providerClient(googlemaps.GeocodingProviderName, cfg, logger, registry),
		Timeout:   cfg.ProviderTimeout,
		Metrics:   geocodingMetrics,
		Logger:    logger.With().Str("provider", googlemaps.GeocodingProviderName).Logger(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating geocoder: %w", err)
	}

	return search.NewLiveProducer(search.LiveProducerConfig{
		Directions: directions,
		Geocoder:   geocoder,
		Location:   cfg.Location,
		Logger:     logger,
	}), nil
}

// providerClient builds a single-attempt breaker-guarded client that logs
// circuit transitions.
func providerClient(name string, cfg *config.Config, logger zerolog.Logger, registry *resilience.Registry) *resilience.Client {
	cb := resilience.DefaultCircuitBreakerConfig(name)
	cb.OnStateChange = func(breaker string, from, to gobreaker.State) {
		logger.Warn().
			Str("provider", breaker).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("circuit breaker state changed")
	}

	clientCfg := resilience.DefaultClientConfig(name)
	clientCfg.Timeout = cfg.ProviderTimeout
	clientCfg.DisableRetries = true
	clientCfg.CircuitBreaker = &cb
	clientCfg.Registry = registry
	return resilience.NewClient(clientCfg)
}
