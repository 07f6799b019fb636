package googlemaps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"googlemaps.github.io/maps"

	"github.com/shuuden/shuuden/internal/provider/resilience"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/telemetry"
)

// GeocodingProviderName identifies the Geocoding API in the registry.
const GeocodingProviderName = "google-geocoding"

// GeocoderConfig holds configuration for the Geocoder.
type GeocoderConfig struct {
	// APIKey is the Google Maps Platform key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// Transport performs the HTTP round trips (optional).
	// If nil, uses a resilient client with retries disabled.
	Transport http.RoundTripper

	// Timeout is the per-request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Metrics records request latency (optional).
	Metrics *telemetry.ProviderMetrics

	// Logger for geocoder operations.
	Logger zerolog.Logger
}

// Geocoder resolves coordinates to addresses. It implements search.Geocoder.
type Geocoder struct {
	client  *maps.Client
	metrics *telemetry.ProviderMetrics
	tracer  trace.Tracer
	logger  zerolog.Logger
}

var _ search.Geocoder = (*Geocoder)(nil)

// NewGeocoder creates a Geocoder backed by the Maps SDK.
func NewGeocoder(cfg GeocoderConfig) (*Geocoder, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		clientCfg := resilience.DefaultClientConfig(GeocodingProviderName)
		clientCfg.Timeout = timeout
		clientCfg.DisableRetries = true
		clientCfg.Registry = cfg.Registry
		transport = resilience.NewClient(clientCfg)
	}

	client, err := maps.NewClient(
		maps.WithAPIKey(cfg.APIKey),
		maps.WithBaseURL(baseURL),
		maps.WithHTTPClient(&http.Client{Transport: transport, Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}

	return &Geocoder{
		client:  client,
		metrics: cfg.Metrics,
		tracer:  otel.Tracer(tracerName),
		logger:  cfg.Logger,
	}, nil
}

// Name returns the provider name.
func (g *Geocoder) Name() string {
	return GeocodingProviderName
}

// ReverseGeocode returns the formatted address of the best match for c.
func (g *Geocoder) ReverseGeocode(ctx context.Context, c search.Coordinate) (name string, err error) {
	ctx, span := g.tracer.Start(ctx, "googlemaps.reverse_geocode", trace.WithSpanKind(trace.SpanKindClient))
	start := time.Now()
	defer func() {
		g.metrics.RecordRequest("reverse_geocode", time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: c.Lat, Lng: c.Lng},
		Language: Language,
	})
	if err != nil {
		return "", &search.ProviderError{
			Provider: GeocodingProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "reverse geocoding failed",
			Err:      err,
		}
	}
	if len(results) == 0 || results[0].FormattedAddress == "" {
		return "", &search.ProviderError{
			Provider: GeocodingProviderName,
			Code:     "ZERO_RESULTS",
			Message:  "no address for location",
			Err:      search.ErrNoGeocodeResult,
		}
	}

	span.SetAttributes(attribute.Int("geocode.results", len(results)))
	g.logger.Debug().
		Str("address", results[0].FormattedAddress).
		Msg("reverse geocoded location")

	return results[0].FormattedAddress, nil
}
