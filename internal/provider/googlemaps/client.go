// Package googlemaps talks to the Google Maps Platform: the Directions API for
// transit and driving queries and the Geocoding API for place names.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shuuden/shuuden/internal/provider/resilience"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/telemetry"
)

const (
	// DirectionsProviderName identifies the Directions API in the registry.
	DirectionsProviderName = "google-directions"

	// DefaultBaseURL is the Google Maps Platform base URL.
	DefaultBaseURL = "https://maps.googleapis.com"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 10 * time.Second

	// Language is requested for every query so names come back in Japanese.
	Language = "ja"

	directionsPath = "/maps/api/directions/json"
	tracerName     = "github.com/shuuden/shuuden/internal/provider/googlemaps"
)

// HTTPDoer executes HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Directions client.
type ClientConfig struct {
	// APIKey is the Google Maps Platform key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient executes requests (optional).
	// If nil, uses a resilient client with retries disabled.
	HTTPClient HTTPDoer

	// Timeout is the per-request timeout (optional, defaults to 10s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Metrics records request latency (optional).
	Metrics *telemetry.ProviderMetrics

	// Now supplies the transit departure time (optional, defaults to time.Now).
	Now func() time.Time

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client queries the Directions API. It implements search.DirectionsProvider.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
	metrics    *telemetry.ProviderMetrics
	tracer     trace.Tracer
	now        func() time.Time
	logger     zerolog.Logger
}

var _ search.DirectionsProvider = (*Client)(nil)

// NewClient creates a new Directions client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(DirectionsProviderName)
		clientCfg.Timeout = timeout
		clientCfg.DisableRetries = true
		clientCfg.Registry = cfg.Registry
		httpClient = resilience.NewClient(clientCfg)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		tracer:     otel.Tracer(tracerName),
		now:        now,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return DirectionsProviderName
}

// TransitRoutes asks for public transport alternatives departing now.
// A body-level status other than OK is passed through for the caller to judge.
func (c *Client) TransitRoutes(ctx context.Context, origin, dest search.Coordinate) (*search.TransitDirections, error) {
	params := c.baseParams(origin, dest)
	params.Set("mode", "transit")
	params.Set("alternatives", "true")
	params.Set("departure_time", strconv.FormatInt(c.now().Unix(), 10))

	resp, err := c.directions(ctx, "transit", params)
	if err != nil {
		return nil, err
	}

	if resp.Status != search.StatusOK {
		c.logger.Warn().
			Str("status", resp.Status).
			Str("error_message", resp.ErrorMessage).
			Msg("transit directions returned no usable routes")
	}

	return resp.toTransitDirections(), nil
}

// DrivingDistance returns the road distance of the first driving route.
// When no route exists both fields are zero.
func (c *Client) DrivingDistance(ctx context.Context, origin, dest search.Coordinate) (*search.DrivingDistance, error) {
	params := c.baseParams(origin, dest)
	params.Set("mode", "driving")

	resp, err := c.directions(ctx, "driving", params)
	if err != nil {
		return nil, err
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		c.logger.Warn().
			Str("status", resp.Status).
			Str("error_message", resp.ErrorMessage).
			Msg("driving directions returned no routes")
		return &search.DrivingDistance{}, nil
	}

	leg := resp.Routes[0].Legs[0]
	return &search.DrivingDistance{
		DistanceKm:  leg.Distance.Value / 1000,
		DurationMin: int(math.Ceil(leg.Duration.Value / 60)),
	}, nil
}

func (c *Client) baseParams(origin, dest search.Coordinate) url.Values {
	params := url.Values{}
	params.Set("origin", origin.String())
	params.Set("destination", dest.String())
	params.Set("language", Language)
	params.Set("key", c.apiKey)
	return params
}

// directions performs one Directions API call. Transport failures and non-2xx
// answers are errors; the body status is left to the caller.
func (c *Client) directions(ctx context.Context, mode string, params url.Values) (resp *directionsResponse, err error) {
	ctx, span := c.tracer.Start(ctx, "googlemaps.directions",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("directions.mode", mode)),
	)
	start := time.Now()
	defer func() {
		c.metrics.RecordRequest(mode, time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(
				attribute.String("directions.status", resp.Status),
				attribute.Int("directions.routes", len(resp.Routes)),
			)
		}
		span.End()
	}()

	endpoint := c.baseURL + directionsPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("mode", mode).
		Str("origin", params.Get("origin")).
		Str("destination", params.Get("destination")).
		Msg("requesting directions")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &search.ProviderError{
			Provider: DirectionsProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach directions provider",
			Err:      fmt.Errorf("%w: %w", search.ErrProviderUnavailable, err),
		}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, statusError(httpResp.StatusCode)
	}

	var out directionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	c.logger.Debug().
		Str("mode", mode).
		Str("status", out.Status).
		Int("route_count", len(out.Routes)).
		Msg("received directions")

	return &out, nil
}

// statusError maps a non-2xx HTTP status to a provider error.
func statusError(statusCode int) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return &search.ProviderError{
			Provider: DirectionsProviderName,
			Code:     "RATE_LIMIT",
			Message:  "API rate limit exceeded, please try again later",
			Err:      search.ErrRateLimitExceeded,
		}
	case statusCode == http.StatusForbidden:
		return &search.ProviderError{
			Provider: DirectionsProviderName,
			Code:     "FORBIDDEN",
			Message:  "API access denied - check API key configuration",
			Err:      search.ErrProviderUnavailable,
		}
	case statusCode >= 500:
		return &search.ProviderError{
			Provider: DirectionsProviderName,
			Code:     fmt.Sprintf("SERVER_%d", statusCode),
			Message:  "directions provider is temporarily unavailable",
			Err:      search.ErrProviderUnavailable,
		}
	default:
		return &search.ProviderError{
			Provider: DirectionsProviderName,
			Code:     fmt.Sprintf("HTTP_%d", statusCode),
			Message:  fmt.Sprintf("directions provider returned status %d", statusCode),
			Err:      search.ErrProviderUnavailable,
		}
	}
}
