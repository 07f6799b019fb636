package search

import "errors"

// Sentinel errors for search operations.
var (
	// ErrInvalidCoordinates indicates a coordinate outside the valid lat/lng range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrProviderUnavailable indicates the directions provider could not be reached
	// or answered with a transport-level failure.
	ErrProviderUnavailable = errors.New("directions provider unavailable")
	// ErrRateLimitExceeded indicates the provider quota has been exhausted.
	ErrRateLimitExceeded = errors.New("provider rate limit exceeded")
	// ErrNoGeocodeResult indicates reverse geocoding returned no place.
	ErrNoGeocodeResult = errors.New("no geocoding result")
)

// ProviderError describes a failed call to an external provider.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := e.Provider + ": " + e.Message
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
