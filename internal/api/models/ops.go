package models

// Health is the liveness and readiness body.
type Health struct {
	Status    HealthStatus   `json:"status"`
	HasAPIKey bool           `json:"hasApiKey"`
	Timestamp Timestamp      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// SystemStatus reports the overall service status and each provider.
type SystemStatus struct {
	Status    HealthStatus     `json:"status"`
	Mode      string           `json:"mode"`
	Time      Timestamp        `json:"time"`
	Providers []ProviderStatus `json:"providers"`
}

// ProviderStatus is the circuit-breaker view of one external provider.
type ProviderStatus struct {
	Provider      string       `json:"provider"`
	Status        HealthStatus `json:"status"`
	CircuitState  string       `json:"circuitState"`
	Requests      uint32       `json:"requests"`
	Failures      uint32       `json:"failures"`
	LastSuccessAt *Timestamp   `json:"lastSuccessAt,omitempty"`
	LastFailureAt *Timestamp   `json:"lastFailureAt,omitempty"`
	Message       *string      `json:"message,omitempty"`
}
