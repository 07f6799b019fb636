// Package handler provides HTTP handlers for the shuuden API.
package handler

import (
	"net/http"
	"time"

	"github.com/shuuden/shuuden/internal/api/models"
	"github.com/shuuden/shuuden/internal/api/response"
	"github.com/shuuden/shuuden/internal/provider/resilience"
)

// OpsConfig holds configuration for the OpsHandler.
type OpsConfig struct {
	Version   string
	BuildTime string
	// HasAPIKey reports whether a Google Maps key is configured.
	HasAPIKey bool
	// Registry tracks provider health (optional). Without it the status
	// endpoint lists no providers.
	Registry *resilience.Registry
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	hasAPIKey bool
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(cfg OpsConfig) *OpsHandler {
	return &OpsHandler{
		version:   cfg.Version,
		buildTime: cfg.BuildTime,
		hasAPIKey: cfg.HasAPIKey,
		registry:  cfg.Registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status:    models.HealthStatusOK,
		HasAPIKey: h.hasAPIKey,
		Timestamp: models.Timestamp(time.Now()),
		Details: map[string]any{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// holds no connections, so it is ready as soon as it serves.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status:    models.HealthStatusOK,
		HasAPIKey: h.hasAPIKey,
		Timestamp: models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider circuit-breaker status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status := models.SystemStatus{
		Status:    models.HealthStatusOK,
		Mode:      "demo",
		Time:      models.Timestamp(time.Now()),
		Providers: []models.ProviderStatus{},
	}
	if h.hasAPIKey {
		status.Mode = "live"
	}

	if h.registry != nil {
		status.Status = models.HealthStatus(h.registry.Overall())
		for _, p := range h.registry.Snapshot() {
			status.Providers = append(status.Providers, providerStatus(p))
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}

func providerStatus(p *resilience.ProviderHealth) models.ProviderStatus {
	ps := models.ProviderStatus{
		Provider:      p.Name,
		Status:        models.HealthStatus(p.Condition()),
		CircuitState:  p.CircuitState.String(),
		Requests:      p.Counts.Requests,
		Failures:      p.Counts.TotalFailures,
		LastSuccessAt: models.NewTimestampPtr(p.LastSuccessAt),
		LastFailureAt: models.NewTimestampPtr(p.LastFailureAt),
	}
	if p.LastError != "" {
		msg := p.LastError
		ps.Message = &msg
	}
	return ps
}
