package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuuden/shuuden/internal/config"
	"github.com/shuuden/shuuden/internal/telemetry"
)

func TestInit_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "shuuden-api",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		Endpoint:       "localhost:4317",
		Enabled:        false,
	})

	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.Nil(t, provider.TracerProvider)
	assert.Nil(t, provider.MeterProvider)
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestProvider_Shutdown_NilProviders(t *testing.T) {
	provider := &telemetry.Provider{}
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestFromAppConfig(t *testing.T) {
	cfg := &config.Config{
		Env:                "production",
		OTelEnabled:        true,
		OTLPEndpoint:       "collector:4317",
		OTelSampleRatio:    0.5,
		OTelMetricInterval: 30 * time.Second,
	}

	got := telemetry.FromAppConfig(cfg, "shuuden-api", "1.2.3")

	assert.Equal(t, telemetry.Config{
		ServiceName:    "shuuden-api",
		ServiceVersion: "1.2.3",
		Environment:    "production",
		Enabled:        true,
		Endpoint:       "collector:4317",
		SampleRatio:    0.5,
		MetricInterval: 30 * time.Second,
	}, got)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"unset keeps all", 0, "AlwaysOnSampler"},
		{"negative keeps all", -0.5, "AlwaysOnSampler"},
		{"one keeps all", 1, "AlwaysOnSampler"},
		{"above one keeps all", 2, "AlwaysOnSampler"},
		{"fraction samples roots", 0.25, "ParentBased{root:TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := telemetry.Sampler(tt.ratio).Description()
			assert.Contains(t, desc, tt.want)
		})
	}
}

func TestProviderMetrics_RecordRequest(t *testing.T) {
	m, err := telemetry.NewProviderMetrics("google-directions")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.RecordRequest("transit", 120*time.Millisecond, nil)
		m.RecordRequest("driving", time.Second, errors.New("timeout"))
	})
}

func TestProviderMetrics_NilIsNoop(t *testing.T) {
	var m *telemetry.ProviderMetrics
	assert.NotPanics(t, func() {
		m.RecordRequest("transit", time.Millisecond, nil)
	})
}
