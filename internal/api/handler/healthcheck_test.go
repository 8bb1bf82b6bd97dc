package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeCounter int

func (f fakeCounter) ClientCount() int { return int(f) }

func healthDeps(pingErr error) HealthDependencies {
	return HealthDependencies{
		DB:  fakePinger{err: pingErr},
		Hub: fakeCounter(3),
		Config: &config.Config{
			App:      config.App{Env: "development"},
			Server:   config.Server{Port: "5000"},
			Database: config.Database{Driver: "postgres", User: "app", Password: "s3cr3t", URL: "db:5432/sales"},
			Redis:    config.Redis{URL: "redis://cache:6379/0"},
		},
		StartedAt: time.Now().Add(-time.Minute),
	}
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name             string
		pingErr          error
		expectedStatus   int
		expectedDatabase string
	}{
		{name: "banco conectado", expectedStatus: http.StatusOK, expectedDatabase: "connected"},
		{name: "banco fora do ar", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedDatabase: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(Healthcheck(healthDeps(tt.pingErr)), http.MethodGet, "/api/health", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus == http.StatusOK, body.Success)
			assert.Equal(t, tt.expectedDatabase, body.Services.Database)
			assert.Equal(t, "active", body.Services.Websocket)
			assert.Equal(t, "development", body.Environment)
			assert.GreaterOrEqual(t, body.Uptime, 60.0)
		})
	}
}

func TestDetailedHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(healthDeps(nil)), http.MethodGet, "/api/health/detailed", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cr3t")

	var body DetailedHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "connected", body.Services.Database.Status)
	assert.Equal(t, "postgres://app:****@db:5432/sales", body.Services.Database.DSN)
	assert.Equal(t, 3, body.Services.Websocket.Connections)
	assert.Positive(t, body.Memory.Sys)
	assert.Equal(t, "***configured***", body.EnvironmentVariables["REDIS_URL"])
	assert.Equal(t, "not set", body.EnvironmentVariables["AUTH_SECRET"])
}
