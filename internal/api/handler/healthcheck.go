package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

const (
	healthPingTimeout = 2 * time.Second
	version           = "1.0.0"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ConnectionCounter interface {
	ClientCount() int
}

// HealthDependencies reúne o que as rotas de saúde inspecionam
type HealthDependencies struct {
	DB        Pinger
	Hub       ConnectionCounter
	Config    *config.Config
	StartedAt time.Time
}

type healthServices struct {
	Database  string `json:"database"`
	Websocket string `json:"websocket"`
}

type HealthResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	Timestamp   time.Time      `json:"timestamp"`
	Uptime      float64        `json:"uptime"`
	Environment string         `json:"environment"`
	Version     string         `json:"version"`
	Services    healthServices `json:"services"`
}

type databaseHealth struct {
	Status string `json:"status"`
	DSN    string `json:"dsn"`
}

type websocketHealth struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}

type memoryHealth struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapInUse  uint64 `json:"heapInUse"`
	NumGC      uint32 `json:"numGC"`
	Goroutines int    `json:"goroutines"`
}

type DetailedHealthResponse struct {
	Success     bool         `json:"success"`
	Timestamp   time.Time    `json:"timestamp"`
	Uptime      float64      `json:"uptime"`
	Environment string       `json:"environment"`
	Version     string       `json:"version"`
	Memory      memoryHealth `json:"memory"`
	Services    struct {
		Database  databaseHealth  `json:"database"`
		Websocket websocketHealth `json:"websocket"`
	} `json:"services"`
	EnvironmentVariables map[string]string `json:"environment_variables"`
}

func (d HealthDependencies) databaseStatus(ctx context.Context) string {
	if d.DB == nil {
		return "disconnected"
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := d.DB.Ping(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Banco de dados indisponível no healthcheck")
		return "disconnected"
	}

	return "connected"
}

func (d HealthDependencies) websocketStatus() string {
	if d.Hub == nil {
		return "inactive"
	}
	return "active"
}

func (d HealthDependencies) uptime() float64 {
	return time.Since(d.StartedAt).Seconds()
}

func HealthcheckHandler(deps HealthDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Success:     true,
			Message:     "Everything looks good! The analytics system is running smoothly",
			Timestamp:   time.Now().UTC(),
			Uptime:      deps.uptime(),
			Environment: deps.Config.App.Env,
			Version:     version,
			Services: healthServices{
				Database:  deps.databaseStatus(r.Context()),
				Websocket: deps.websocketStatus(),
			},
		}

		status := http.StatusOK
		if response.Services.Database != "connected" {
			response.Success = false
			response.Message = "Oops! Something is not quite right with our system"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, r, status, response)
	}
}

func DetailedHealthcheckHandler(deps HealthDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		response := DetailedHealthResponse{
			Success:     true,
			Timestamp:   time.Now().UTC(),
			Uptime:      deps.uptime(),
			Environment: deps.Config.App.Env,
			Version:     version,
			Memory: memoryHealth{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapInUse:  mem.HeapInuse,
				NumGC:      mem.NumGC,
				Goroutines: runtime.NumGoroutine(),
			},
			EnvironmentVariables: maskedEnvironment(deps.Config),
		}

		response.Services.Database = databaseHealth{
			Status: deps.databaseStatus(r.Context()),
			DSN:    deps.Config.Database.MaskedDSN(),
		}
		response.Services.Websocket = websocketHealth{Status: deps.websocketStatus()}
		if deps.Hub != nil {
			response.Services.Websocket.Connections = deps.Hub.ClientCount()
		}

		status := http.StatusOK
		if response.Services.Database.Status != "connected" {
			response.Success = false
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, r, status, response)
	}
}

func maskedEnvironment(cfg *config.Config) map[string]string {
	configured := func(value string) string {
		if value == "" {
			return "not set"
		}
		return "***configured***"
	}

	return map[string]string{
		"APP_ENV":     cfg.App.Env,
		"PORT":        cfg.Server.Port,
		"AUTH_SECRET": configured(cfg.Auth.Secret),
		"REDIS_URL":   configured(cfg.Redis.URL),
	}
}
