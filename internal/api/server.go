package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/realtime"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/selling"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	hub        *realtime.Hub
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Analyzer       analyzing.Analyzer
	Reporter       reporting.Reporter
	Seller         selling.Seller
	Catalog        catalog.Catalog
	ReportSnapshot *scheduler.ReportSnapshotService
}

func New(
	config *config.Config,
	services Services,
	hub *realtime.Hub,
	db handler.Pinger,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.ReportSnapshot != nil {
		cronServices.ReportSnapshotService = services.ReportSnapshot
	}

	health := handler.HealthDependencies{
		DB:        db,
		Hub:       hub,
		Config:    config,
		StartedAt: time.Now(),
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(health)...),
		router.WithRoutes(handler.Analytics(services.Analyzer)...),
		router.WithRoutes(handler.Reports(services.Reporter, config.Auth.Secret)...),
		router.WithRoutes(handler.Sales(services.Seller, config.Auth.Secret)...),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Websocket(hub)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.Auth.Secret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		hub: hub,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// conexões websocket são sequestradas e não entram no Shutdown do http.Server
	if s.hub != nil {
		s.hub.Close()
	}

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
