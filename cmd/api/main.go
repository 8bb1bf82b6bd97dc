package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/pubsub"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/realtime"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg)
	defer pgConn.Close()

	if err := migration.Run(pgConn.DB, cfg.Database.AutoMigrate); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	hub := realtime.NewHub(cfg.Cors.AllowedOrigins)

	var notifier selling.SaleNotifier = hub
	var sellerOpts []selling.Option

	// Com Redis configurado o evento passa pelo canal e cada instância entrega aos seus clientes
	if cfg.Redis.URL != "" {
		redisClient, err := pubsub.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		defer redisClient.Close()

		notifier = pubsub.NewRedisNotifier(redisClient, cfg.Redis.Channel)
		sellerOpts = append(sellerOpts, selling.WithDetachedNotifications())

		relay := pubsub.NewRelay(redisClient, cfg.Redis.Channel, hub)
		go func() {
			if err := relay.Run(ctx); err != nil {
				logrus.WithError(err).Error("Relay do Redis encerrado com erro")
			}
		}()
	}

	analyzer := analyzing.NewService(analyticsRepo)
	reporter := reporting.NewService(analyticsRepo, reportRepo)
	seller := selling.NewService(saleRepo, customerRepo, productRepo, notifier, sellerOpts...)
	catalogService := catalog.NewService(customerRepo, productRepo)

	reportSnapshotService := scheduler.NewReportSnapshotService(reporter, cfg)

	if err := reportSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de relatório")
	} else {
		logrus.Info("Agendador de snapshots de relatório iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		api.Services{
			Analyzer:       analyzer,
			Reporter:       reporter,
			Seller:         seller,
			Catalog:        catalogService,
			ReportSnapshot: reportSnapshotService,
		},
		hub,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados. Em produção tenta indefinidamente
func pgconn(ctx context.Context, cfg *config.Config) *postgres.Connection {
	logrus.WithField("dsn", cfg.Database.MaskedDSN()).Info("Conectando ao PostgreSQL")

	conn, err := postgres.ConnectWithRetry(ctx, cfg.Database, cfg.App.IsProduction())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
