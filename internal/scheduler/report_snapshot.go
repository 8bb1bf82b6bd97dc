package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ReportSnapshotConfig representa a configuração do agendador de snapshots de relatório
type ReportSnapshotConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// ReportSnapshotService gera periodicamente um relatório por dia fechado
type ReportSnapshotService struct {
	scheduler *gocron.Scheduler
	config    ReportSnapshotConfig
	reporter  reporting.Reporter
	now       func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportIDs       []string
	lastError           string
}

func NewReportSnapshotService(reporter reporting.Reporter, appConfig *config.Config) *ReportSnapshotService {
	snapshotConfig := ReportSnapshotConfig{
		CronSchedule: appConfig.ReportSnapshot.CronSchedule,
		LookbackDays: appConfig.ReportSnapshot.LookbackDays,
		Enabled:      appConfig.ReportSnapshot.Enabled,
	}

	if snapshotConfig.LookbackDays < 1 {
		snapshotConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"lookback_days": snapshotConfig.LookbackDays,
		"sync_enabled":  snapshotConfig.Enabled,
	}).Info("Configuração do agendador de snapshots de relatório carregada")

	return &ReportSnapshotService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    snapshotConfig,
		reporter:  reporter,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *ReportSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshots de relatório desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.generateSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de relatório: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de relatório")
		s.scheduler.Stop()
	}()

	return nil
}

// snapshotRanges devolve os dias UTC fechados a gerar, do mais antigo para o mais recente
func (s *ReportSnapshotService) snapshotRanges() []domain.DateRange {
	today := utils.StartOfDayUTC(s.now())

	ranges := make([]domain.DateRange, 0, s.config.LookbackDays)
	for i := s.config.LookbackDays; i >= 1; i-- {
		start := today.AddDate(0, 0, -i)
		ranges = append(ranges, domain.DateRange{
			Start: start,
			End:   start.AddDate(0, 0, 1).Add(-time.Microsecond),
		})
	}

	return ranges
}

func (s *ReportSnapshotService) generateSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	reportIDs := make([]string, 0, s.config.LookbackDays)
	var lastErr error

	for _, dateRange := range s.snapshotRanges() {
		report, err := s.reporter.Generate(ctx, dateRange)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"range_start": dateRange.Start.Format(time.DateOnly),
				"error":       err,
			}).Error("Erro ao gerar snapshot de relatório")
			lastErr = err
			continue
		}
		reportIDs = append(reportIDs, report.ID)
	}

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastReportIDs = reportIDs
	s.lastError = ""
	if lastErr != nil {
		s.lastError = lastErr.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"reports": len(reportIDs),
	}).Info("Geração de snapshots de relatório concluída")
}

// TriggerManualSync inicia manualmente a geração dos snapshots
func (s *ReportSnapshotService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de snapshots de relatório")
	go s.generateSnapshots(context.Background())
	return true
}

// GetStatus retorna o status atual da geração
func (s *ReportSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_ids":        s.lastReportIDs,
		"last_error":             s.lastError,
	}
}
