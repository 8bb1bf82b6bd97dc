package reporting

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Reporter interface {
	// Generate calcula e persiste um snapshot do intervalo, retornando o mesmo valor gravado
	Generate(ctx context.Context, dateRange domain.DateRange) (*domain.AnalyticsReport, error)
	List(ctx context.Context, page, limit int) (*domain.ReportPage, error)
	Get(ctx context.Context, id string) (*domain.AnalyticsReport, error)
}

type Service struct {
	analyticsRepository repository.AnalyticsRepository
	reportRepository    repository.ReportRepository
	now                 func() time.Time
}

func NewService(
	analyticsRepository repository.AnalyticsRepository,
	reportRepository repository.ReportRepository,
) Reporter {
	return &Service{
		analyticsRepository: analyticsRepository,
		reportRepository:    reportRepository,
		now: func() time.Time {
			// precisão de microssegundos do timestamptz
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

func (s *Service) Generate(ctx context.Context, dateRange domain.DateRange) (*domain.AnalyticsReport, error) {
	// mesma precisão do timestamptz gravado
	dateRange.Start = dateRange.Start.Truncate(time.Microsecond)
	dateRange.End = dateRange.End.Truncate(time.Microsecond)

	report := &domain.AnalyticsReport{
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
	}

	var g errgroup.Group

	g.Go(func() error {
		summary, err := s.analyticsRepository.GetTotalRevenue(ctx, dateRange)
		if err != nil {
			return &ReportGenerationError{Stage: "revenue", Err: err}
		}
		report.TotalRevenue = summary.TotalRevenue
		report.TotalSales = summary.TotalSales
		report.AverageOrderValue = summary.AverageOrderValue
		return nil
	})

	g.Go(func() (err error) {
		if report.RegionStats, err = s.analyticsRepository.GetRegionStats(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "regions", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.CategoryStats, err = s.analyticsRepository.GetCategoryStats(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "categories", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.TopProducts, err = s.analyticsRepository.GetTopProducts(ctx, dateRange, domain.ReportTopLimit); err != nil {
			return &ReportGenerationError{Stage: "top-products", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.TopCustomers, err = s.analyticsRepository.GetTopCustomers(ctx, dateRange, domain.ReportTopLimit); err != nil {
			return &ReportGenerationError{Stage: "top-customers", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.DailyStats, err = s.analyticsRepository.GetDailySalesTrend(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "daily-trend", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.PaymentMethodStats, err = s.analyticsRepository.GetPaymentMethodStats(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "payment-methods", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.TotalCustomers, err = s.analyticsRepository.CountDistinctCustomers(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "distinct-customers", Err: err}
		}
		return nil
	})

	g.Go(func() (err error) {
		if report.TotalProducts, err = s.analyticsRepository.CountDistinctProducts(ctx, dateRange); err != nil {
			return &ReportGenerationError{Stage: "distinct-products", Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"range_start": dateRange.Start,
			"range_end":   dateRange.End,
			"error":       err,
		}).Error("Erro ao calcular relatório")
		return nil, err
	}

	now := s.now()
	report.ID = uuid.NewString()
	report.ReportDate = now
	report.CreatedAt = now

	if err := s.reportRepository.Save(ctx, report); err != nil {
		logrus.WithFields(logrus.Fields{
			"report_id": report.ID,
			"error":     err,
		}).Error("Erro ao salvar relatório")
		return nil, &ReportGenerationError{Stage: "save", Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"report_id":    report.ID,
		"report_sales": report.TotalSales,
	}).Info("Relatório gerado com sucesso")

	return report, nil
}

// List pagina os relatórios do mais recente para o mais antigo
func (s *Service) List(ctx context.Context, page, limit int) (*domain.ReportPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = domain.DefaultReportPageLimit
	}
	if limit > domain.MaxReportPageLimit {
		limit = domain.MaxReportPageLimit
	}

	total, err := s.reportRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportListing, err)
	}

	reports, err := s.reportRepository.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportListing, err)
	}

	return &domain.ReportPage{
		Reports:    reports,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.AnalyticsReport, error) {
	report, err := s.reportRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportListing, err)
	}

	if report == nil {
		return nil, ErrReportNotFound
	}

	return report, nil
}
