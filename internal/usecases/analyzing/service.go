package analyzing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Analyzer expõe as agregações sobre vendas concluídas de um intervalo
type Analyzer interface {
	GetTotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error)
	GetRegionStats(ctx context.Context, dateRange domain.DateRange) ([]domain.RegionStat, error)
	GetCategoryStats(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryStat, error)
	GetTopProducts(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.ProductRanking, error)
	GetTopCustomers(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.CustomerRanking, error)
	GetDailySalesTrend(ctx context.Context, dateRange domain.DateRange) ([]domain.DailySalesStat, error)
	GetPaymentMethodStats(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentMethodStat, error)

	// GetDashboard executa as sete agregações em paralelo com rankings limitados a 5
	GetDashboard(ctx context.Context, dateRange domain.DateRange) (*domain.Dashboard, error)
}

type Service struct {
	analyticsRepository repository.AnalyticsRepository
}

func NewService(analyticsRepository repository.AnalyticsRepository) Analyzer {
	return &Service{
		analyticsRepository: analyticsRepository,
	}
}

func logQueryFailure(op string, dateRange domain.DateRange, err error) {
	logrus.WithFields(logrus.Fields{
		"operation":   op,
		"range_start": dateRange.Start,
		"range_end":   dateRange.End,
		"error":       err,
	}).Error("Erro ao executar agregação")
}

func (s *Service) GetTotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error) {
	summary, err := s.analyticsRepository.GetTotalRevenue(ctx, dateRange)
	if err != nil {
		logQueryFailure("revenue", dateRange, err)
		return nil, newQueryError("revenue", err)
	}
	return summary, nil
}

func (s *Service) GetRegionStats(ctx context.Context, dateRange domain.DateRange) ([]domain.RegionStat, error) {
	stats, err := s.analyticsRepository.GetRegionStats(ctx, dateRange)
	if err != nil {
		logQueryFailure("regions", dateRange, err)
		return nil, newQueryError("regions", err)
	}
	return stats, nil
}

func (s *Service) GetCategoryStats(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryStat, error) {
	stats, err := s.analyticsRepository.GetCategoryStats(ctx, dateRange)
	if err != nil {
		logQueryFailure("categories", dateRange, err)
		return nil, newQueryError("categories", err)
	}
	return stats, nil
}

func (s *Service) GetTopProducts(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.ProductRanking, error) {
	ranking, err := s.analyticsRepository.GetTopProducts(ctx, dateRange, domain.ClampTopLimit(limit))
	if err != nil {
		logQueryFailure("top-products", dateRange, err)
		return nil, newQueryError("top-products", err)
	}
	return ranking, nil
}

func (s *Service) GetTopCustomers(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.CustomerRanking, error) {
	ranking, err := s.analyticsRepository.GetTopCustomers(ctx, dateRange, domain.ClampTopLimit(limit))
	if err != nil {
		logQueryFailure("top-customers", dateRange, err)
		return nil, newQueryError("top-customers", err)
	}
	return ranking, nil
}

func (s *Service) GetDailySalesTrend(ctx context.Context, dateRange domain.DateRange) ([]domain.DailySalesStat, error) {
	trend, err := s.analyticsRepository.GetDailySalesTrend(ctx, dateRange)
	if err != nil {
		logQueryFailure("daily-trend", dateRange, err)
		return nil, newQueryError("daily-trend", err)
	}
	return trend, nil
}

func (s *Service) GetPaymentMethodStats(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentMethodStat, error) {
	stats, err := s.analyticsRepository.GetPaymentMethodStats(ctx, dateRange)
	if err != nil {
		logQueryFailure("payment-methods", dateRange, err)
		return nil, newQueryError("payment-methods", err)
	}
	return stats, nil
}

func (s *Service) GetDashboard(ctx context.Context, dateRange domain.DateRange) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}

	// sem cancelamento antecipado, todas as consultas terminam antes do retorno
	var g errgroup.Group

	g.Go(func() error {
		summary, err := s.GetTotalRevenue(ctx, dateRange)
		if err != nil {
			return err
		}
		dashboard.Summary = *summary
		return nil
	})

	g.Go(func() (err error) {
		dashboard.RegionStats, err = s.GetRegionStats(ctx, dateRange)
		return err
	})

	g.Go(func() (err error) {
		dashboard.CategoryStats, err = s.GetCategoryStats(ctx, dateRange)
		return err
	})

	g.Go(func() (err error) {
		dashboard.TopProducts, err = s.GetTopProducts(ctx, dateRange, domain.DashboardTopLimit)
		return err
	})

	g.Go(func() (err error) {
		dashboard.TopCustomers, err = s.GetTopCustomers(ctx, dateRange, domain.DashboardTopLimit)
		return err
	})

	g.Go(func() (err error) {
		dashboard.DailyTrend, err = s.GetDailySalesTrend(ctx, dateRange)
		return err
	})

	g.Go(func() (err error) {
		dashboard.PaymentStats, err = s.GetPaymentMethodStats(ctx, dateRange)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dashboard, nil
}
