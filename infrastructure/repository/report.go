package repository

//go:generate mockgen -source=report.go -destination=mocks/report.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	reportsTable = "analytics_reports"
)

var reportColumns = []string{
	"id",
	"report_date",
	"start_date",
	"end_date",
	"total_revenue",
	"total_sales",
	"average_order_value",
	"total_customers",
	"total_products",
	"region_stats",
	"category_stats",
	"top_products",
	"top_customers",
	"daily_stats",
	"payment_method_stats",
	"created_at",
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReportRepository interface {
	Save(ctx context.Context, report *domain.AnalyticsReport) error
	List(ctx context.Context, offset, limit int) ([]*domain.AnalyticsReport, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.AnalyticsReport, error)
}

type reportRepository struct {
	db postgres.Queryer
}

func NewReportRepository(db postgres.Queryer) ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Save insere o relatório uma única vez, os breakdowns vão como JSONB
func (r *reportRepository) Save(ctx context.Context, report *domain.AnalyticsReport) error {
	breakdowns := []any{
		nonNil(report.RegionStats),
		nonNil(report.CategoryStats),
		nonNil(report.TopProducts),
		nonNil(report.TopCustomers),
		nonNil(report.DailyStats),
		nonNil(report.PaymentMethodStats),
	}

	encoded := make([]any, 0, len(breakdowns))
	for _, breakdown := range breakdowns {
		raw, err := json.Marshal(breakdown)
		if err != nil {
			return fmt.Errorf("erro ao serializar breakdown do relatório: %w", err)
		}
		encoded = append(encoded, raw)
	}

	values := append([]any{
		report.ID,
		report.ReportDate,
		report.StartDate,
		report.EndDate,
		report.TotalRevenue,
		report.TotalSales,
		report.AverageOrderValue,
		report.TotalCustomers,
		report.TotalProducts,
	}, encoded...)
	values = append(values, report.CreatedAt)

	query, args, err := squirrel.
		Insert(reportsTable).
		Columns(reportColumns...).
		Values(values...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar relatório: %w", err)
	}

	return nil
}

// List retorna os relatórios do mais recente para o mais antigo
func (r *reportRepository) List(ctx context.Context, offset, limit int) ([]*domain.AnalyticsReport, error) {
	query, args, err := squirrel.
		Select(reportColumns...).
		From(reportsTable).
		OrderBy("report_date DESC", "created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.AnalyticsReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(reportsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar relatórios: %w", err)
	}

	return total, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.AnalyticsReport, error) {
	query, args, err := squirrel.
		Select(reportColumns...).
		From(reportsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanReport(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

func scanReport(row rowScanner) (*domain.AnalyticsReport, error) {
	report := &domain.AnalyticsReport{}

	var regionStats, categoryStats, topProducts, topCustomers, dailyStats, paymentStats []byte
	err := row.Scan(
		&report.ID,
		&report.ReportDate,
		&report.StartDate,
		&report.EndDate,
		&report.TotalRevenue,
		&report.TotalSales,
		&report.AverageOrderValue,
		&report.TotalCustomers,
		&report.TotalProducts,
		&regionStats,
		&categoryStats,
		&topProducts,
		&topCustomers,
		&dailyStats,
		&paymentStats,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	targets := []struct {
		raw  []byte
		dest any
	}{
		{regionStats, &report.RegionStats},
		{categoryStats, &report.CategoryStats},
		{topProducts, &report.TopProducts},
		{topCustomers, &report.TopCustomers},
		{dailyStats, &report.DailyStats},
		{paymentStats, &report.PaymentMethodStats},
	}
	for _, target := range targets {
		if len(target.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(target.raw, target.dest); err != nil {
			return nil, fmt.Errorf("erro ao desserializar breakdown do relatório: %w", err)
		}
	}

	ensureBreakdowns(report)

	return report, nil
}

func ensureBreakdowns(report *domain.AnalyticsReport) {
	if report.RegionStats == nil {
		report.RegionStats = []domain.RegionStat{}
	}
	if report.CategoryStats == nil {
		report.CategoryStats = []domain.CategoryStat{}
	}
	if report.TopProducts == nil {
		report.TopProducts = []domain.ProductRanking{}
	}
	if report.TopCustomers == nil {
		report.TopCustomers = []domain.CustomerRanking{}
	}
	if report.DailyStats == nil {
		report.DailyStats = []domain.DailySalesStat{}
	}
	if report.PaymentMethodStats == nil {
		report.PaymentMethodStats = []domain.PaymentMethodStat{}
	}
}

// nonNil garante "[]" em vez de "null" na coluna JSONB
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
