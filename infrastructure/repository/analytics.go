// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable = "sales s"

	joinProducts  = "products p ON p.id = s.product_id"
	joinCustomers = "customers c ON c.id = s.customer_id"

	// desempate pela ordem de inserção
	insertionOrder = "MIN(s.created_at) ASC"
)

// AnalyticsRepository executa as agregações sobre vendas concluídas dentro do intervalo
type AnalyticsRepository interface {
	GetTotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error)
	GetRegionStats(ctx context.Context, dateRange domain.DateRange) ([]domain.RegionStat, error)
	GetCategoryStats(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryStat, error)
	GetTopProducts(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.ProductRanking, error)
	GetTopCustomers(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.CustomerRanking, error)
	GetDailySalesTrend(ctx context.Context, dateRange domain.DateRange) ([]domain.DailySalesStat, error)
	GetPaymentMethodStats(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentMethodStat, error)
	CountDistinctCustomers(ctx context.Context, dateRange domain.DateRange) (int64, error)
	CountDistinctProducts(ctx context.Context, dateRange domain.DateRange) (int64, error)
}

type analyticsRepository struct {
	db postgres.Queryer
}

func NewAnalyticsRepository(db postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// completedInRange aplica o filtro base de todas as agregações
func completedInRange(builder squirrel.SelectBuilder, dateRange domain.DateRange) squirrel.SelectBuilder {
	return builder.
		From(salesTable).
		Where(squirrel.Eq{"s.status": string(domain.SaleStatusCompleted)}).
		Where(squirrel.GtOrEq{"s.report_date": dateRange.Start}).
		Where(squirrel.LtOrEq{"s.report_date": dateRange.End}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *analyticsRepository) query(ctx context.Context, op string, builder squirrel.SelectBuilder, scan func(rows *sql.Rows) error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de %s: %w", op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query de %s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("erro ao escanear %s: %w", op, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de %s: %w", op, err)
	}

	return nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context, dateRange domain.DateRange) (*domain.RevenueSummary, error) {
	builder := completedInRange(squirrel.Select(
		"COALESCE(SUM(s.final_amount), 0) AS total_revenue",
		"COUNT(*) AS total_sales",
		"COALESCE(ROUND(AVG(s.final_amount), 2), 0) AS average_order_value",
	), dateRange)

	summary := &domain.RevenueSummary{}
	err := r.query(ctx, "receita total", builder, func(rows *sql.Rows) error {
		return rows.Scan(&summary.TotalRevenue, &summary.TotalSales, &summary.AverageOrderValue)
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *analyticsRepository) GetRegionStats(ctx context.Context, dateRange domain.DateRange) ([]domain.RegionStat, error) {
	builder := completedInRange(squirrel.Select(
		"s.region",
		"COALESCE(SUM(s.final_amount), 0) AS total_revenue",
		"COUNT(*) AS total_sales",
		"COUNT(DISTINCT s.customer_id) AS total_customers",
	), dateRange).
		GroupBy("s.region").
		OrderBy("total_revenue DESC", "s.region ASC")

	stats := make([]domain.RegionStat, 0)
	err := r.query(ctx, "estatísticas por região", builder, func(rows *sql.Rows) error {
		var stat domain.RegionStat
		if err := rows.Scan(&stat.Region, &stat.TotalRevenue, &stat.TotalSales, &stat.TotalCustomers); err != nil {
			return err
		}
		stats = append(stats, stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) GetCategoryStats(ctx context.Context, dateRange domain.DateRange) ([]domain.CategoryStat, error) {
	builder := completedInRange(squirrel.Select(
		"p.category",
		"COALESCE(SUM(s.final_amount), 0) AS total_revenue",
		"COUNT(*) AS total_sales",
		"COALESCE(SUM(s.quantity), 0) AS total_quantity",
		"COUNT(DISTINCT s.product_id) AS total_products",
	), dateRange).
		Join(joinProducts).
		GroupBy("p.category").
		OrderBy("total_revenue DESC", "p.category ASC")

	stats := make([]domain.CategoryStat, 0)
	err := r.query(ctx, "estatísticas por categoria", builder, func(rows *sql.Rows) error {
		var stat domain.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.TotalRevenue, &stat.TotalSales, &stat.TotalQuantity, &stat.TotalProducts); err != nil {
			return err
		}
		stats = append(stats, stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.ProductRanking, error) {
	builder := completedInRange(squirrel.Select(
		"s.product_id",
		"p.name",
		"p.category",
		"COALESCE(SUM(s.quantity), 0) AS total_quantity",
		"COALESCE(SUM(s.final_amount), 0) AS total_revenue",
		"COUNT(*) AS order_count",
	), dateRange).
		Join(joinProducts).
		GroupBy("s.product_id", "p.name", "p.category").
		OrderBy("total_quantity DESC", insertionOrder).
		Limit(uint64(domain.ClampTopLimit(limit)))

	ranking := make([]domain.ProductRanking, 0)
	err := r.query(ctx, "produtos mais vendidos", builder, func(rows *sql.Rows) error {
		var item domain.ProductRanking
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Category, &item.TotalSales, &item.TotalRevenue, &item.OrderCount); err != nil {
			return err
		}
		ranking = append(ranking, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ranking, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, dateRange domain.DateRange, limit int) ([]domain.CustomerRanking, error) {
	builder := completedInRange(squirrel.Select(
		"s.customer_id",
		"c.name",
		"c.region",
		"c.customer_type",
		"COALESCE(SUM(s.final_amount), 0) AS total_spent",
		"COUNT(*) AS total_orders",
		"COALESCE(SUM(s.quantity), 0) AS total_quantity",
	), dateRange).
		Join(joinCustomers).
		GroupBy("s.customer_id", "c.name", "c.region", "c.customer_type").
		OrderBy("total_spent DESC", insertionOrder).
		Limit(uint64(domain.ClampTopLimit(limit)))

	ranking := make([]domain.CustomerRanking, 0)
	err := r.query(ctx, "melhores clientes", builder, func(rows *sql.Rows) error {
		var item domain.CustomerRanking
		if err := rows.Scan(&item.CustomerID, &item.CustomerName, &item.Region, &item.Type, &item.TotalSpent, &item.TotalOrders, &item.TotalQuantity); err != nil {
			return err
		}
		ranking = append(ranking, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ranking, nil
}

func (r *analyticsRepository) GetDailySalesTrend(ctx context.Context, dateRange domain.DateRange) ([]domain.DailySalesStat, error) {
	builder := completedInRange(squirrel.Select(
		"(s.report_date AT TIME ZONE 'UTC')::date AS sale_day",
		"COALESCE(SUM(s.final_amount), 0) AS total_revenue",
		"COUNT(*) AS total_sales",
		"COUNT(DISTINCT s.customer_id) AS total_customers",
	), dateRange).
		GroupBy("sale_day").
		OrderBy("sale_day ASC")

	trend := make([]domain.DailySalesStat, 0)
	err := r.query(ctx, "tendência diária", builder, func(rows *sql.Rows) error {
		var stat domain.DailySalesStat
		var day time.Time
		if err := rows.Scan(&day, &stat.TotalRevenue, &stat.TotalSales, &stat.TotalCustomers); err != nil {
			return err
		}
		stat.Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		trend = append(trend, stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return trend, nil
}

func (r *analyticsRepository) GetPaymentMethodStats(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentMethodStat, error) {
	builder := completedInRange(squirrel.Select(
		"s.payment_method",
		"COALESCE(SUM(s.final_amount), 0) AS total_amount",
		"COUNT(*) AS sales_count",
		"COALESCE(ROUND(AVG(s.final_amount), 2), 0) AS average_amount",
	), dateRange).
		GroupBy("s.payment_method").
		OrderBy("total_amount DESC", "s.payment_method ASC")

	stats := make([]domain.PaymentMethodStat, 0)
	err := r.query(ctx, "formas de pagamento", builder, func(rows *sql.Rows) error {
		var stat domain.PaymentMethodStat
		if err := rows.Scan(&stat.PaymentMethod, &stat.TotalAmount, &stat.Count, &stat.AverageAmount); err != nil {
			return err
		}
		stats = append(stats, stat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) CountDistinctCustomers(ctx context.Context, dateRange domain.DateRange) (int64, error) {
	return r.countDistinct(ctx, "s.customer_id", "clientes distintos", dateRange)
}

func (r *analyticsRepository) CountDistinctProducts(ctx context.Context, dateRange domain.DateRange) (int64, error) {
	return r.countDistinct(ctx, "s.product_id", "produtos distintos", dateRange)
}

func (r *analyticsRepository) countDistinct(ctx context.Context, column, op string, dateRange domain.DateRange) (int64, error) {
	builder := completedInRange(squirrel.Select("COUNT(DISTINCT "+column+")"), dateRange)

	var total int64
	err := r.query(ctx, op, builder, func(rows *sql.Rows) error {
		return rows.Scan(&total)
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}
