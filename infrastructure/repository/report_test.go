package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var reportRowColumns = []string{
	"id", "report_date", "start_date", "end_date", "total_revenue", "total_sales", "average_order_value",
	"total_customers", "total_products", "region_stats", "category_stats", "top_products", "top_customers",
	"daily_stats", "payment_method_stats", "created_at",
}

// jsonArg compara o argumento serializado enviado para uma coluna JSONB
type jsonArg string

func (a jsonArg) Match(v driver.Value) bool {
	raw, ok := v.([]byte)
	return ok && string(raw) == string(a)
}

func TestReportRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	report := &domain.AnalyticsReport{
		ID:                "r1",
		ReportDate:        fixedNow,
		StartDate:         testRange.Start,
		EndDate:           testRange.End,
		TotalRevenue:      90,
		TotalSales:        1,
		AverageOrderValue: 90,
		TotalCustomers:    1,
		TotalProducts:     1,
		RegionStats: []domain.RegionStat{
			{Region: domain.RegionNorth, TotalRevenue: 90, TotalSales: 1, TotalCustomers: 1},
		},
		CreatedAt: fixedNow,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analytics_reports (id,report_date,start_date,end_date,total_revenue,total_sales,average_order_value,total_customers,total_products,region_stats,category_stats,top_products,top_customers,daily_stats,payment_method_stats,created_at)")).
		WithArgs(
			"r1", fixedNow, testRange.Start, testRange.End, 90.0, int64(1), 90.0, int64(1), int64(1),
			jsonArg(`[{"region":"North","totalRevenue":90,"totalSales":1,"totalCustomers":1}]`),
			jsonArg(`[]`), jsonArg(`[]`), jsonArg(`[]`), jsonArg(`[]`), jsonArg(`[]`),
			fixedNow,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewReportRepository(db).Save(context.Background(), report)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// capturedArg guarda o valor enviado ao driver para reaproveitá-lo como linha
type capturedArg struct {
	raw []byte
}

func (a *capturedArg) Match(v driver.Value) bool {
	raw, ok := v.([]byte)
	if ok {
		a.raw = raw
	}
	return ok
}

func TestReportRepository_SaveThenGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	report := &domain.AnalyticsReport{
		ID:                "r1",
		ReportDate:        fixedNow,
		StartDate:         testRange.Start,
		EndDate:           testRange.End,
		TotalRevenue:      1250.5,
		TotalSales:        3,
		AverageOrderValue: 416.83,
		TotalCustomers:    2,
		TotalProducts:     2,
		RegionStats: []domain.RegionStat{
			{Region: domain.RegionNorth, TotalRevenue: 1000, TotalSales: 2, TotalCustomers: 1},
			{Region: domain.RegionSouth, TotalRevenue: 250.5, TotalSales: 1, TotalCustomers: 1},
		},
		CategoryStats: []domain.CategoryStat{
			{Category: domain.CategoryHomeAndGarden, TotalRevenue: 1000, TotalSales: 2, TotalQuantity: 4, TotalProducts: 1},
			{Category: domain.CategoryFoodBeverage, TotalRevenue: 250.5, TotalSales: 1, TotalQuantity: 1, TotalProducts: 1},
		},
		TopProducts: []domain.ProductRanking{
			{ProductID: "p1", ProductName: "Cortador de grama", Category: domain.CategoryHomeAndGarden, TotalSales: 4, TotalRevenue: 1000, OrderCount: 2},
		},
		TopCustomers: []domain.CustomerRanking{
			{CustomerID: "c1", CustomerName: "Ana & Filhos", Region: domain.RegionNorth, Type: domain.CustomerTypeBusiness, TotalSpent: 1000, TotalOrders: 2, TotalQuantity: 4},
		},
		DailyStats: []domain.DailySalesStat{
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), TotalRevenue: 1000, TotalSales: 2, TotalCustomers: 1},
			{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), TotalRevenue: 250.5, TotalSales: 1, TotalCustomers: 1},
		},
		PaymentMethodStats: []domain.PaymentMethodStat{
			{PaymentMethod: domain.PaymentCreditCard, TotalAmount: 1250.5, Count: 3, AverageAmount: 416.83},
		},
		CreatedAt: fixedNow,
	}

	breakdowns := make([]*capturedArg, 6)
	args := []driver.Value{"r1", fixedNow, testRange.Start, testRange.End, 1250.5, int64(3), 416.83, int64(2), int64(2)}
	for i := range breakdowns {
		breakdowns[i] = &capturedArg{}
		args = append(args, breakdowns[i])
	}
	args = append(args, fixedNow)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analytics_reports")).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewReportRepository(db)
	require.NoError(t, repo.Save(context.Background(), report))

	row := []driver.Value{"r1", fixedNow, testRange.Start, testRange.End, 1250.5, int64(3), 416.83, int64(2), int64(2)}
	for _, breakdown := range breakdowns {
		require.NotEmpty(t, breakdown.raw)
		row = append(row, breakdown.raw)
	}
	row = append(row, fixedNow)

	mock.ExpectQuery(regexp.QuoteMeta("FROM analytics_reports WHERE id = $1")).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(reportRowColumns).AddRow(row...))

	loaded, err := repo.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, report.RegionStats, loaded.RegionStats)
	assert.Equal(t, report.CategoryStats, loaded.CategoryStats)
	assert.Equal(t, report.TopProducts, loaded.TopProducts)
	assert.Equal(t, report.TopCustomers, loaded.TopCustomers)
	assert.Equal(t, report.DailyStats, loaded.DailyStats)
	assert.Equal(t, report.PaymentMethodStats, loaded.PaymentMethodStats)
	assert.Equal(t, report.TotalRevenue, loaded.TotalRevenue)
	assert.Equal(t, report.AverageOrderValue, loaded.AverageOrderValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	daily := `[{"date":"2024-01-05T00:00:00Z","totalRevenue":90,"totalSales":1,"totalCustomers":1}]`

	mock.ExpectQuery(regexp.QuoteMeta("FROM analytics_reports ORDER BY report_date DESC, created_at DESC LIMIT 10 OFFSET 10")).
		WillReturnRows(sqlmock.NewRows(reportRowColumns).
			AddRow("r2", fixedNow, testRange.Start, testRange.End, 90.0, int64(1), 90.0, int64(1), int64(1),
				[]byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(daily), []byte(`[]`), fixedNow))

	reports, err := NewReportRepository(db).List(context.Background(), 10, 10)

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "r2", reports[0].ID)
	require.Len(t, reports[0].DailyStats, 1)
	assert.True(t, reports[0].DailyStats[0].Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.NotNil(t, reports[0].TopProducts)
	assert.Empty(t, reports[0].TopProducts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM analytics_reports")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))

	total, err := NewReportRepository(db).Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_GetByID(t *testing.T) {
	t.Run("relatório inexistente retorna nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM analytics_reports WHERE id = $1")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(reportRowColumns))

		report, err := NewReportRepository(db).GetByID(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("JSON inválido no breakdown", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM analytics_reports WHERE id = $1")).
			WithArgs("r1").
			WillReturnRows(sqlmock.NewRows(reportRowColumns).
				AddRow("r1", fixedNow, testRange.Start, testRange.End, 0.0, int64(0), 0.0, int64(0), int64(0),
					[]byte(`{broken`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), []byte(`[]`), fixedNow))

		report, err := NewReportRepository(db).GetByID(context.Background(), "r1")

		require.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("erro de conexão", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM analytics_reports")).
			WillReturnError(errors.New("connection refused"))

		_, err = NewReportRepository(db).GetByID(context.Background(), "r1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
