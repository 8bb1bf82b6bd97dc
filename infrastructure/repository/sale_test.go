package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newSaleMock(t *testing.T) (*saleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSaleRepository(db).(*saleRepository)
	repo.now = func() time.Time { return fixedNow }

	return repo, mock
}

func TestSaleRepository_Insert(t *testing.T) {
	t.Run("recalcula o valor final antes de gravar", func(t *testing.T) {
		repo, mock := newSaleMock(t)

		sale := &domain.Sale{
			ID:            "5f0c2a44-6d1b-4a47-9a0f-1d1f0b0f7e11",
			CustomerID:    "c1a2b3c4-0000-4000-8000-000000000001",
			ProductID:     "p1a2b3c4-0000-4000-8000-000000000001",
			Quantity:      2,
			UnitPrice:     50,
			TotalAmount:   100,
			Discount:      10,
			FinalAmount:   999,
			PaymentMethod: domain.PaymentCash,
			Status:        domain.SaleStatusCompleted,
			Region:        domain.RegionNorth,
			SalesRep:      "Ana",
			ReportDate:    fixedNow,
		}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales (id,customer_id,product_id,quantity,unit_price,total_amount,discount,final_amount,payment_method,status,region,sales_rep,report_date,created_at,updated_at)")).
			WithArgs(
				sale.ID, sale.CustomerID, sale.ProductID, 2, 50.0, 100.0, 10.0, 90.0,
				"Cash", "Completed", "North", "Ana", fixedNow, fixedNow, fixedNow,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Insert(context.Background(), sale)

		require.NoError(t, err)
		assert.Equal(t, 90.0, sale.FinalAmount)
		assert.Equal(t, fixedNow, sale.CreatedAt)
		assert.Equal(t, fixedNow, sale.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		repo, mock := newSaleMock(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales")).
			WillReturnError(errors.New("duplicate key"))

		err := repo.Insert(context.Background(), &domain.Sale{ID: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key")
	})
}

func TestSaleRepository_GetDetailsByID(t *testing.T) {
	columns := []string{
		"id", "customer_id", "product_id", "quantity", "unit_price", "total_amount", "discount",
		"final_amount", "payment_method", "status", "region", "sales_rep", "report_date",
		"created_at", "updated_at", "name", "email", "region", "customer_type", "name", "category", "price",
	}
	expectedQuery := regexp.QuoteMeta("FROM sales s JOIN customers c ON c.id = s.customer_id JOIN products p ON p.id = s.product_id WHERE s.id = $1")

	t.Run("retorna venda com cliente e produto", func(t *testing.T) {
		repo, mock := newSaleMock(t)

		mock.ExpectQuery(expectedQuery).
			WithArgs("sale-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				"sale-1", "cust-1", "prod-1", 2, 50.0, 100.0, 10.0,
				90.0, "Cash", "Completed", "North", "Ana", fixedNow,
				fixedNow, fixedNow, "João", "joao@example.com", "North", "Individual", "Notebook", "Electronics", 50.0,
			))

		details, err := repo.GetDetailsByID(context.Background(), "sale-1")

		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, "sale-1", details.ID)
		assert.Equal(t, 90.0, details.FinalAmount)
		assert.Equal(t, domain.PaymentCash, details.PaymentMethod)
		assert.Equal(t, domain.SaleCustomer{ID: "cust-1", Name: "João", Email: "joao@example.com", Region: domain.RegionNorth, Type: domain.CustomerTypeIndividual}, details.Customer)
		assert.Equal(t, domain.SaleProduct{ID: "prod-1", Name: "Notebook", Category: domain.CategoryElectronics, Price: 50}, details.Product)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("venda inexistente retorna nil", func(t *testing.T) {
		repo, mock := newSaleMock(t)

		mock.ExpectQuery(expectedQuery).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		details, err := repo.GetDetailsByID(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, details)
	})
}
