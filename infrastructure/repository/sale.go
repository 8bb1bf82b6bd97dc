package repository

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type SaleRepository interface {
	Insert(ctx context.Context, sale *domain.Sale) error
	GetDetailsByID(ctx context.Context, id string) (*domain.SaleDetails, error)
}

type saleRepository struct {
	db  postgres.Queryer
	now func() time.Time
}

func NewSaleRepository(db postgres.Queryer) SaleRepository {
	return &saleRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Insert grava a venda recalculando o finalAmount antes da escrita
func (r *saleRepository) Insert(ctx context.Context, sale *domain.Sale) error {
	sale.BeforeSave(r.now())

	query, args, err := squirrel.
		Insert("sales").
		Columns(
			"id",
			"customer_id",
			"product_id",
			"quantity",
			"unit_price",
			"total_amount",
			"discount",
			"final_amount",
			"payment_method",
			"status",
			"region",
			"sales_rep",
			"report_date",
			"created_at",
			"updated_at",
		).
		Values(
			sale.ID,
			sale.CustomerID,
			sale.ProductID,
			sale.Quantity,
			sale.UnitPrice,
			sale.TotalAmount,
			sale.Discount,
			sale.FinalAmount,
			string(sale.PaymentMethod),
			string(sale.Status),
			string(sale.Region),
			sale.SalesRep,
			sale.ReportDate,
			sale.CreatedAt,
			sale.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetDetailsByID relê a venda com os dados do cliente e do produto, nil quando não existe
func (r *saleRepository) GetDetailsByID(ctx context.Context, id string) (*domain.SaleDetails, error) {
	query, args, err := squirrel.
		Select(
			"s.id",
			"s.customer_id",
			"s.product_id",
			"s.quantity",
			"s.unit_price",
			"s.total_amount",
			"s.discount",
			"s.final_amount",
			"s.payment_method",
			"s.status",
			"s.region",
			"s.sales_rep",
			"s.report_date",
			"s.created_at",
			"s.updated_at",
			"c.name",
			"c.email",
			"c.region",
			"c.customer_type",
			"p.name",
			"p.category",
			"p.price",
		).
		From(salesTable).
		Join(joinCustomers).
		Join(joinProducts).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	details := &domain.SaleDetails{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&details.ID,
		&details.CustomerID,
		&details.ProductID,
		&details.Quantity,
		&details.UnitPrice,
		&details.TotalAmount,
		&details.Discount,
		&details.FinalAmount,
		&details.PaymentMethod,
		&details.Status,
		&details.Region,
		&details.SalesRep,
		&details.ReportDate,
		&details.CreatedAt,
		&details.UpdatedAt,
		&details.Customer.Name,
		&details.Customer.Email,
		&details.Customer.Region,
		&details.Customer.Type,
		&details.Product.Name,
		&details.Product.Category,
		&details.Product.Price,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	details.Customer.ID = details.CustomerID
	details.Product.ID = details.ProductID

	return details, nil
}
