package repository

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	productsTable = "products p"
)

var productColumns = []string{
	"p.id",
	"p.name",
	"p.description",
	"p.category",
	"p.price",
	"p.cost",
	"p.sku",
	"p.stock",
	"p.brand",
	"p.tags",
	"p.is_active",
	"p.created_at",
	"p.updated_at",
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	SearchActive(ctx context.Context, term string) ([]*domain.Product, error)
}

type productRepository struct {
	db postgres.Queryer
}

func NewProductRepository(db postgres.Queryer) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

// SearchActive retorna apenas produtos ativos, mesmo quando há termo de busca
func (r *productRepository) SearchActive(ctx context.Context, term string) ([]*domain.Product, error) {
	builder := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"p.is_active": true}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if term = strings.TrimSpace(term); term != "" {
		builder = builder.Where(anyFieldContains(term, "p.name", "p.category", "p.brand", "p.description"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produtos: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.Cost,
		&product.SKU,
		&product.Stock,
		&product.Brand,
		pq.Array(&product.Tags),
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if product.Tags == nil {
		product.Tags = []string{}
	}

	return product, nil
}
