package repository

//go:generate mockgen -source=customer.go -destination=mocks/customer.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	customersTable = "customers c"
)

var customerColumns = []string{
	"c.id",
	"c.name",
	"c.email",
	"c.region",
	"c.customer_type",
	"c.phone",
	"c.address_street",
	"c.address_city",
	"c.address_state",
	"c.address_zip",
	"c.created_at",
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Search(ctx context.Context, term string) ([]*domain.Customer, error)
}

type customerRepository struct {
	db postgres.Queryer
}

func NewCustomerRepository(db postgres.Queryer) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern monta o padrão ILIKE de substring com os curingas do termo escapados
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func anyFieldContains(term string, columns ...string) squirrel.Or {
	pattern := containsPattern(term)

	conditions := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		conditions = append(conditions, squirrel.ILike{column: pattern})
	}
	return conditions
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

// Search busca por nome, email, região ou tipo sem diferenciar maiúsculas
func (r *customerRepository) Search(ctx context.Context, term string) ([]*domain.Customer, error) {
	builder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if term = strings.TrimSpace(term); term != "" {
		builder = builder.Where(anyFieldContains(term, "c.name", "c.email", "c.region", "c.customer_type"))
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear clientes: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	customer := &domain.Customer{}

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Region,
		&customer.Type,
		&customer.Phone,
		&customer.Address.Street,
		&customer.Address.City,
		&customer.Address.State,
		&customer.Address.ZipCode,
		&customer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return customer, nil
}
