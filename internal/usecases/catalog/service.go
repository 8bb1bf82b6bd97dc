package catalog

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Catalog alimenta os seletores de cliente e produto do formulário de venda
type Catalog interface {
	SearchCustomers(ctx context.Context, term string) ([]*domain.Customer, error)
	SearchProducts(ctx context.Context, term string) ([]*domain.Product, error)
}

type Service struct {
	customerRepository repository.CustomerRepository
	productRepository  repository.ProductRepository
}

func NewService(customerRepository repository.CustomerRepository, productRepository repository.ProductRepository) Catalog {
	return &Service{
		customerRepository: customerRepository,
		productRepository:  productRepository,
	}
}

func (s *Service) SearchCustomers(ctx context.Context, term string) ([]*domain.Customer, error) {
	customers, err := s.customerRepository.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	return customers, nil
}

// SearchProducts considera apenas produtos ativos
func (s *Service) SearchProducts(ctx context.Context, term string) ([]*domain.Product, error) {
	products, err := s.productRepository.SearchActive(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	return products, nil
}
