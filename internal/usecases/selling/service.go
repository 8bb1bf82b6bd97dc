package selling

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// SaleNotifier publica a venda registrada para os clientes do dashboard
type SaleNotifier interface {
	NotifyNewSale(ctx context.Context, sale *domain.SaleDetails) error
}

type Seller interface {
	Create(ctx context.Context, input domain.CreateSaleInput) (*domain.SaleDetails, error)
}

type Service struct {
	saleRepository     repository.SaleRepository
	customerRepository repository.CustomerRepository
	productRepository  repository.ProductRepository
	notifier           SaleNotifier
	detached           bool
	now                func() time.Time
}

type Option func(*Service)

// WithDetachedNotifications não espera a notificação terminar antes de responder
func WithDetachedNotifications() Option {
	return func(s *Service) {
		s.detached = true
	}
}

func NewService(
	saleRepository repository.SaleRepository,
	customerRepository repository.CustomerRepository,
	productRepository repository.ProductRepository,
	notifier SaleNotifier,
	opts ...Option,
) Seller {
	s := &Service{
		saleRepository:     saleRepository,
		customerRepository: customerRepository,
		productRepository:  productRepository,
		notifier:           notifier,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Create(ctx context.Context, input domain.CreateSaleInput) (*domain.SaleDetails, error) {
	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	product, err := s.productRepository.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveSale, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	customer, err := s.customerRepository.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveSale, err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	sale, err := domain.NewSale(input, customer, product, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrDiscountExceedsTotal) {
			return nil, &ValidationError{Fields: []domain.FieldError{
				{Field: "discount", Message: "Discount cannot exceed total amount", Value: input.Discount},
			}}
		}
		return nil, err
	}

	if err = s.saleRepository.Insert(ctx, sale); err != nil {
		logrus.WithFields(logrus.Fields{
			"sale_id":     sale.ID,
			"customer_id": sale.CustomerID,
			"product_id":  sale.ProductID,
			"error":       err,
		}).Error("Erro ao salvar venda")
		return nil, fmt.Errorf("%w: %w", ErrSaveSale, err)
	}

	details, err := s.saleRepository.GetDetailsByID(ctx, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveSale, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: venda %s não encontrada após inserção", ErrSaveSale, sale.ID)
	}

	s.notify(ctx, details)

	return details, nil
}

// notify nunca falha a requisição, apenas registra o erro
func (s *Service) notify(ctx context.Context, details *domain.SaleDetails) {
	if s.notifier == nil {
		return
	}

	send := func(ctx context.Context) {
		if err := s.notifier.NotifyNewSale(ctx, details); err != nil {
			logrus.WithFields(logrus.Fields{
				"sale_id": details.ID,
				"error":   err,
			}).Warn("Falha ao notificar nova venda")
		}
	}

	if s.detached {
		go send(context.WithoutCancel(ctx))
		return
	}

	send(ctx)
}
