package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "Credit Card"
	PaymentDebitCard     PaymentMethod = "Debit Card"
	PaymentCash          PaymentMethod = "Cash"
	PaymentBankTransfer  PaymentMethod = "Bank Transfer"
	PaymentDigitalWallet PaymentMethod = "Digital Wallet"
)

var PaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentCash,
	PaymentBankTransfer,
	PaymentDigitalWallet,
}

func (m PaymentMethod) IsValid() bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "Completed"
	SaleStatusPending   SaleStatus = "Pending"
	SaleStatusCancelled SaleStatus = "Cancelled"
	SaleStatusRefunded  SaleStatus = "Refunded"
)

var SaleStatuses = []SaleStatus{SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled, SaleStatusRefunded}

func (s SaleStatus) IsValid() bool {
	for _, status := range SaleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var ErrDiscountExceedsTotal = errors.New("desconto maior que o valor total da venda")

type Sale struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customerId"`
	ProductID     string        `json:"productId"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unitPrice"`
	TotalAmount   float64       `json:"totalAmount"`
	Discount      float64       `json:"discount"`
	FinalAmount   float64       `json:"finalAmount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        SaleStatus    `json:"status"`
	Region        Region        `json:"region"`
	SalesRep      string        `json:"salesRep"`
	ReportDate    time.Time     `json:"reportDate"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BeforeSave recalcula o finalAmount a partir do total e do desconto,
// ignorando qualquer valor informado anteriormente
func (s *Sale) BeforeSave(now time.Time) {
	final := decimal.NewFromFloat(s.TotalAmount).Sub(decimal.NewFromFloat(s.Discount))
	s.FinalAmount = final.Round(2).InexactFloat64()

	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

type CreateSaleInput struct {
	CustomerID    string        `json:"customerId"`
	ProductID     string        `json:"productId"`
	Quantity      int           `json:"quantity"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        SaleStatus    `json:"status,omitempty"`
	SalesRep      string        `json:"salesRep"`
	Discount      float64       `json:"discount,omitempty"`
}

// Validate retorna a lista de campos inválidos, vazia quando a entrada é válida
func (in CreateSaleInput) Validate() []FieldError {
	fieldErrors := make([]FieldError, 0)

	if _, err := uuid.Parse(in.CustomerID); err != nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "customerId", Message: "Valid customer ID is required", Value: in.CustomerID})
	}

	if _, err := uuid.Parse(in.ProductID); err != nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "productId", Message: "Valid product ID is required", Value: in.ProductID})
	}

	if in.Quantity < 1 {
		fieldErrors = append(fieldErrors, FieldError{Field: "quantity", Message: "Quantity must be a positive integer", Value: in.Quantity})
	}

	if !in.PaymentMethod.IsValid() {
		fieldErrors = append(fieldErrors, FieldError{Field: "paymentMethod", Message: "Valid payment method is required", Value: in.PaymentMethod})
	}

	if in.Status != "" && !in.Status.IsValid() {
		fieldErrors = append(fieldErrors, FieldError{Field: "status", Message: "Invalid status", Value: in.Status})
	}

	if strings.TrimSpace(in.SalesRep) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "salesRep", Message: "Sales rep is required", Value: in.SalesRep})
	}

	if in.Discount < 0 {
		fieldErrors = append(fieldErrors, FieldError{Field: "discount", Message: "Discount must be a non-negative number", Value: in.Discount})
	}

	return fieldErrors
}

// NewSale deriva os campos calculados da venda a partir do produto e do cliente já resolvidos
func NewSale(in CreateSaleInput, customer *Customer, product *Product, now time.Time) (*Sale, error) {
	unitPrice := decimal.NewFromFloat(product.Price)
	total := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
	discount := decimal.NewFromFloat(in.Discount)

	if discount.GreaterThan(total) {
		return nil, ErrDiscountExceedsTotal
	}

	status := in.Status
	if status == "" {
		status = SaleStatusCompleted
	}

	sale := &Sale{
		ID:            uuid.New().String(),
		CustomerID:    customer.ID,
		ProductID:     product.ID,
		Quantity:      in.Quantity,
		UnitPrice:     unitPrice.InexactFloat64(),
		TotalAmount:   total.InexactFloat64(),
		Discount:      discount.InexactFloat64(),
		PaymentMethod: in.PaymentMethod,
		Status:        status,
		Region:        customer.Region,
		SalesRep:      strings.TrimSpace(in.SalesRep),
		ReportDate:    now,
	}
	sale.BeforeSave(now)

	return sale, nil
}

type SaleCustomer struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Region Region       `json:"region"`
	Type   CustomerType `json:"type"`
}

type SaleProduct struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
}

// SaleDetails é a venda enriquecida com os dados do cliente e do produto
type SaleDetails struct {
	Sale
	Customer SaleCustomer `json:"customer"`
	Product  SaleProduct  `json:"product"`
}
