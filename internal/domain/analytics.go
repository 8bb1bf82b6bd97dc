package domain

import (
	"errors"
	"time"
)

const (
	DefaultTopLimit   = 10
	MaxTopLimit       = 50
	DashboardTopLimit = 5
	ReportTopLimit    = 10
)

var ErrInvalidDateRange = errors.New("startDate deve ser anterior ou igual a endDate")

// DateRange é o intervalo fechado [Start, End] aplicado sobre o reportDate das vendas
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start.UTC(), End: end.UTC()}, nil
}

// ClampTopLimit aplica o limite padrão e o teto das listas de ranking
func ClampTopLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}

type RevenueSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalSales        int64   `json:"totalSales"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type RegionStat struct {
	Region         Region  `json:"region"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalSales     int64   `json:"totalSales"`
	TotalCustomers int64   `json:"totalCustomers"`
}

type CategoryStat struct {
	Category      Category `json:"category"`
	TotalRevenue  float64  `json:"totalRevenue"`
	TotalSales    int64    `json:"totalSales"`
	TotalQuantity int64    `json:"totalQuantity"`
	TotalProducts int64    `json:"totalProducts"`
}

type ProductRanking struct {
	ProductID    string   `json:"productId"`
	ProductName  string   `json:"productName"`
	Category     Category `json:"category"`
	TotalSales   int64    `json:"totalSales"` // soma das quantidades
	TotalRevenue float64  `json:"totalRevenue"`
	OrderCount   int64    `json:"orderCount"`
}

type CustomerRanking struct {
	CustomerID    string       `json:"customerId"`
	CustomerName  string       `json:"customerName"`
	Region        Region       `json:"region"`
	Type          CustomerType `json:"type"`
	TotalSpent    float64      `json:"totalSpent"`
	TotalOrders   int64        `json:"totalOrders"`
	TotalQuantity int64        `json:"totalQuantity"`
}

type DailySalesStat struct {
	Date           time.Time `json:"date"` // meia-noite UTC do dia
	TotalRevenue   float64   `json:"totalRevenue"`
	TotalSales     int64     `json:"totalSales"`
	TotalCustomers int64     `json:"totalCustomers"`
}

type PaymentMethodStat struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalAmount   float64       `json:"totalAmount"`
	Count         int64         `json:"count"`
	AverageAmount float64       `json:"averageAmount"`
}

type Dashboard struct {
	Summary       RevenueSummary      `json:"summary"`
	RegionStats   []RegionStat        `json:"regionStats"`
	CategoryStats []CategoryStat      `json:"categoryStats"`
	TopProducts   []ProductRanking    `json:"topProducts"`
	TopCustomers  []CustomerRanking   `json:"topCustomers"`
	DailyTrend    []DailySalesStat    `json:"dailyTrend"`
	PaymentStats  []PaymentMethodStat `json:"paymentStats"`
}
