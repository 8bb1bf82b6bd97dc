package domain

import "time"

const (
	DefaultReportPageLimit = 10
	MaxReportPageLimit     = 100
)

// AnalyticsReport é um snapshot imutável, inserido uma única vez e nunca recalculado
type AnalyticsReport struct {
	ID                 string              `json:"id"`
	ReportDate         time.Time           `json:"reportDate"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	TotalRevenue       float64             `json:"totalRevenue"`
	TotalSales         int64               `json:"totalSales"`
	AverageOrderValue  float64             `json:"averageOrderValue"`
	TotalCustomers     int64               `json:"totalCustomers"`
	TotalProducts      int64               `json:"totalProducts"`
	RegionStats        []RegionStat        `json:"regionStats"`
	CategoryStats      []CategoryStat      `json:"categoryStats"`
	TopProducts        []ProductRanking    `json:"topProducts"`
	TopCustomers       []CustomerRanking   `json:"topCustomers"`
	DailyStats         []DailySalesStat    `json:"dailyStats"`
	PaymentMethodStats []PaymentMethodStat `json:"paymentMethodStats"`
	CreatedAt          time.Time           `json:"createdAt"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalReports int64 `json:"totalReports"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type ReportPage struct {
	Reports    []*AnalyticsReport `json:"reports"`
	Pagination Pagination         `json:"pagination"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalReports: total,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}
