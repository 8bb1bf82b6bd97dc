package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/selling"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck(deps HealthDependencies) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
		{
			Path:    "/api/health/detailed",
			Method:  http.MethodGet,
			Handler: DetailedHealthcheckHandler(deps),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/revenue",
			Method:  http.MethodGet,
			Handler: GetTotalRevenue(service),
		},
		{
			Path:    "/api/analytics/regions",
			Method:  http.MethodGet,
			Handler: GetRegionStats(service),
		},
		{
			Path:    "/api/analytics/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryStats(service),
		},
		{
			Path:    "/api/analytics/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/api/analytics/top-customers",
			Method:  http.MethodGet,
			Handler: GetTopCustomers(service),
		},
		{
			Path:    "/api/analytics/daily-trend",
			Method:  http.MethodGet,
			Handler: GetDailySalesTrend(service),
		},
		{
			Path:    "/api/analytics/payment-methods",
			Method:  http.MethodGet,
			Handler: GetPaymentMethodStats(service),
		},
		{
			Path:    "/api/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Reports(service reporting.Reporter, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/analytics/generate-report",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authSecret)},
		},
		{
			Path:    "/api/analytics/reports",
			Method:  http.MethodGet,
			Handler: ListReports(service),
		},
		{
			Path:    "/api/analytics/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func Sales(service selling.Seller, authSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/analytics/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authSecret)},
		},
	}
}

func Catalog(service catalog.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/customers",
			Method:  http.MethodGet,
			Handler: SearchCustomers(service),
		},
		{
			Path:    "/api/analytics/products",
			Method:  http.MethodGet,
			Handler: SearchProducts(service),
		},
	}
}

func Websocket(hub WebsocketServer) []router.Route {
	return []router.Route{
		{
			Path:    "/ws",
			Method:  http.MethodGet,
			Handler: Realtime(hub),
		},
	}
}

func CronJobs(services CronJobServices, authSecret string) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authSecret),
		middleware.AdminOnly(authSecret),
	}

	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
