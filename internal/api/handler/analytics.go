package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// rangeQuery é uma consulta analítica que depende apenas do intervalo
type rangeQuery func(ctx context.Context, dateRange domain.DateRange) (any, error)

// limitedQuery é uma consulta de ranking com limite de itens
type limitedQuery func(ctx context.Context, dateRange domain.DateRange, limit int) (any, error)

func analyticsHandler(operation string, query rangeQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, fieldErrors := dateRangeFromQuery(r.URL.Query()).parse()
		if len(fieldErrors) > 0 {
			apiErrors.WriteValidationError(w, fieldErrors)
			return
		}

		result, err := query(r.Context(), dateRange)
		if err != nil {
			writeAnalyticsError(w, r, operation, err)
			return
		}

		writeData(w, r, result)
	}
}

func rankingHandler(operation string, query limitedQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		dateRange, fieldErrors := dateRangeFromQuery(params).parse()

		limit, ok := parseIntParam(params, "limit", domain.DefaultTopLimit, 1, domain.MaxTopLimit)
		if !ok {
			fieldErrors = append(fieldErrors, domain.FieldError{
				Field: "limit", Message: "Limit must be between 1 and 50", Value: params.Get("limit"),
			})
		}

		if len(fieldErrors) > 0 {
			apiErrors.WriteValidationError(w, fieldErrors)
			return
		}

		result, err := query(r.Context(), dateRange, limit)
		if err != nil {
			writeAnalyticsError(w, r, operation, err)
			return
		}

		writeData(w, r, result)
	}
}

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log.ForContext(r.Context()).WithError(err).WithField("report_operation", operation).Error("Erro na consulta analítica")

	var queryErr *analyzing.QueryError
	if errors.As(err, &queryErr) {
		writeServerError(w, apiErrors.ErrAggregationQuery, "Erro ao buscar "+operation, err)
		return
	}

	writeServerError(w, apiErrors.ErrInternalServer, "Erro ao buscar "+operation, err)
}

func GetTotalRevenue(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("receita total", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetTotalRevenue(ctx, dateRange)
	})
}

func GetRegionStats(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("estatísticas por região", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetRegionStats(ctx, dateRange)
	})
}

func GetCategoryStats(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("estatísticas por categoria", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetCategoryStats(ctx, dateRange)
	})
}

func GetTopProducts(service analyzing.Analyzer) http.HandlerFunc {
	return rankingHandler("produtos mais vendidos", func(ctx context.Context, dateRange domain.DateRange, limit int) (any, error) {
		return service.GetTopProducts(ctx, dateRange, limit)
	})
}

func GetTopCustomers(service analyzing.Analyzer) http.HandlerFunc {
	return rankingHandler("principais clientes", func(ctx context.Context, dateRange domain.DateRange, limit int) (any, error) {
		return service.GetTopCustomers(ctx, dateRange, limit)
	})
}

func GetDailySalesTrend(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("tendência diária", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetDailySalesTrend(ctx, dateRange)
	})
}

func GetPaymentMethodStats(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("estatísticas por forma de pagamento", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetPaymentMethodStats(ctx, dateRange)
	})
}

// GetDashboard agrega todas as consultas com rankings limitados a 5 itens
func GetDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsHandler("dados do dashboard", func(ctx context.Context, dateRange domain.DateRange) (any, error) {
		return service.GetDashboard(ctx, dateRange)
	})
}
