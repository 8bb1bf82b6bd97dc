package handler

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type dateRangeInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func dateRangeFromQuery(query url.Values) dateRangeInput {
	return dateRangeInput{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
}

// parse valida as duas datas e a ordem entre elas
func (in dateRangeInput) parse() (domain.DateRange, []domain.FieldError) {
	fieldErrors := make([]domain.FieldError, 0)

	start, err := utils.ParseISODate(in.StartDate)
	if err != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "startDate", Message: "Start date must be a valid ISO 8601 date", Value: in.StartDate,
		})
	}

	end, err := utils.ParseISODate(in.EndDate)
	if err != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field: "endDate", Message: "End date must be a valid ISO 8601 date", Value: in.EndDate,
		})
	}

	if len(fieldErrors) > 0 {
		return domain.DateRange{}, fieldErrors
	}

	dateRange, err := domain.NewDateRange(start, end)
	if errors.Is(err, domain.ErrInvalidDateRange) {
		return domain.DateRange{}, []domain.FieldError{{
			Field: "startDate", Message: "Start date must be before or equal to end date", Value: in.StartDate,
		}}
	}

	return dateRange, nil
}

// parseIntParam devolve def quando o parâmetro está ausente e ok=false quando
// o valor não é inteiro ou está fora de [min, max]. max <= 0 não limita
func parseIntParam(query url.Values, name string, def, min, max int) (int, bool) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return def, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < min || (max > 0 && value > max) {
		return 0, false
	}

	return value, true
}
