package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GenerateReport calcula e grava um snapshot do intervalo informado no corpo
func GenerateReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input dateRangeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("Corpo inválido na geração de relatório")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		dateRange, fieldErrors := input.parse()
		if len(fieldErrors) > 0 {
			apiErrors.WriteValidationError(w, fieldErrors)
			return
		}

		report, err := service.Generate(r.Context(), dateRange)
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar relatório")
			writeServerError(w, apiErrors.ErrReportGeneration, "Erro ao gerar relatório", err)
			return
		}

		logger.WithField("report_id", report.ID).Info("Relatório gerado")

		writeJSON(w, r, http.StatusOK, Envelope{
			Success: true,
			Message: "Analytics report generated successfully",
			Data:    report,
		})
	}
}

func ListReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		fieldErrors := make([]domain.FieldError, 0)

		page, ok := parseIntParam(params, "page", 1, 1, 0)
		if !ok {
			fieldErrors = append(fieldErrors, domain.FieldError{
				Field: "page", Message: "Page must be a positive integer", Value: params.Get("page"),
			})
		}

		limit, ok := parseIntParam(params, "limit", domain.DefaultReportPageLimit, 1, domain.MaxReportPageLimit)
		if !ok {
			fieldErrors = append(fieldErrors, domain.FieldError{
				Field: "limit", Message: "Limit must be between 1 and 100", Value: params.Get("limit"),
			})
		}

		if len(fieldErrors) > 0 {
			apiErrors.WriteValidationError(w, fieldErrors)
			return
		}

		result, err := service.List(r.Context(), page, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar relatórios")
			writeServerError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", err)
			return
		}

		writeData(w, r, result)
	}
}

func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, reporting.ErrReportNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Report not found", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("report_id", id).Error("Erro ao buscar relatório")
			writeServerError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", err)
			return
		}

		writeData(w, r, report)
	}
}
