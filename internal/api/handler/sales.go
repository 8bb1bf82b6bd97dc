package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/selling"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// CreateSale registra a venda e responde com o registro completo (cliente e produto resolvidos)
func CreateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.CreateSaleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("Corpo inválido no registro de venda")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		sale, err := service.Create(r.Context(), input)
		if err != nil {
			var validationErr *selling.ValidationError

			switch {
			case errors.As(err, &validationErr):
				apiErrors.WriteValidationError(w, validationErr.Fields)
			case errors.Is(err, selling.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Product not found", nil)
			case errors.Is(err, selling.ErrCustomerNotFound):
				apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Customer not found", nil)
			default:
				logger.WithError(err).Error("Erro ao registrar venda")
				writeServerError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", err)
			}
			return
		}

		logger.WithFields(log.Fields{
			"sale_id":     sale.ID,
			"sale_amount": sale.FinalAmount,
		}).Info("Venda registrada")

		writeJSON(w, r, http.StatusCreated, Envelope{
			Success: true,
			Message: "Sale added successfully",
			Data:    sale,
		})
	}
}
