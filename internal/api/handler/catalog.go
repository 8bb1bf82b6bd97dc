package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func SearchCustomers(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.SearchCustomers(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar clientes")
			writeServerError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar clientes", err)
			return
		}

		writeList(w, r, customers, len(customers))
	}
}

// SearchProducts lista apenas produtos ativos
func SearchProducts(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.SearchProducts(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar produtos")
			writeServerError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", err)
			return
		}

		writeList(w, r, products, len(products))
	}
}
