package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope é o formato de sucesso comum a todas as rotas da API
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeData(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, Envelope{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, r *http.Request, data any, count int) {
	writeJSON(w, r, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// writeServerError esconde o detalhe do erro em produção
func writeServerError(w http.ResponseWriter, code, message string, err error) {
	apiErrors.WriteInternalError(w, code, message, err, log.IsProduction())
}
