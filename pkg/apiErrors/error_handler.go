package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrMissingToken          = "AUTH_001" // Token ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrValidationFailed    = "VAL_004" // Falha de validação por campo

	// Recursos
	ErrCustomerNotFound = "RES_001"
	ErrProductNotFound  = "RES_002"
	ErrReportNotFound   = "RES_003"
	ErrRouteNotFound    = "RES_004"

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation  = "SRV_002" // Erro de operação de banco de dados
	ErrAggregationQuery   = "SRV_003" // Falha em consulta analítica
	ErrReportGeneration   = "SRV_004" // Falha ao gerar relatório
	ErrServiceUnavailable = "SRV_005" // Dependência indisponível
)

var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrValidationFailed:      http.StatusBadRequest,
	ErrCustomerNotFound:      http.StatusNotFound,
	ErrProductNotFound:       http.StatusNotFound,
	ErrReportNotFound:        http.StatusNotFound,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrAggregationQuery:      http.StatusInternalServerError,
	ErrReportGeneration:      http.StatusInternalServerError,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

// APIError é o envelope de erro devolvido por todas as rotas
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// StatusFor devolve o status HTTP associado a um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteValidationError responde 400 com a lista de campos inválidos
func WriteValidationError(w http.ResponseWriter, details any) {
	WriteError(w, ErrValidationFailed, "Validation failed", details)
}

// WriteInternalError oculta a mensagem original quando em produção
func WriteInternalError(w http.ResponseWriter, code string, message string, err error, production bool) {
	if !production && err != nil {
		message = message + ": " + err.Error()
	}
	WriteError(w, code, message, nil)
}
