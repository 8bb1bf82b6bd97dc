package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "validação", code: ErrValidationFailed, expectedStatus: http.StatusBadRequest},
		{name: "produto não encontrado", code: ErrProductNotFound, expectedStatus: http.StatusNotFound},
		{name: "relatório", code: ErrReportGeneration, expectedStatus: http.StatusInternalServerError},
		{name: "indisponível", code: ErrServiceUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{name: "código desconhecido", code: "XXX_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "falhou", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "falhou", body.Message)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, []map[string]string{{"field": "quantity"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"code":"VAL_004","message":"Validation failed","errors":[{"field":"quantity"}]}`,
		rec.Body.String(),
	)
}

func TestWriteInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInternalError(rec, ErrInternalServer, "Erro interno", errors.New("conexão recusada"), true)
	assert.NotContains(t, rec.Body.String(), "conexão recusada")

	rec = httptest.NewRecorder()
	WriteInternalError(rec, ErrInternalServer, "Erro interno", errors.New("conexão recusada"), false)
	assert.Contains(t, rec.Body.String(), "conexão recusada")
}
