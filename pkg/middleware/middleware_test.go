package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret, role string, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		OperatorName: "Carla",
		OperatorRole: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "op-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, testSecret, RoleAdmin, time.Now().Add(time.Hour))
	expired := signToken(t, testSecret, RoleAdmin, time.Now().Add(-time.Hour))
	wrongSecret := signToken(t, "outro", RoleAdmin, time.Now().Add(time.Hour))

	tests := []struct {
		name           string
		secret         string
		header         string
		expectedStatus int
		expectedCode   string
	}{
		{name: "autenticação desabilitada", secret: "", header: "", expectedStatus: http.StatusNoContent},
		{name: "sem header", secret: testSecret, header: "", expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH_001"},
		{name: "sem Bearer", secret: testSecret, header: valid, expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH_001"},
		{name: "token expirado", secret: testSecret, header: "Bearer " + expired, expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH_007"},
		{name: "assinatura inválida", secret: testSecret, header: "Bearer " + wrongSecret, expectedStatus: http.StatusUnauthorized, expectedCode: "AUTH_006"},
		{name: "token válido", secret: testSecret, header: "Bearer " + valid, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analytics/sales", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.secret)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	chain := func(secret string) http.Handler {
		return AuthMiddleware(secret)(AdminOnly(secret)(okHandler()))
	}

	t.Run("admin passa", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cron/report-snapshot/run", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, RoleAdmin, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()
		chain(testSecret).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("analista é bloqueado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cron/report-snapshot/run", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, RoleAnalyst, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()
		chain(testSecret).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("sem segredo não restringe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/cron/report-snapshot/run", nil)
		rec := httptest.NewRecorder()
		chain("").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/analytics/sales", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://qualquer.example")
		rec := httptest.NewRecorder()
		Cors([]string{"*"})(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, "http://qualquer.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/revenue", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong!")
	assert.NotContains(t, rec.Body.String(), "falha inesperada")
}

func TestLoggingResponseWriter_Hijack(t *testing.T) {
	lrw := newLoggingResponseWriter(httptest.NewRecorder())
	_, _, err := lrw.Hijack()
	assert.Error(t, err)
	assert.False(t, lrw.hijacked)
}
