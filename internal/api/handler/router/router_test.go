package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(name, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/api/ping",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{header("X-Order", "first"), header("X-Order", "second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Order"))
}

func TestRouter_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "rota inexistente", method: http.MethodGet, path: "/api/nada"},
		{name: "método não registrado", method: http.MethodDelete, path: "/api/ping"},
	}

	rt := New(WithRoutes(Route{
		Path:    "/api/ping",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t,
				`{"success":false,"code":"RES_004","message":"Route not found"}`,
				rec.Body.String(),
			)
		})
	}
}
