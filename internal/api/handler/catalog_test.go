package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	catalogmocks "github.com/vfg2006/sales-analytics-api/internal/usecases/catalog/mocks"
	"go.uber.org/mock/gomock"
)

func TestSearchCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := catalogmocks.NewMockCatalog(ctrl)
	service.EXPECT().
		SearchCustomers(gomock.Any(), "ana").
		Return([]*domain.Customer{{ID: "c1", Name: "Ana"}, {ID: "c2", Name: "Mariana"}}, nil)

	rec := serve(Catalog(service), http.MethodGet, "/api/analytics/customers?search=ana", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Count   int                `json:"count"`
		Data    []*domain.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "Mariana", body.Data[1].Name)
}

func TestSearchProducts_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := catalogmocks.NewMockCatalog(ctrl)
	service.EXPECT().SearchProducts(gomock.Any(), "").Return([]*domain.Product{}, nil)

	rec := serve(Catalog(service), http.MethodGet, "/api/analytics/products", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, rec.Body.String())
}

func TestSearchProducts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := catalogmocks.NewMockCatalog(ctrl)
	service.EXPECT().SearchProducts(gomock.Any(), "fone").Return(nil, errors.New("timeout"))

	rec := serve(Catalog(service), http.MethodGet, "/api/analytics/products?search=fone", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "SRV_002", decodeError(t, rec).Code)
}
