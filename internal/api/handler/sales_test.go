package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/selling"
	sellingmocks "github.com/vfg2006/sales-analytics-api/internal/usecases/selling/mocks"
	"go.uber.org/mock/gomock"
)

const (
	testCustomerID = "8b0f4c1e-2a57-4d3b-9e61-5c2f7a9d1b34"
	testProductID  = "d4e2a9b7-6c13-4f08-8a5e-1b9c3f7e2d60"
)

var saleBody = fmt.Sprintf(
	`{"customerId":%q,"productId":%q,"quantity":2,"paymentMethod":"Cash","salesRep":"Bia","discount":5}`,
	testCustomerID, testProductID,
)

func TestCreateSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expectedInput := domain.CreateSaleInput{
		CustomerID:    testCustomerID,
		ProductID:     testProductID,
		Quantity:      2,
		PaymentMethod: domain.PaymentCash,
		SalesRep:      "Bia",
		Discount:      5,
	}

	service := sellingmocks.NewMockSeller(ctrl)
	service.EXPECT().
		Create(gomock.Any(), expectedInput).
		Return(&domain.SaleDetails{
			Sale:     domain.Sale{ID: "s1", FinalAmount: 195},
			Customer: domain.SaleCustomer{ID: testCustomerID, Name: "Ana"},
		}, nil)

	rec := serve(Sales(service, ""), http.MethodPost, "/api/analytics/sales", saleBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Data    domain.SaleDetails `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Sale added successfully", body.Message)
	assert.Equal(t, "s1", body.Data.ID)
	assert.Equal(t, 195.0, body.Data.FinalAmount)
	assert.Equal(t, "Ana", body.Data.Customer.Name)
}

func TestCreateSale_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "validação",
			err: &selling.ValidationError{Fields: []domain.FieldError{
				{Field: "discount", Message: "Discount cannot exceed total amount"},
			}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VAL_004",
		},
		{
			name:           "produto inexistente",
			err:            selling.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "RES_002",
		},
		{
			name:           "cliente inexistente",
			err:            fmt.Errorf("%w: %s", selling.ErrCustomerNotFound, testCustomerID),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "RES_001",
		},
		{
			name:           "falha ao gravar",
			err:            fmt.Errorf("%w: %w", selling.ErrSaveSale, errors.New("deadlock")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := sellingmocks.NewMockSeller(ctrl)
			service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := serve(Sales(service, ""), http.MethodPost, "/api/analytics/sales", saleBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
		})
	}
}

func TestCreateSale_ValidationFieldList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := sellingmocks.NewMockSeller(ctrl)
	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, &selling.ValidationError{Fields: []domain.FieldError{
			{Field: "quantity", Message: "Quantity must be a positive integer", Value: 0},
			{Field: "salesRep", Message: "Sales rep is required", Value: ""},
		}})

	rec := serve(Sales(service, ""), http.MethodPost, "/api/analytics/sales", `{"quantity":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"quantity", "salesRep"}, fieldNames(decodeError(t, rec).Errors))
}

func TestCreateSale_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := serve(Sales(sellingmocks.NewMockSeller(ctrl), ""), http.MethodPost, "/api/analytics/sales", `[1,2`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_003", decodeError(t, rec).Code)
}
