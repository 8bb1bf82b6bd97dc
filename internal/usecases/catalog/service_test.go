package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_SearchCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customers := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customers, mocks.NewMockProductRepository(ctrl))

	customers.EXPECT().Search(gomock.Any(), "ana").Return([]*domain.Customer{{ID: "c1", Name: "Ana"}}, nil)
	customers.EXPECT().Search(gomock.Any(), "").Return(nil, errors.New("timeout"))

	result, err := service.SearchCustomers(context.Background(), "ana")
	require.NoError(t, err)
	assert.Len(t, result, 1)

	result, err = service.SearchCustomers(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "timeout")
}

func TestService_SearchProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := mocks.NewMockProductRepository(ctrl)
	service := NewService(mocks.NewMockCustomerRepository(ctrl), products)

	products.EXPECT().SearchActive(gomock.Any(), "book").Return([]*domain.Product{{ID: "p1", Name: "Book", IsActive: true}}, nil)

	result, err := service.SearchProducts(context.Background(), "book")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsActive)
}
