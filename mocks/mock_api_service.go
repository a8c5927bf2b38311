package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"apicatalog/internal/domain"
	"apicatalog/internal/service"
)

// MockApiService is a mock implementation of service.ApiService.
type MockApiService struct {
	mock.Mock
}

func (m *MockApiService) Get(ctx context.Context, id string) (*domain.Api, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Api), args.Error(1)
}

func (m *MockApiService) Search(ctx context.Context, input *service.SearchApisInput) (*service.SearchApisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchApisResult), args.Error(1)
}

func (m *MockApiService) Update(ctx context.Context, api *domain.Api) (*domain.Api, error) {
	args := m.Called(ctx, api)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Api), args.Error(1)
}
